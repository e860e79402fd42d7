package errorlog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go-salary/internal/shared/apperror"
	"go-salary/internal/shared/contextutil"
	"go-salary/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const recordTimeout = 5 * time.Second

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Handler is the single failure exit for HTTP handlers: it records the
// failure and writes the 400 envelope.
type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("errorlog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("errorlog.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Respond(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	info := httpErr.Message
	if info == "" {
		info = apperror.ErrInternal.Message
	}

	ctx := c.Request.Context()
	log := contextutil.GetLogger(ctx, h.logger)
	endpoint := c.Request.URL.Path

	log.Warn("request failed",
		zap.String("endpoint", endpoint),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)

	// Tetap simpan log walaupun client sudah disconnect
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if recErr := h.service.Record(recordCtx, Entry{
		Endpoint:   endpoint,
		Request:    requestBody(c),
		Info:       info,
		ErrorCode:  httpErr.Code,
		OccurredAt: time.Now(),
	}); recErr != nil {
		log.Error("failed to record endpoint error",
			zap.String("endpoint", endpoint),
			zap.Error(recErr),
		)
	}

	response.Failure(c, info, nil, errorBody{
		Code:    httpErr.Code,
		Message: httpErr.Message,
		Details: httpErr.Details,
	})
}

// Recover turns a panic into a recorded failure instead of gin's bare 500.
func (h *Handler) Recover(c *gin.Context, recovered any) {
	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("%v", recovered)
	}
	h.Respond(c, apperror.Wrap(err, apperror.ErrInternal.Code, apperror.ErrInternal.Message, apperror.ErrInternal.HTTPStatus))
	c.Abort()
}

// requestBody returns the JSON body as sent, compacted. Bodies bound with
// ShouldBindBodyWith are read back from the gin context.
func requestBody(c *gin.Context) string {
	var raw []byte
	if cached, ok := c.Get(gin.BodyBytesKey); ok {
		raw, _ = cached.([]byte)
	} else if c.Request.Body != nil {
		raw, _ = io.ReadAll(c.Request.Body)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "{}"
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
