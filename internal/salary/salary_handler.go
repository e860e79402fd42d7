package salary

import (
	"go-salary/internal/shared/apperror"
	"go-salary/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ErrorResponder writes the failure envelope and records the failure.
type ErrorResponder interface {
	Respond(c *gin.Context, err error)
}

type Handler struct {
	service Service
	errors  ErrorResponder
}

func NewHandler(service Service, errors ErrorResponder) *Handler {
	return &Handler{service: service, errors: errors}
}

func (h *Handler) ListDrivers(c *gin.Context) {
	var req ListDriverSalaryRequest
	// ShouldBindBodyWith menyimpan raw body di context untuk audit log
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.errors.Respond(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.ListDrivers(c.Request.Context(), req)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	response.List(c, result.Rows, result.Meta)
}
