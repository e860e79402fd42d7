package bootstrap

import (
	"context"
	"time"

	"go-salary/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit events through zap to stdout.
type StdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger(logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &StdoutAuditLogger{logger: l.Named("audit")}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	l.logger.Info("audit event", fields...)
}
