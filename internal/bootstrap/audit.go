package bootstrap

import "context"

// AuditLog is a lifecycle event of the process (startup, shutdown).
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
