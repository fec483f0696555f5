package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records process lifecycle events (start, shutdown) outside
// the request path.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
