package types

import "context"

// ContextKey is the type used for all context values set by this service.
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
)

// RunMode controls environment-specific behavior.
type RunMode string

const (
	RunModeLocal RunMode = "local"
	RunModeDev   RunMode = "dev"
	RunModeProd  RunMode = "prod"
)

// LogLevel controls logger verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// GetRequestID returns the request id stored in ctx, if any.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxRequestID).(string); ok {
		return id
	}
	return ""
}

// SetRequestID returns a child context carrying the given request id.
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxRequestID, id)
}
