package logger

import (
	"context"
	"log/slog"
)

type requestIDKey struct{}

// RequestIDAttr is the attribute name request ids are logged under.
const RequestIDAttr = "request_id"

// WithRequestID returns a context carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

// RequestIDExtractor logs the request id stored by WithRequestID.
func RequestIDExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := RequestIDFromContext(ctx); ok {
			return slog.String(RequestIDAttr, id), true
		}
		return slog.Attr{}, false
	}
}
