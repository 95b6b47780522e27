package trace

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// GenerateRequestID returns a fresh request id.
func GenerateRequestID() string {
	return uuid.NewString()
}

// FromContext extracts the request id from ctx, or "".
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// WithContext stores the request id in ctx.
func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// HeaderName is the HTTP header carrying the request id.
func HeaderName() string {
	return "X-Request-ID"
}
