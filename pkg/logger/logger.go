package logger

import (
	"context"

	"go.uber.org/zap"

	"innovati-portal/pkg/trace"
)

func NewLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l
}

// WithRequest returns a logger carrying the request id from ctx, if any.
func WithRequest(ctx context.Context, logger *zap.Logger) *zap.Logger {
	requestID := trace.FromContext(ctx)
	if requestID != "" {
		return logger.With(zap.String("request_id", requestID))
	}
	return logger
}
