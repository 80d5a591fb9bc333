// Package net keeps the request id where both chi and the logger can find it
package net

import (
	"context"

	"newsletter/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest stores reqID under chi's key and the logger's; an empty id leaves ctx alone
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		ctx = logger.WithRequestID(context.WithValue(ctx, chimw.RequestIDKey, reqID), reqID)
	}
	return ctx
}

// RequestID reads chi's key first and falls back to the logger's
func RequestID(ctx context.Context) string {
	id := chimw.GetReqID(ctx)
	if id == "" {
		id = logger.RequestID(ctx)
	}
	return id
}
