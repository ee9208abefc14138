package web

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// RequestIDHeader carries the request ID on HTTP responses and NATS messages.
const RequestIDHeader = "X-Request-Id"

// RequestIDMetadataKey carries the request ID in gRPC metadata.
const RequestIDMetadataKey = "x-request-id"

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID returns the request ID stored in ctx, or "" if there is none.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// ResolveRequestID stores the first non-empty candidate in ctx as the request ID.
// A new UUID is used when every candidate is empty.
func ResolveRequestID(ctx context.Context, candidates ...string) (context.Context, string) {
	for _, id := range candidates {
		if id != "" {
			return WithRequestID(ctx, id), id
		}
	}
	id := uuid.NewString()
	return WithRequestID(ctx, id), id
}
