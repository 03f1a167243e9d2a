// Package reqctx carries per-request values through context.Context.
// Identity is only ever attached here, after token verification; nothing in
// the process holds a "current user" outside a request's context.
package reqctx

import (
	"context"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/google/uuid"
)

type requestIDKey struct{}

type identityKey struct{}

// NewRequestID generates a random UUID v4 request ID.
func NewRequestID() string {
	return uuid.NewString()
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns "" if no ID is attached.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// Identity returns the verified identity for this request, if any.
func Identity(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	return id, ok && id.UserID > 0
}
