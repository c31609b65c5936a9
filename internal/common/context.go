package common

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// WithRequestID tags ctx with the id that correlates one submission across
// the storefront log, the X-Request-ID header and the receiver's log.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// EnsureRequestID returns ctx as is when it already carries an id, and
// otherwise a child context tagged with a fresh uuid.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id := RequestIDFromContext(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return WithRequestID(ctx, id), id
}
