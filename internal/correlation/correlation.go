package correlation

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header carrying the correlation id in both directions.
const Header = "X-Correlation-ID"

type contextKey struct{}

var idKey = contextKey{}

// WithID stores the correlation id in the context.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, idKey, id)
}

// FromContext returns the correlation id, or an empty string when none is set.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(idKey).(string)
	return id
}

// NewID generates a fresh correlation id.
func NewID() string {
	return uuid.NewString()
}
