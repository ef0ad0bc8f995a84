package auth

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const ownerKey contextKey = "owner"

// WithOwner stores the authenticated owner id on the context.
func WithOwner(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerKey, ownerID)
}

// OwnerFromContext returns the authenticated owner id, or uuid.Nil when the
// request was not authenticated.
func OwnerFromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(ownerKey).(uuid.UUID)
	return id
}
