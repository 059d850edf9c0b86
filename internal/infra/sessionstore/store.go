// Package sessionstore persists serialized carts between requests, keyed by
// guest session ID. The store is the session-expiry authority: carts vanish
// when their TTL lapses, and a missing cart is indistinguishable from a
// never-created one.
package sessionstore

import (
	"context"

	"hotelcart/internal/domain/cart"

	"github.com/google/uuid"
)

type Store interface {
	// Load returns the session's cart, or a fresh empty cart when the
	// session has none yet.
	Load(ctx context.Context, sessionID uuid.UUID) (*cart.Cart, error)
	Save(ctx context.Context, sessionID uuid.UUID, c *cart.Cart) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}
