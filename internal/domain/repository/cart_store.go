package repository

import (
	"context"

	"retrokick/internal/domain/entity"
)

// CartStore persists per-session cart snapshots. The full cart state is
// written on every mutation and rehydrated on access, mirroring the
// storefront client's behavior.
//
// Load is fail-open: a missing or unreadable snapshot yields an empty
// cart, never an error the shopper would see.
type CartStore interface {
	// Load returns the cart for the session, or an empty cart when no
	// usable snapshot exists.
	Load(ctx context.Context, sessionID string) (*entity.Cart, error)

	// Save writes the full cart snapshot for its session.
	Save(ctx context.Context, cart *entity.Cart) error

	// Delete removes the session's snapshot. Deleting an absent snapshot
	// is a no-op.
	Delete(ctx context.Context, sessionID string) error
}
