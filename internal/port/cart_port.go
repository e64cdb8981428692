package port

import (
	"context"

	"github.com/nikolayk812/commerce-core/internal/domain"
)

// CartRepository persists the cart document under a single storage key.
// The contract is best-effort: callers treat in-memory state as authoritative
// and are expected to swallow Save failures rather than propagate them.
// Concurrent writers to the same key are not coordinated; last write wins.
type CartRepository interface {
	// Load returns the persisted cart, or an empty cart when nothing has
	// been saved yet.
	Load(ctx context.Context) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
	// Clear drops the persisted document entirely.
	Clear(ctx context.Context) error
}
