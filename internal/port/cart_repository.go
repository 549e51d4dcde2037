package port

import (
	"context"

	"github.com/ssv8317/canteen-ordering/internal/core/domain"
)

type CartRepository interface {
	// Load returns the stored cart for the session, or an empty cart when
	// none exists
	Load(ctx context.Context, sessionID string) (domain.Cart, error)

	// Save replaces the stored cart for the session
	Save(ctx context.Context, sessionID string, cart domain.Cart) error

	// Clear removes the stored cart for the session
	Clear(ctx context.Context, sessionID string) error
}
