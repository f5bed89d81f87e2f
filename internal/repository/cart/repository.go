package cart

import (
	"context"

	"farmgate/internal/domain"
)

// Repository persists carts and their lines. Multi-statement writes run
// inside a single transaction so the stored total never drifts from the
// sum of the lines.
type Repository interface {
	GetActiveByBuyer(ctx context.Context, buyerID string) (*domain.Cart, error)
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	AddItem(ctx context.Context, buyerID string, listing domain.Listing, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, buyerID, lineID string) (*domain.Cart, error)
	Checkout(ctx context.Context, buyerID string) (*domain.Cart, error)
}
