package order

import (
	"context"

	"farmgate/internal/domain"
)

// Line is a cart line joined with the cart it belongs to, scoped to one
// farmer's listings.
type Line struct {
	CartID     string
	BuyerID    string
	CartStatus domain.CartStatus
	CartLine   domain.CartLine
}

// Repository reads the farmer-facing order projection.
type Repository interface {
	ListLinesForFarmer(ctx context.Context, farmerID string) ([]Line, error)
}
