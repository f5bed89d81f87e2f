package listing

import (
	"context"

	"farmgate/internal/domain"
)

// UpdateFields carries the partial-update payload; nil fields are left
// unchanged.
type UpdateFields struct {
	Type        *string
	Breed       *string
	PriceCents  *int64
	Status      *domain.ListingStatus
	Description *string
	ImageURL    *string
	CategoryID  *string
}

type Repository interface {
	Create(ctx context.Context, l domain.Listing) (*domain.Listing, error)
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	UpdateOwned(ctx context.Context, farmerID, id string, fields UpdateFields) (*domain.Listing, error)
	ListAll(ctx context.Context) ([]domain.Listing, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Listing, error)
}
