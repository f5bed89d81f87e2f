package catalog

import (
	"context"
	"errors"
	"strings"

	"farmgate/internal/domain"
	categoryrepo "farmgate/internal/repository/category"
	listingrepo "farmgate/internal/repository/listing"
)

var (
	// ErrInvalidPrice is returned for negative prices.
	ErrInvalidPrice = errors.New("price must be non-negative")
	// ErrInvalidStatus is returned for statuses outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid listing status")
	// ErrDuplicateCategory is returned when the category name already exists.
	ErrDuplicateCategory = errors.New("category already exists")
)

// Service owns listing and category reads and writes.
type Service struct {
	listings   listingrepo.Repository
	categories categoryrepo.Repository
}

func New(listings listingrepo.Repository, categories categoryrepo.Repository) *Service {
	return &Service{listings: listings, categories: categories}
}

// CreateListingInput captures fields expected when publishing an animal.
type CreateListingInput struct {
	Type        string  `json:"type"`
	Breed       string  `json:"breed"`
	PriceCents  int64   `json:"priceCents"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	CategoryID  *string `json:"categoryId"`
}

// UpdateListingInput carries the partial-update payload; nil fields are
// left untouched.
type UpdateListingInput struct {
	Type        *string `json:"type"`
	Breed       *string `json:"breed"`
	PriceCents  *int64  `json:"priceCents"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	CategoryID  *string `json:"categoryId"`
}

// CreateListing publishes a new listing for the farmer with status Available.
func (s *Service) CreateListing(ctx context.Context, farmerID string, in CreateListingInput) (*domain.Listing, error) {
	if strings.TrimSpace(in.Type) == "" {
		return nil, errors.New("type required")
	}
	if strings.TrimSpace(in.Breed) == "" {
		return nil, errors.New("breed required")
	}
	if in.PriceCents < 0 {
		return nil, ErrInvalidPrice
	}
	return s.listings.Create(ctx, domain.Listing{
		Type:        strings.TrimSpace(in.Type),
		Breed:       strings.TrimSpace(in.Breed),
		PriceCents:  in.PriceCents,
		Status:      domain.StatusAvailable,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		FarmerID:    farmerID,
		CategoryID:  in.CategoryID,
	})
}

// UpdateListing applies the provided fields to a listing owned by
// farmerID. A listing owned by someone else is reported as not found.
func (s *Service) UpdateListing(ctx context.Context, farmerID, listingID string, in UpdateListingInput) (*domain.Listing, error) {
	fields := listingrepo.UpdateFields{
		Type:        in.Type,
		Breed:       in.Breed,
		PriceCents:  in.PriceCents,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
	}
	if in.PriceCents != nil && *in.PriceCents < 0 {
		return nil, ErrInvalidPrice
	}
	if in.Status != nil {
		status := domain.ListingStatus(*in.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		fields.Status = &status
	}
	return s.listings.UpdateOwned(ctx, farmerID, listingID, fields)
}

// ListAll returns every listing in insertion order.
func (s *Service) ListAll(ctx context.Context) ([]domain.Listing, error) {
	return s.listings.ListAll(ctx)
}

// ListByCategory returns the listings filed under the named category.
func (s *Service) ListByCategory(ctx context.Context, categoryName string) ([]domain.Listing, error) {
	c, err := s.categories.GetByName(ctx, strings.TrimSpace(categoryName))
	if err != nil {
		return nil, err
	}
	return s.listings.ListByCategory(ctx, c.ID)
}

// CreateCategory adds a new category name.
func (s *Service) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name required")
	}
	c, err := s.categories.Create(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrDuplicateCategory
		}
		return nil, err
	}
	return c, nil
}

// ListCategories returns all categories ordered by name.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}
