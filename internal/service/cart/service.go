package cart

import (
	"context"
	"errors"

	"farmgate/internal/domain"
	cartrepo "farmgate/internal/repository/cart"
)

// Service drives the per-buyer cart lifecycle: NoCart, Pending after
// the first add, Confirmed after checkout.
type Service struct {
	repo     cartRepo
	listings listingRepo
}

type cartRepo interface {
	GetActiveByBuyer(ctx context.Context, buyerID string) (*domain.Cart, error)
	AddItem(ctx context.Context, buyerID string, listing domain.Listing, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, buyerID, lineID string) (*domain.Cart, error)
	Checkout(ctx context.Context, buyerID string) (*domain.Cart, error)
}

type listingRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
}

func New(repo cartrepo.Repository, listings listingRepo) *Service {
	return &Service{repo: repo, listings: listings}
}

// GetActive returns the buyer's Pending cart.
func (s *Service) GetActive(ctx context.Context, buyerID string) (*domain.Cart, error) {
	return s.repo.GetActiveByBuyer(ctx, buyerID)
}

// AddItem puts quantity of the listing into the buyer's active cart,
// creating the cart on first use. An existing line for the listing is
// merged by incrementing its quantity; its snapshotted unit price is
// kept as-is.
func (s *Service) AddItem(ctx context.Context, buyerID, listingID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	return s.repo.AddItem(ctx, buyerID, *listing, quantity)
}

// RemoveItem deletes a line from the buyer's Pending cart.
func (s *Service) RemoveItem(ctx context.Context, buyerID, lineID string) (*domain.Cart, error) {
	return s.repo.RemoveItem(ctx, buyerID, lineID)
}

// Checkout confirms the buyer's Pending cart. There is no payment or
// stock step; the status flip is the whole transition.
func (s *Service) Checkout(ctx context.Context, buyerID string) (*domain.Cart, error) {
	return s.repo.Checkout(ctx, buyerID)
}
