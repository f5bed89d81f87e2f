package cart

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"farmgate/internal/domain"
)

// fakeCartRepo mirrors the store's merge and recompute rules in memory:
// one Pending cart per buyer, lines merged by listing with the unit
// price snapshotted on first add, total recomputed after every write.
type fakeCartRepo struct {
	carts  map[string]*domain.Cart
	nextID int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*domain.Cart)}
}

func (f *fakeCartRepo) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakeCartRepo) pending(buyerID string) *domain.Cart {
	for _, c := range f.carts {
		if c.BuyerID == buyerID && c.Status == domain.CartPending {
			return c
		}
	}
	return nil
}

func (f *fakeCartRepo) recompute(c *domain.Cart) {
	var total int64
	for _, l := range c.Lines {
		total += l.UnitPriceCents * int64(l.Quantity)
	}
	c.TotalCents = total
}

func (f *fakeCartRepo) GetActiveByBuyer(_ context.Context, buyerID string) (*domain.Cart, error) {
	if c := f.pending(buyerID); c != nil {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCartRepo) AddItem(_ context.Context, buyerID string, listing domain.Listing, quantity int) (*domain.Cart, error) {
	c := f.pending(buyerID)
	if c == nil {
		c = &domain.Cart{ID: f.id("cart"), BuyerID: buyerID, Status: domain.CartPending}
		f.carts[c.ID] = c
	}
	merged := false
	for i := range c.Lines {
		if c.Lines[i].ListingID == listing.ID {
			c.Lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		c.Lines = append(c.Lines, domain.CartLine{
			ID:             f.id("line"),
			CartID:         c.ID,
			ListingID:      listing.ID,
			Quantity:       quantity,
			UnitPriceCents: listing.PriceCents,
		})
	}
	f.recompute(c)
	return c, nil
}

func (f *fakeCartRepo) RemoveItem(_ context.Context, buyerID, lineID string) (*domain.Cart, error) {
	c := f.pending(buyerID)
	if c == nil {
		return nil, domain.ErrNotFound
	}
	for i, l := range c.Lines {
		if l.ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			f.recompute(c)
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCartRepo) Checkout(_ context.Context, buyerID string) (*domain.Cart, error) {
	c := f.pending(buyerID)
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Status = domain.CartConfirmed
	return c, nil
}

type stubListingRepo struct {
	listing *domain.Listing
	err     error
	lastID  string
}

func (s *stubListingRepo) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	s.lastID = id
	return s.listing, s.err
}

func newService(listings *stubListingRepo) (*Service, *fakeCartRepo) {
	repo := newFakeCartRepo()
	return &Service{repo: repo, listings: listings}, repo
}

func TestAddItemValidation(t *testing.T) {
	svc, _ := newService(&stubListingRepo{})
	_, err := svc.AddItem(context.Background(), "alice", "listing-1", 0)
	if err == nil || err.Error() != "quantity must be positive" {
		t.Fatalf("expected quantity error, got %v", err)
	}
}

func TestAddItemUnknownListing(t *testing.T) {
	svc, _ := newService(&stubListingRepo{err: domain.ErrNotFound})
	_, err := svc.AddItem(context.Background(), "alice", "ghost", 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetActiveWithoutCart(t *testing.T) {
	svc, _ := newService(&stubListingRepo{})
	_, err := svc.GetActive(context.Background(), "alice")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Walks the full lifecycle: add 2 at 900 -> 1800, merge 1 more -> 2700
// with one line of quantity 3, remove the line -> 0, checkout with no
// Pending cart -> not found.
func TestCartLifecycle(t *testing.T) {
	ctx := context.Background()
	listings := &stubListingRepo{listing: &domain.Listing{ID: "listing-1", PriceCents: 900}}
	svc, _ := newService(listings)

	cart, err := svc.AddItem(ctx, "alice", "listing-1", 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if cart.TotalCents != 1800 {
		t.Fatalf("expected total 1800, got %d", cart.TotalCents)
	}

	cart, err = svc.AddItem(ctx, "alice", "listing-1", 1)
	if err != nil {
		t.Fatalf("merge add: %v", err)
	}
	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 3 {
		t.Fatalf("expected one merged line of quantity 3, got %+v", cart.Lines)
	}
	if cart.TotalCents != 2700 {
		t.Fatalf("expected total 2700, got %d", cart.TotalCents)
	}

	cart, err = svc.RemoveItem(ctx, "alice", cart.Lines[0].ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(cart.Lines) != 0 || cart.TotalCents != 0 {
		t.Fatalf("expected empty cart with zero total, got %+v", cart)
	}

	if _, err := svc.Checkout(ctx, "alice"); err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if _, err := svc.Checkout(ctx, "alice"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second checkout, got %v", err)
	}
}

func TestMergeKeepsSnapshottedUnitPrice(t *testing.T) {
	ctx := context.Background()
	listings := &stubListingRepo{listing: &domain.Listing{ID: "listing-1", PriceCents: 900}}
	svc, _ := newService(listings)

	if _, err := svc.AddItem(ctx, "alice", "listing-1", 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Price change after the first add must not touch the line.
	listings.listing = &domain.Listing{ID: "listing-1", PriceCents: 1500}
	cart, err := svc.AddItem(ctx, "alice", "listing-1", 1)
	if err != nil {
		t.Fatalf("merge add: %v", err)
	}
	if cart.Lines[0].UnitPriceCents != 900 {
		t.Fatalf("unit price re-snapshotted: %d", cart.Lines[0].UnitPriceCents)
	}
	if cart.TotalCents != 1800 {
		t.Fatalf("expected total 1800, got %d", cart.TotalCents)
	}
}

func TestCheckoutIsTerminal(t *testing.T) {
	ctx := context.Background()
	listings := &stubListingRepo{listing: &domain.Listing{ID: "listing-1", PriceCents: 900}}
	svc, repo := newService(listings)

	cart, err := svc.AddItem(ctx, "alice", "listing-1", 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	lineID := cart.Lines[0].ID
	if _, err := svc.Checkout(ctx, "alice"); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if _, err := svc.RemoveItem(ctx, "alice", lineID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound removing from confirmed cart, got %v", err)
	}
	if _, err := svc.GetActive(ctx, "alice"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected no active cart after checkout, got %v", err)
	}

	// A fresh add starts a new Pending cart rather than reopening.
	next, err := svc.AddItem(ctx, "alice", "listing-1", 1)
	if err != nil {
		t.Fatalf("add after checkout: %v", err)
	}
	if next.ID == cart.ID {
		t.Fatalf("confirmed cart was reopened")
	}
	if len(repo.carts) != 2 {
		t.Fatalf("expected two carts, got %d", len(repo.carts))
	}
}
