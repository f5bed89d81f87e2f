package domain

import "time"

// CartStatus is the lifecycle state of a cart. A cart is created
// Pending and flips to Confirmed on checkout; there is no way back.
type CartStatus string

const (
	CartPending   CartStatus = "Pending"
	CartConfirmed CartStatus = "Confirmed"
)

type Cart struct {
	ID         string     `json:"id"`
	BuyerID    string     `json:"buyerId"`
	TotalCents int64      `json:"totalCents"`
	Status     CartStatus `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	Lines      []CartLine `json:"lines,omitempty"`
}

// CartLine references a listing with a quantity and the unit price
// snapshotted when the line was first added. Later listing price
// changes do not touch it.
type CartLine struct {
	ID             string    `json:"id"`
	CartID         string    `json:"cartId"`
	ListingID      string    `json:"listingId"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	CreatedAt      time.Time `json:"createdAt"`
}
