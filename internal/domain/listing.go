package domain

import "time"

// ListingStatus is the sale state of a published animal.
type ListingStatus string

const (
	StatusAvailable ListingStatus = "Available"
	StatusPending   ListingStatus = "Pending"
	StatusSoldOut   ListingStatus = "Sold Out"
)

// Valid reports whether s is one of the enumerated statuses.
func (s ListingStatus) Valid() bool {
	return s == StatusAvailable || s == StatusPending || s == StatusSoldOut
}

// Listing is a sellable animal record published by a farmer.
// Prices are integer cents.
type Listing struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"`
	Breed       string        `json:"breed"`
	PriceCents  int64         `json:"priceCents"`
	Status      ListingStatus `json:"status"`
	Description string        `json:"description,omitempty"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	FarmerID    string        `json:"farmerId"`
	CategoryID  *string       `json:"categoryId,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}
