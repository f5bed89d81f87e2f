package domain

// FarmerOrder groups the cart lines referencing one farmer's listings
// by the cart they sit in. Carts of any status are included.
type FarmerOrder struct {
	CartID     string     `json:"cartId"`
	BuyerID    string     `json:"buyerId"`
	CartStatus CartStatus `json:"cartStatus"`
	Lines      []CartLine `json:"lines"`
}
