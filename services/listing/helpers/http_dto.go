package helpers

import (
	"encoding/json"

	model "bid-marketplace/internal/models"
)

// CreateListingRequest keeps the two bid fields raw so the service can run
// its tagged parse in the documented validation order.
type CreateListingRequest struct {
	Email          string          `json:"email"`
	ItemName       string          `json:"itemName"`
	HasStartingBid json.RawMessage `json:"hasStartingBid"`
	StartingBid    json.RawMessage `json:"startingBid"`
}

// ListingView is the presentation shape for stored listings.
type ListingView struct {
	ItemName       string   `json:"itemName"`
	HasStartingBid bool     `json:"hasStartingBid"`
	StartingBid    *float64 `json:"startingBid"`
}

// NewListingView reshapes a stored listing for presentation.
func NewListingView(l model.Listing) ListingView {
	return ListingView{
		ItemName:       l.ItemName,
		HasStartingBid: l.HasStartingBid,
		StartingBid:    l.StartingBid,
	}
}

// PlaceholderListing is returned instead of an empty collection when no
// listings exist yet.
func PlaceholderListing() ListingView {
	bid := float64(100000)
	return ListingView{
		ItemName:       "No available products",
		HasStartingBid: true,
		StartingBid:    &bid,
	}
}
