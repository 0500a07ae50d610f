package helpers

import (
	model "bid-marketplace/internal/models"
)

// PlaceBidRequest is the bid submission payload. Missing-field rules live in
// the service layer; an amount of exactly 0 counts as missing.
type PlaceBidRequest struct {
	Amount float64 `json:"amount"`
	Email  string  `json:"email"`
	Item   string  `json:"item"`
}

// BidView is the presentation shape for stored bids; the stored item_name
// column is exposed as "name". ID is untyped so the placeholder record can
// carry a string id.
type BidView struct {
	ID     any     `json:"id"`
	Email  string  `json:"email"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
	Name   string  `json:"name"`
}

// NewBidView reshapes a stored bid for presentation.
func NewBidView(b model.Bid) BidView {
	return BidView{
		ID:     b.ID,
		Email:  b.Email,
		Amount: b.Amount,
		Status: b.Status,
		Name:   b.ItemName,
	}
}

// PlaceholderBid is returned instead of an empty collection when no bids
// exist yet.
func PlaceholderBid() BidView {
	return BidView{
		ID:     "No bids",
		Email:  "Nobids@gmail.com",
		Amount: 0,
		Status: model.BidStatusPending,
		Name:   "Unknown",
	}
}
