package models

// BidStatusPending is the status assigned to every newly recorded bid.
const BidStatusPending = "Pending"

// User represents a registered account. ID is assigned by the record store.
// JSON tags double as the store column names.
type User struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"` // bcrypt hash, never the plaintext
}

// Listing represents an item offered for bidding. Invariant:
// HasStartingBid is true iff StartingBid is non-nil.
type Listing struct {
	ID             int64    `json:"id,omitempty"`
	Email          string   `json:"email"`
	ItemName       string   `json:"item_name"`
	HasStartingBid bool     `json:"has_starting_bid"`
	StartingBid    *float64 `json:"starting_bid"`
}

// Bid represents a monetary offer against a listing. The listing is
// referenced by item name, not by id.
type Bid struct {
	ID       int64   `json:"id,omitempty"`
	Email    string  `json:"email"`
	ItemName string  `json:"item_name"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
}
