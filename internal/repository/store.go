package repository

import (
	"context"

	model "bid-marketplace/internal/models"
)

// MarketStore defines the record-store operations the marketplace needs.
// The store is a remote collaborator; every call carries the request context.
type MarketStore interface {
	// FindUserByEmail returns the single user with the given email, or
	// marketerrors.ErrUserNotFound when no row matches.
	FindUserByEmail(ctx context.Context, email string) (model.User, error)
	// CreateUser inserts a new user and returns the stored row with its
	// store-assigned id.
	CreateUser(ctx context.Context, user model.User) (model.User, error)

	CreateListing(ctx context.Context, listing model.Listing) error
	// GetListingByName returns the single listing with the given item name,
	// or marketerrors.ErrItemNotFound when no row matches.
	GetListingByName(ctx context.Context, itemName string) (model.Listing, error)
	ListListings(ctx context.Context) ([]model.Listing, error)

	CreateBid(ctx context.Context, bid model.Bid) error
	ListBids(ctx context.Context) ([]model.Bid, error)

	// ListBuckets probes the store's storage API, used by the health check.
	ListBuckets(ctx context.Context) ([]Bucket, error)
}

// Bucket is a storage bucket descriptor returned by the store.
type Bucket struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Public    bool   `json:"public"`
	CreatedAt string `json:"created_at"`
}
