package bidding

import (
	"context"
	"errors"
	"fmt"

	"bid-marketplace/internal/marketerrors"
	"bid-marketplace/internal/models"
	"bid-marketplace/internal/repository"
)

// BiddingService implements the bid workflow and its read side.
type BiddingService struct {
	store repository.MarketStore
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(store repository.MarketStore) *BiddingService {
	return &BiddingService{
		store: store,
	}
}

// PlaceBid validates and records a bid against a listing. Every accepted bid
// is stored independently with status Pending; no listing aggregate is
// updated, and concurrent bids against the same listing snapshot are not
// serialized.
func (s *BiddingService) PlaceBid(ctx context.Context, email, itemName string, amount float64) error {
	// an amount of exactly 0 is indistinguishable from an absent field and
	// is rejected with the other missing-field cases
	if amount == 0 || email == "" || itemName == "" {
		return marketerrors.NewValidation("Missing required fields")
	}

	listing, err := s.store.GetListingByName(ctx, itemName)
	if err != nil {
		if errors.Is(err, marketerrors.ErrItemNotFound) {
			return fmt.Errorf("service: place bid on %q: %w", itemName, err)
		}
		return fmt.Errorf("service: failed to look up listing %q: %w", itemName, err)
	}

	if listing.HasStartingBid && listing.StartingBid != nil && amount < *listing.StartingBid {
		return &marketerrors.BidTooLowError{Minimum: *listing.StartingBid}
	}

	bid := models.Bid{
		Email:    email,
		ItemName: itemName,
		Amount:   amount,
		Status:   models.BidStatusPending,
	}
	if err := s.store.CreateBid(ctx, bid); err != nil {
		return fmt.Errorf("service: failed to record bid on %q: %w", itemName, err)
	}

	return nil
}

// AllBids returns every stored bid.
func (s *BiddingService) AllBids(ctx context.Context) ([]models.Bid, error) {
	bids, err := s.store.ListBids(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids: %w", err)
	}
	return bids, nil
}
