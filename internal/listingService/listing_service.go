package listing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"bid-marketplace/internal/marketerrors"
	"bid-marketplace/internal/models"
	"bid-marketplace/internal/repository"
)

// ListingInput carries the raw creation payload. The two bid fields stay raw
// JSON so the tagged parse runs after the earlier field checks, keeping the
// documented rejection order stable.
type ListingInput struct {
	Email          string
	ItemName       string
	HasStartingBid json.RawMessage
	StartingBid    json.RawMessage
}

// ListingService implements the listing workflow and its read side.
type ListingService struct {
	store repository.MarketStore
}

// NewListingService creates a new ListingService instance
func NewListingService(store repository.MarketStore) *ListingService {
	return &ListingService{
		store: store,
	}
}

// CreateListing validates the input and persists a new listing. The stored
// row always satisfies has_starting_bid == (starting_bid != null).
func (s *ListingService) CreateListing(ctx context.Context, in ListingInput) error {
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return marketerrors.NewValidation("Invalid email")
	}
	if strings.TrimSpace(in.ItemName) == "" {
		return marketerrors.NewValidation("Item name is required")
	}

	hasStartingBid, err := parseBoolFlag(in.HasStartingBid)
	if err != nil {
		return err
	}

	var startingBid *float64
	if hasStartingBid {
		if isNull(in.StartingBid) {
			return marketerrors.NewValidation("Starting bid is required when enabled")
		}
		v, err := parseAmount(in.StartingBid)
		if err != nil {
			return marketerrors.NewValidation("Invalid starting bid value")
		}
		if v < 0 {
			return marketerrors.NewValidation("Starting bid must be >= 0")
		}
		startingBid = &v
	} else if !isNull(in.StartingBid) {
		return marketerrors.NewValidation("Starting bid must be empty when disabled")
	}

	l := models.Listing{
		Email:          in.Email,
		ItemName:       in.ItemName,
		HasStartingBid: hasStartingBid,
		StartingBid:    startingBid,
	}
	if err := s.store.CreateListing(ctx, l); err != nil {
		return fmt.Errorf("service: failed to create listing %q: %w", in.ItemName, err)
	}

	return nil
}

// AvailableListings returns every stored listing.
func (s *ListingService) AvailableListings(ctx context.Context) ([]models.Listing, error) {
	listings, err := s.store.ListListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list listings: %w", err)
	}
	return listings, nil
}

// parseBoolFlag accepts a JSON boolean or the case-insensitive strings
// "true"/"false". Any other representation, including an absent field, is
// rejected rather than coerced.
func parseBoolFlag(raw json.RawMessage) (bool, error) {
	// json.Unmarshal treats null as a no-op, so absent/null is caught first
	if isNull(raw) {
		return false, marketerrors.NewValidation("'hasStartingBid' must be a boolean or 'true'/'false' string")
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		switch strings.ToLower(str) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}

	return false, marketerrors.NewValidation("'hasStartingBid' must be a boolean or 'true'/'false' string")
}

// isNull reports whether the raw field is absent or JSON null.
func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// parseAmount accepts a JSON number or a numeric string.
func parseAmount(raw json.RawMessage) (float64, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return strconv.ParseFloat(strings.TrimSpace(str), 64)
	}

	return 0, fmt.Errorf("not a number: %s", raw)
}
