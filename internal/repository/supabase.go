package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bid-marketplace/internal/marketerrors"
	model "bid-marketplace/internal/models"
)

const defaultTimeout = 10 * time.Second

// SupabaseClient implements MarketStore against the Supabase REST surface:
// PostgREST for tables, the storage API for buckets.
type SupabaseClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ MarketStore = (*SupabaseClient)(nil)

// NewSupabaseClient creates a store client for the given project URL and API
// key. A nil http.Client gets a sane default timeout.
func NewSupabaseClient(baseURL, apiKey string, client *http.Client) *SupabaseClient {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &SupabaseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

// FindUserByEmail returns the user uniquely matching email.
func (s *SupabaseClient) FindUserByEmail(ctx context.Context, email string) (model.User, error) {
	var rows []model.User
	if err := s.selectRows(ctx, "users", map[string]string{"email": email}, &rows); err != nil {
		return model.User{}, err
	}
	switch len(rows) {
	case 0:
		return model.User{}, fmt.Errorf("find user by email: %w", marketerrors.ErrUserNotFound)
	case 1:
		return rows[0], nil
	default:
		return model.User{}, fmt.Errorf("find user by email: expected one row, got %d", len(rows))
	}
}

// CreateUser inserts a user and returns the stored row with its assigned id.
func (s *SupabaseClient) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	var rows []model.User
	if err := s.insertRow(ctx, "users", user, &rows); err != nil {
		return model.User{}, err
	}
	if len(rows) == 0 {
		return model.User{}, fmt.Errorf("insert users: store returned no representation")
	}
	return rows[0], nil
}

// CreateListing inserts a listing row.
func (s *SupabaseClient) CreateListing(ctx context.Context, listing model.Listing) error {
	return s.insertRow(ctx, "listings", listing, nil)
}

// GetListingByName returns the listing uniquely matching itemName.
func (s *SupabaseClient) GetListingByName(ctx context.Context, itemName string) (model.Listing, error) {
	var rows []model.Listing
	if err := s.selectRows(ctx, "listings", map[string]string{"item_name": itemName}, &rows); err != nil {
		return model.Listing{}, err
	}
	switch len(rows) {
	case 0:
		return model.Listing{}, fmt.Errorf("get listing %q: %w", itemName, marketerrors.ErrItemNotFound)
	case 1:
		return rows[0], nil
	default:
		return model.Listing{}, fmt.Errorf("get listing %q: expected one row, got %d", itemName, len(rows))
	}
}

// ListListings returns every listing row.
func (s *SupabaseClient) ListListings(ctx context.Context) ([]model.Listing, error) {
	var rows []model.Listing
	if err := s.selectRows(ctx, "listings", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateBid inserts a bid row.
func (s *SupabaseClient) CreateBid(ctx context.Context, bid model.Bid) error {
	return s.insertRow(ctx, "bids", bid, nil)
}

// ListBids returns every bid row.
func (s *SupabaseClient) ListBids(ctx context.Context) ([]model.Bid, error) {
	var rows []model.Bid
	if err := s.selectRows(ctx, "bids", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ListBuckets lists the store's storage buckets.
func (s *SupabaseClient) ListBuckets(ctx context.Context) ([]Bucket, error) {
	u := s.baseURL + "/storage/v1/bucket"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}
	s.setHeaders(req)

	var buckets []Bucket
	if err := s.do(req, "list buckets", &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

// selectRows fetches rows from a table, optionally filtered by column
// equality, and decodes them into dest.
func (s *SupabaseClient) selectRows(ctx context.Context, table string, filters map[string]string, dest any) error {
	q := url.Values{}
	q.Set("select", "*")
	for col, val := range filters {
		q.Set(col, "eq."+val)
	}

	u := fmt.Sprintf("%s/rest/v1/%s?%s", s.baseURL, table, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}
	s.setHeaders(req)

	return s.do(req, "select "+table, dest)
}

// insertRow inserts a record into a table. When dest is non-nil the store is
// asked to return the inserted representation and it is decoded into dest.
func (s *SupabaseClient) insertRow(ctx context.Context, table string, record, dest any) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("insert %s: encode record: %w", table, err)
	}

	u := fmt.Sprintf("%s/rest/v1/%s", s.baseURL, table)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	if dest != nil {
		req.Header.Set("Prefer", "return=representation")
	} else {
		req.Header.Set("Prefer", "return=minimal")
	}

	return s.do(req, "insert "+table, dest)
}

func (s *SupabaseClient) do(req *http.Request, op string, dest any) error {
	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return fmt.Errorf("%s: store returned http %d", op, res.StatusCode)
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func (s *SupabaseClient) setHeaders(req *http.Request) {
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
}
