package perftests

import (
	"context"
	"fmt"
	"sync"

	"bid-marketplace/internal/marketerrors"
	model "bid-marketplace/internal/models"
	"bid-marketplace/internal/repository"
)

// memStore is an in-memory MarketStore used to benchmark the service layer
// without the latency of a remote record store.
type memStore struct {
	mu       sync.RWMutex
	nextID   int64
	users    map[string]model.User
	listings map[string]model.Listing
	bids     []model.Bid
}

var _ repository.MarketStore = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		nextID:   1,
		users:    make(map[string]model.User),
		listings: make(map[string]model.Listing),
	}
}

func (m *memStore) FindUserByEmail(_ context.Context, email string) (model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[email]
	if !ok {
		return model.User{}, fmt.Errorf("find user by email: %w", marketerrors.ErrUserNotFound)
	}
	return user, nil
}

func (m *memStore) CreateUser(_ context.Context, user model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = m.nextID
	m.nextID++
	m.users[user.Email] = user
	return user, nil
}

func (m *memStore) CreateListing(_ context.Context, listing model.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	listing.ID = m.nextID
	m.nextID++
	m.listings[listing.ItemName] = listing
	return nil
}

func (m *memStore) GetListingByName(_ context.Context, itemName string) (model.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	listing, ok := m.listings[itemName]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %q: %w", itemName, marketerrors.ErrItemNotFound)
	}
	return listing, nil
}

func (m *memStore) ListListings(_ context.Context) ([]model.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Listing, 0, len(m.listings))
	for _, l := range m.listings {
		out = append(out, l)
	}
	return out, nil
}

func (m *memStore) CreateBid(_ context.Context, bid model.Bid) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	bid.ID = m.nextID
	m.nextID++
	m.bids = append(m.bids, bid)
	return nil
}

func (m *memStore) ListBids(_ context.Context) ([]model.Bid, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Bid, len(m.bids))
	copy(out, m.bids)
	return out, nil
}

func (m *memStore) ListBuckets(_ context.Context) ([]repository.Bucket, error) {
	return []repository.Bucket{{ID: "item-images", Name: "item-images", Public: true}}, nil
}
