package suppression

import (
	"context"
	"sync"
)

// Reason records why an address was suppressed.
type Reason string

const (
	ReasonBounced      Reason = "bounced"
	ReasonUnsubscribed Reason = "unsubscribed"
)

// Store tracks addresses that must not be contacted again.
type Store interface {
	Add(ctx context.Context, email string, reason Reason) error
	IsSuppressed(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// InMemoryStore is the default Store for simulated runs.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Reason
}

// NewInMemoryStore creates an empty in-memory suppression list.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{entries: make(map[string]Reason)}
}

// Add suppresses an address.
func (s *InMemoryStore) Add(ctx context.Context, email string, reason Reason) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[email] = reason
	return nil
}

// IsSuppressed reports whether an address is on the list.
func (s *InMemoryStore) IsSuppressed(ctx context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[email]
	return ok, nil
}

// Count returns the number of suppressed addresses.
func (s *InMemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

var _ Store = (*InMemoryStore)(nil)
