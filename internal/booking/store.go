package booking

import (
	"context"
	"sync"
)

// MeetingStore persists booked meetings, keyed by contact ID. At most one
// meeting may exist per contact.
type MeetingStore interface {
	Put(ctx context.Context, meeting *Meeting) error
	GetByContactID(ctx context.Context, contactID string) (*Meeting, error)
	List(ctx context.Context) ([]*Meeting, error)
}

// InMemoryMeetingStore is the default MeetingStore for simulated runs.
type InMemoryMeetingStore struct {
	mu       sync.RWMutex
	meetings map[string]*Meeting
	order    []string
}

// NewInMemoryMeetingStore creates an empty in-memory meeting store.
func NewInMemoryMeetingStore() *InMemoryMeetingStore {
	return &InMemoryMeetingStore{meetings: make(map[string]*Meeting)}
}

// Put stores a meeting, failing if the contact already has one.
func (s *InMemoryMeetingStore) Put(ctx context.Context, meeting *Meeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.meetings[meeting.ContactID]; exists {
		return ErrMeetingExists
	}
	s.meetings[meeting.ContactID] = meeting
	s.order = append(s.order, meeting.ContactID)
	return nil
}

// GetByContactID retrieves the meeting booked for a contact.
func (s *InMemoryMeetingStore) GetByContactID(ctx context.Context, contactID string) (*Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meeting, ok := s.meetings[contactID]
	if !ok {
		return nil, ErrMeetingNotFound
	}
	return meeting, nil
}

// List returns all booked meetings in booking order.
func (s *InMemoryMeetingStore) List(ctx context.Context) ([]*Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Meeting, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.meetings[id])
	}
	return out, nil
}

var _ MeetingStore = (*InMemoryMeetingStore)(nil)
