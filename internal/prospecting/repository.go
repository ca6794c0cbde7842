package prospecting

import (
	"context"
	"sync"
)

// Repository defines the interface for contact storage
type Repository interface {
	Put(ctx context.Context, contact *Contact) error
	GetByID(ctx context.Context, id string) (*Contact, error)
	GetByEmail(ctx context.Context, email string) (*Contact, error)
	List(ctx context.Context) ([]*Contact, error)
}

// InMemoryRepository is an in-memory implementation of Repository
type InMemoryRepository struct {
	mu       sync.RWMutex
	contacts map[string]*Contact
	order    []string
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		contacts: make(map[string]*Contact),
	}
}

// Put stores a contact, keeping insertion order for listing.
func (r *InMemoryRepository) Put(ctx context.Context, contact *Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.contacts[contact.ID]; !exists {
		r.order = append(r.order, contact.ID)
	}
	r.contacts[contact.ID] = contact
	return nil
}

// GetByID retrieves a contact by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contact, ok := r.contacts[id]
	if !ok {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

// GetByEmail retrieves a contact by email address
func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, contact := range r.contacts {
		if contact.Email == email {
			return contact, nil
		}
	}
	return nil, ErrContactNotFound
}

// List returns all contacts in insertion order.
func (r *InMemoryRepository) List(ctx context.Context) ([]*Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Contact, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.contacts[id])
	}
	return out, nil
}

var _ Repository = (*InMemoryRepository)(nil)
