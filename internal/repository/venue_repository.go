package repository // repository holds data access logic for domain entities

import (
	"context" // context keeps repository signatures uniform across stores
	"sync"    // sync guards the backing slice against concurrent access

	"github.com/iliyamo/event-seating/internal/model"
)

// VenueRepo stores venues in insertion order.  All methods are safe for
// concurrent use; mutating methods take the write lock so a lookup
// never observes a half-applied change.
type VenueRepo struct {
	mu     sync.RWMutex
	venues []model.Venue
}

// NewVenueRepo constructs an empty VenueRepo.
func NewVenueRepo() *VenueRepo {
	return &VenueRepo{}
}

// Create appends a venue to the collection.
func (r *VenueRepo) Create(_ context.Context, v model.Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.venues = append(r.venues, v)
	return nil
}

// GetByID returns the venue with the given identifier or
// ErrVenueNotFound when no venue matches.
func (r *VenueRepo) GetByID(_ context.Context, id string) (*model.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.venues {
		if r.venues[i].ID == id {
			v := r.venues[i]
			return &v, nil
		}
	}
	return nil, ErrVenueNotFound
}

// List returns all venues in insertion order.
func (r *VenueRepo) List(_ context.Context) ([]model.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Venue, len(r.venues))
	copy(out, r.venues)
	return out, nil
}

// Update replaces the stored venue carrying the same ID.
func (r *VenueRepo) Update(_ context.Context, v model.Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.venues {
		if r.venues[i].ID == v.ID {
			r.venues[i] = v
			return nil
		}
	}
	return ErrVenueNotFound
}

// Delete removes the venue with the given identifier.
func (r *VenueRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.venues {
		if r.venues[i].ID == id {
			r.venues = append(r.venues[:i], r.venues[i+1:]...)
			return nil
		}
	}
	return ErrVenueNotFound
}

// Truncate drops every venue.  Used to reset state between test runs.
func (r *VenueRepo) Truncate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.venues = nil
}
