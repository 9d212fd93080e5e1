package repository // repository holds data access logic for domain entities

import (
	"context"
	"sync"

	"github.com/iliyamo/event-seating/internal/model"
)

// GuestRepo stores guests in insertion order.  Guests always belong to
// exactly one event; lookups that carry an event ID treat a guest of
// another event as absent.
type GuestRepo struct {
	mu     sync.RWMutex
	guests []model.Guest
}

// NewGuestRepo constructs an empty GuestRepo.
func NewGuestRepo() *GuestRepo {
	return &GuestRepo{}
}

// Create appends a guest to the collection.
func (r *GuestRepo) Create(_ context.Context, g model.Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guests = append(r.guests, g)
	return nil
}

// GetByID returns the guest with the given identifier or
// ErrGuestNotFound when no guest matches.
func (r *GuestRepo) GetByID(_ context.Context, id string) (*model.Guest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.guests {
		if r.guests[i].ID == id {
			g := r.guests[i]
			return &g, nil
		}
	}
	return nil, ErrGuestNotFound
}

// GetByIDAndEvent returns the guest only when it belongs to the given
// event.  A guest of another event yields ErrGuestNotFound, matching
// the seating engine's resolution rules.
func (r *GuestRepo) GetByIDAndEvent(_ context.Context, id, eventID string) (*model.Guest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.guests {
		if r.guests[i].ID == id && r.guests[i].EventID == eventID {
			g := r.guests[i]
			return &g, nil
		}
	}
	return nil, ErrGuestNotFound
}

// ListByEvent returns all guests of an event in insertion order.
func (r *GuestRepo) ListByEvent(_ context.Context, eventID string) ([]model.Guest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Guest
	for i := range r.guests {
		if r.guests[i].EventID == eventID {
			out = append(out, r.guests[i])
		}
	}
	return out, nil
}

// Update replaces the stored guest carrying the same ID.
func (r *GuestRepo) Update(_ context.Context, g model.Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.guests {
		if r.guests[i].ID == g.ID {
			r.guests[i] = g
			return nil
		}
	}
	return ErrGuestNotFound
}

// Delete removes the guest with the given identifier.
func (r *GuestRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.guests {
		if r.guests[i].ID == id {
			r.guests = append(r.guests[:i], r.guests[i+1:]...)
			return nil
		}
	}
	return ErrGuestNotFound
}

// DeleteByEvent removes every guest of the given event and returns the
// IDs of the removed guests so the caller can cascade assignments.
func (r *GuestRepo) DeleteByEvent(_ context.Context, eventID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed []string
	kept := r.guests[:0]
	for i := range r.guests {
		if r.guests[i].EventID == eventID {
			removed = append(removed, r.guests[i].ID)
			continue
		}
		kept = append(kept, r.guests[i])
	}
	r.guests = kept
	return removed, nil
}

// Truncate drops every guest.  Used to reset state between test runs.
func (r *GuestRepo) Truncate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guests = nil
}
