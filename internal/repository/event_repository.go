package repository // repository holds data access logic for domain entities

import (
	"context"
	"sync"

	"github.com/iliyamo/event-seating/internal/model"
)

// EventRepo stores events in insertion order.
type EventRepo struct {
	mu     sync.RWMutex
	events []model.Event
}

// NewEventRepo constructs an empty EventRepo.
func NewEventRepo() *EventRepo {
	return &EventRepo{}
}

// Create appends an event to the collection.
func (r *EventRepo) Create(_ context.Context, e model.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

// GetByID returns the event with the given identifier or
// ErrEventNotFound when no event matches.
func (r *EventRepo) GetByID(_ context.Context, id string) (*model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.events {
		if r.events[i].ID == id {
			e := r.events[i]
			return &e, nil
		}
	}
	return nil, ErrEventNotFound
}

// List returns all events in insertion order.
func (r *EventRepo) List(_ context.Context) ([]model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Event, len(r.events))
	copy(out, r.events)
	return out, nil
}

// ListByVenue returns all events hosted at the given venue.  The
// scheduling checker scans this list for calendar-day collisions.
func (r *EventRepo) ListByVenue(_ context.Context, venueID string) ([]model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Event
	for i := range r.events {
		if r.events[i].VenueID == venueID {
			out = append(out, r.events[i])
		}
	}
	return out, nil
}

// Update replaces the stored event carrying the same ID.
func (r *EventRepo) Update(_ context.Context, e model.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID == e.ID {
			r.events[i] = e
			return nil
		}
	}
	return ErrEventNotFound
}

// Delete removes the event with the given identifier.
func (r *EventRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return ErrEventNotFound
}

// AnyForVenue reports whether at least one event references the venue.
// Venue deletion is refused while this holds.
func (r *EventRepo) AnyForVenue(_ context.Context, venueID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.events {
		if r.events[i].VenueID == venueID {
			return true, nil
		}
	}
	return false, nil
}

// Truncate drops every event.  Used to reset state between test runs.
func (r *EventRepo) Truncate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
