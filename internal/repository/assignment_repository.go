package repository // repository holds data access logic for domain entities

import (
	"context"
	"sync"

	"github.com/iliyamo/event-seating/internal/model"
)

// AssignmentRepo stores table assignments in insertion order.  The
// seating engine performs its conflict checks against the snapshots
// returned here and serializes check-then-act sequences itself.
type AssignmentRepo struct {
	mu          sync.RWMutex
	assignments []model.TableAssignment
}

// NewAssignmentRepo constructs an empty AssignmentRepo.
func NewAssignmentRepo() *AssignmentRepo {
	return &AssignmentRepo{}
}

// Create appends an assignment to the collection.
func (r *AssignmentRepo) Create(_ context.Context, a model.TableAssignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assignments = append(r.assignments, a)
	return nil
}

// ListByEventAndTable returns all assignments at one table of one
// event, in insertion order.
func (r *AssignmentRepo) ListByEventAndTable(_ context.Context, eventID, tableNumber string) ([]model.TableAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.TableAssignment
	for i := range r.assignments {
		if r.assignments[i].EventID == eventID && r.assignments[i].TableNumber == tableNumber {
			out = append(out, r.assignments[i])
		}
	}
	return out, nil
}

// ListByEvent returns all assignments of an event across all tables.
func (r *AssignmentRepo) ListByEvent(_ context.Context, eventID string) ([]model.TableAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.TableAssignment
	for i := range r.assignments {
		if r.assignments[i].EventID == eventID {
			out = append(out, r.assignments[i])
		}
	}
	return out, nil
}

// FindByGuest returns the guest's assignment within an event,
// regardless of table, or ErrAssignmentNotFound.  At most one such
// assignment exists per guest and event.
func (r *AssignmentRepo) FindByGuest(_ context.Context, eventID, guestID string) (*model.TableAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.assignments {
		if r.assignments[i].EventID == eventID && r.assignments[i].GuestID == guestID {
			a := r.assignments[i]
			return &a, nil
		}
	}
	return nil, ErrAssignmentNotFound
}

// Delete removes the assignment identified by the
// (event, table, guest) triple.
func (r *AssignmentRepo) Delete(_ context.Context, eventID, tableNumber, guestID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.assignments {
		a := &r.assignments[i]
		if a.EventID == eventID && a.TableNumber == tableNumber && a.GuestID == guestID {
			r.assignments = append(r.assignments[:i], r.assignments[i+1:]...)
			return nil
		}
	}
	return ErrAssignmentNotFound
}

// DeleteByGuest removes every assignment held by the guest.  Called
// when a guest is deleted so no orphaned assignment survives.
func (r *AssignmentRepo) DeleteByGuest(_ context.Context, guestID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	kept := r.assignments[:0]
	for i := range r.assignments {
		if r.assignments[i].GuestID == guestID {
			n++
			continue
		}
		kept = append(kept, r.assignments[i])
	}
	r.assignments = kept
	return n, nil
}

// DeleteByEvent removes every assignment of the event.  Called when an
// event is deleted.
func (r *AssignmentRepo) DeleteByEvent(_ context.Context, eventID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	kept := r.assignments[:0]
	for i := range r.assignments {
		if r.assignments[i].EventID == eventID {
			n++
			continue
		}
		kept = append(kept, r.assignments[i])
	}
	r.assignments = kept
	return n, nil
}

// Truncate drops every assignment.  Used to reset state between test runs.
func (r *AssignmentRepo) Truncate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assignments = nil
}
