package seating

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/repository"
)

// Publisher receives notifications after an assignment is created or
// deleted.  Implementations must not block the request path; failures
// are the implementation's problem, not the caller's.
type Publisher interface {
	AssignmentCreated(ctx context.Context, a model.TableAssignment)
	AssignmentDeleted(ctx context.Context, a model.TableAssignment)
}

// Service bundles the four repositories and enforces every
// cross-entity invariant.  A single mutex serializes all mutating
// operations so that a conflict check and the mutation it guards form
// one atomic unit; reads go straight to the repositories, which take
// their own read locks.
type Service struct {
	mu          sync.Mutex
	venues      *repository.VenueRepo
	events      *repository.EventRepo
	guests      *repository.GuestRepo
	assignments *repository.AssignmentRepo
	publisher   Publisher // may be nil; events are then skipped
	now         func() time.Time
	maxParty    int
}

// Option tweaks Service construction.
type Option func(*Service)

// WithPublisher wires a domain event publisher.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithNow overrides the clock, used by tests to pin "the future".
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithMaxPartySize overrides the party size cap (default 20).
func WithMaxPartySize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxParty = n
		}
	}
}

// NewService constructs the seating service.  All repositories are
// required; the guest repository is an explicit dependency of the
// event update path so capacity checks always see the same guest
// collection the rest of the system writes to.
func NewService(venues *repository.VenueRepo, events *repository.EventRepo, guests *repository.GuestRepo, assignments *repository.AssignmentRepo, opts ...Option) *Service {
	if venues == nil || events == nil || guests == nil || assignments == nil {
		panic("nil repository passed to NewService")
	}
	s := &Service{
		venues:      venues,
		events:      events,
		guests:      guests,
		assignments: assignments,
		now:         time.Now,
		maxParty:    20,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
