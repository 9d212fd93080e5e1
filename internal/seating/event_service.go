package seating

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/repository"
	"github.com/iliyamo/event-seating/internal/utils"
)

// CreateEventInput carries the fields of an event-creation request.
// ExpectedGuests is optional; zero means no expectation was supplied.
type CreateEventInput struct {
	UserID         string
	VenueID        string
	Type           model.EventType
	Title          string
	Description    string
	Date           time.Time
	ExpectedGuests int
}

// UpdateEventInput carries a partial event update.
type UpdateEventInput struct {
	VenueID        *string
	Type           *model.EventType
	Title          *string
	Description    *string
	Date           *time.Time
	ExpectedGuests int
}

// CreateEvent validates scheduling constraints and stores a new event:
// the venue must exist, the date must lie in the future, the venue must
// be free on that calendar day, and an expected guest count must fit
// the venue's capacity.
func (s *Service) CreateEvent(ctx context.Context, in CreateEventInput) (*model.Event, error) {
	if !utils.IsValidID(in.VenueID) {
		return nil, Invalid(CodeInvalidIDFormat, "venue id is not a valid identifier")
	}
	if !model.ValidEventType(in.Type) {
		return nil, Invalid(CodeValidation, "event type must be one of wedding, birthday, corporate, other")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, Invalid(CodeValidation, "title is required")
	}
	if err := s.checkEventDate(in.Date); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	venue, err := s.venues.GetByID(ctx, in.VenueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, NotFound(CodeVenueNotFound, "venue not found")
		}
		return nil, Internal(err)
	}
	if err := checkVenueCapacity(venue, in.ExpectedGuests); err != nil {
		return nil, err
	}
	if err := s.checkVenueDayConflict(ctx, in.VenueID, in.Date, ""); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	event := model.Event{
		ID:          utils.NewID(),
		UserID:      in.UserID,
		VenueID:     in.VenueID,
		Type:        in.Type,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Date:        in.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, Internal(err)
	}
	return &event, nil
}

// GetEvent returns an event by identifier.
func (s *Service) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	if !utils.IsValidID(id) {
		return nil, Invalid(CodeInvalidIDFormat, "event id is not a valid identifier")
	}
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, NotFound(CodeEventNotFound, "event not found")
		}
		return nil, Internal(err)
	}
	return event, nil
}

// ListEvents returns every event in insertion order.
func (s *Service) ListEvents(ctx context.Context) ([]model.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, Internal(err)
	}
	return events, nil
}

// UpdateEvent applies a partial update, re-running the scheduling
// checks with the event itself excluded from the conflict scan.  When
// the venue changes, the total party size of guests already attached
// must fit the new venue's capacity; the guest repository is read
// directly rather than through any ambient state.
func (s *Service) UpdateEvent(ctx context.Context, id string, in UpdateEventInput) (*model.Event, error) {
	if !utils.IsValidID(id) {
		return nil, Invalid(CodeInvalidIDFormat, "event id is not a valid identifier")
	}
	if in.VenueID != nil && !utils.IsValidID(*in.VenueID) {
		return nil, Invalid(CodeInvalidIDFormat, "venue id is not a valid identifier")
	}
	if in.Type != nil && !model.ValidEventType(*in.Type) {
		return nil, Invalid(CodeValidation, "event type must be one of wedding, birthday, corporate, other")
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, Invalid(CodeValidation, "title must not be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, NotFound(CodeEventNotFound, "event not found")
		}
		return nil, Internal(err)
	}

	venueID := event.VenueID
	if in.VenueID != nil {
		venueID = *in.VenueID
	}
	date := event.Date
	if in.Date != nil {
		date = *in.Date
	}
	// The future-date invariant holds at every update, not only when
	// the date itself changes.
	if err := s.checkEventDate(date); err != nil {
		return nil, err
	}
	venue, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, NotFound(CodeVenueNotFound, "venue not found")
		}
		return nil, Internal(err)
	}
	if err := s.checkVenueDayConflict(ctx, venueID, date, event.ID); err != nil {
		return nil, err
	}
	if err := checkVenueCapacity(venue, in.ExpectedGuests); err != nil {
		return nil, err
	}
	if in.VenueID != nil && *in.VenueID != event.VenueID {
		attached, err := s.attachedPartyTotal(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		if attached > venue.Capacity {
			return nil, Invalid(CodeCapacityExceeded, "attached guests exceed the new venue's capacity").
				WithDetails(map[string]any{"capacity": venue.Capacity, "attachedGuests": attached})
		}
	}

	event.VenueID = venueID
	event.Date = date
	if in.Type != nil {
		event.Type = *in.Type
	}
	if in.Title != nil {
		event.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	event.UpdatedAt = s.now().UTC()
	if err := s.events.Update(ctx, *event); err != nil {
		return nil, Internal(err)
	}
	return event, nil
}

// DeleteEvent removes an event together with its guests and their
// assignments so no dangling reference survives.
func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	if !utils.IsValidID(id) {
		return Invalid(CodeInvalidIDFormat, "event id is not a valid identifier")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.events.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return NotFound(CodeEventNotFound, "event not found")
		}
		return Internal(err)
	}
	if _, err := s.assignments.DeleteByEvent(ctx, id); err != nil {
		return Internal(err)
	}
	if _, err := s.guests.DeleteByEvent(ctx, id); err != nil {
		return Internal(err)
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return Internal(err)
	}
	return nil
}
