package seating

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/repository"
	"github.com/iliyamo/event-seating/internal/utils"
)

// GuestInput carries the fields of a guest-creation request.
type GuestInput struct {
	Name      string
	Email     string
	Phone     string
	Status    model.GuestStatus
	PartySize int
}

// UpdateGuestInput carries a partial guest update.
type UpdateGuestInput struct {
	Name      *string
	Email     *string
	Phone     *string
	Status    *model.GuestStatus
	PartySize *int
}

// validatePartySize enforces 1 <= partySize <= cap uniformly across
// create and update.
func (s *Service) validatePartySize(n int) error {
	if n < 1 || n > s.maxParty {
		return Invalid(CodeInvalidPartySize, "partySize must be between 1 and "+strconv.Itoa(s.maxParty))
	}
	return nil
}

// CreateGuest attaches a new guest to an event.
func (s *Service) CreateGuest(ctx context.Context, eventID string, in GuestInput) (*model.Guest, error) {
	if !utils.IsValidID(eventID) {
		return nil, Invalid(CodeInvalidIDFormat, "event id is not a valid identifier")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, Invalid(CodeValidation, "name is required")
	}
	status := in.Status
	if status == "" {
		status = model.GuestInvited
	}
	if !model.ValidGuestStatus(status) {
		return nil, Invalid(CodeValidation, "status must be one of invited, confirmed, declined, pending, waitlisted")
	}
	if err := s.validatePartySize(in.PartySize); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, NotFound(CodeEventNotFound, "event not found")
		}
		return nil, Internal(err)
	}
	now := s.now().UTC()
	guest := model.Guest{
		ID:        utils.NewID(),
		EventID:   eventID,
		Name:      strings.TrimSpace(in.Name),
		Email:     in.Email,
		Phone:     in.Phone,
		Status:    status,
		PartySize: in.PartySize,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.guests.Create(ctx, guest); err != nil {
		return nil, Internal(err)
	}
	return &guest, nil
}

// GetGuest returns a guest of the given event.  A guest belonging to a
// different event is reported as not found.
func (s *Service) GetGuest(ctx context.Context, eventID, guestID string) (*model.Guest, error) {
	if !utils.IsValidID(eventID) || !utils.IsValidID(guestID) {
		return nil, Invalid(CodeInvalidIDFormat, "event id and guest id must be valid identifiers")
	}
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, NotFound(CodeEventNotFound, "event not found")
		}
		return nil, Internal(err)
	}
	guest, err := s.guests.GetByIDAndEvent(ctx, guestID, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return nil, NotFound(CodeGuestNotFound, "guest not found")
		}
		return nil, Internal(err)
	}
	return guest, nil
}

// ListGuests returns the guests of an event annotated with their
// current table assignment.  When assigned is non-nil the listing is
// filtered down to guests that do (true) or do not (false) hold an
// assignment; the partition is driven by a set built from the
// assignment collection keyed by guest id.
func (s *Service) ListGuests(ctx context.Context, eventID string, assigned *bool) ([]model.GuestWithAssignment, error) {
	if !utils.IsValidID(eventID) {
		return nil, Invalid(CodeInvalidIDFormat, "event id is not a valid identifier")
	}
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, NotFound(CodeEventNotFound, "event not found")
		}
		return nil, Internal(err)
	}
	guests, err := s.guests.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, Internal(err)
	}
	assignments, err := s.assignments.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, Internal(err)
	}
	byGuest := make(map[string]*model.TableAssignment, len(assignments))
	for i := range assignments {
		byGuest[assignments[i].GuestID] = &assignments[i]
	}
	out := make([]model.GuestWithAssignment, 0, len(guests))
	for i := range guests {
		a, has := byGuest[guests[i].ID]
		if assigned != nil && *assigned != has {
			continue
		}
		g := model.GuestWithAssignment{Guest: guests[i]}
		if has {
			g.TableAssignment = &model.GuestAssignment{
				TableNumber: a.TableNumber,
				SeatNumbers: a.SeatNumbers,
				AssignedAt:  a.AssignedAt,
			}
		}
		out = append(out, g)
	}
	return out, nil
}

// UpdateGuest applies a partial update to a guest of the event.
func (s *Service) UpdateGuest(ctx context.Context, eventID, guestID string, in UpdateGuestInput) (*model.Guest, error) {
	if !utils.IsValidID(eventID) || !utils.IsValidID(guestID) {
		return nil, Invalid(CodeInvalidIDFormat, "event id and guest id must be valid identifiers")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, Invalid(CodeValidation, "name must not be empty")
	}
	if in.Status != nil && !model.ValidGuestStatus(*in.Status) {
		return nil, Invalid(CodeValidation, "status must be one of invited, confirmed, declined, pending, waitlisted")
	}
	if in.PartySize != nil {
		if err := s.validatePartySize(*in.PartySize); err != nil {
			return nil, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	guest, err := s.guests.GetByIDAndEvent(ctx, guestID, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return nil, NotFound(CodeGuestNotFound, "guest not found")
		}
		return nil, Internal(err)
	}
	if in.Name != nil {
		guest.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		guest.Email = *in.Email
	}
	if in.Phone != nil {
		guest.Phone = *in.Phone
	}
	if in.Status != nil {
		guest.Status = *in.Status
	}
	if in.PartySize != nil {
		guest.PartySize = *in.PartySize
	}
	guest.UpdatedAt = s.now().UTC()
	if err := s.guests.Update(ctx, *guest); err != nil {
		return nil, Internal(err)
	}
	return guest, nil
}

// DeleteGuest removes a guest and cascades to every assignment the
// guest holds.
func (s *Service) DeleteGuest(ctx context.Context, eventID, guestID string) error {
	if !utils.IsValidID(eventID) || !utils.IsValidID(guestID) {
		return Invalid(CodeInvalidIDFormat, "event id and guest id must be valid identifiers")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.guests.GetByIDAndEvent(ctx, guestID, eventID); err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return NotFound(CodeGuestNotFound, "guest not found")
		}
		return Internal(err)
	}
	if _, err := s.assignments.DeleteByGuest(ctx, guestID); err != nil {
		return Internal(err)
	}
	if err := s.guests.Delete(ctx, guestID); err != nil {
		return Internal(err)
	}
	return nil
}
