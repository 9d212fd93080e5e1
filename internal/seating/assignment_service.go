package seating

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/repository"
	"github.com/iliyamo/event-seating/internal/utils"
)

// resolveTable walks the Event -> Venue -> Table chain shared by every
// assignment operation.  The resolution order is part of the contract:
// each step owns the error the caller observes when it fails.
func (s *Service) resolveTable(ctx context.Context, eventID, tableNumber string) (*model.Event, *model.Feature, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, nil, NotFound(CodeEventNotFound, "event not found")
		}
		return nil, nil, Internal(err)
	}
	venue, err := s.venues.GetByID(ctx, event.VenueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, nil, NotFound(CodeVenueNotFound, "venue not found")
		}
		return nil, nil, Internal(err)
	}
	if venue.Map == nil {
		return nil, nil, NotFound(CodeVenueNotFound, "event venue has no seating map")
	}
	table := venue.Map.Table(tableNumber)
	if table == nil {
		return nil, nil, NotFound(CodeTableNotFound, "table not found in venue map")
	}
	return event, table, nil
}

// checkSeatConflicts scans the table's existing assignments for seats
// already owned by another guest.  excludeGuestID lets a re-check
// ignore that guest's own seats, reserved for an update-in-place path.
func (s *Service) checkSeatConflicts(ctx context.Context, eventID, tableNumber string, seatNumbers []int, excludeGuestID string) error {
	existing, err := s.assignments.ListByEventAndTable(ctx, eventID, tableNumber)
	if err != nil {
		return Internal(err)
	}
	occupied := make(map[int]bool)
	for i := range existing {
		if existing[i].GuestID == excludeGuestID {
			continue
		}
		for _, n := range existing[i].SeatNumbers {
			occupied[n] = true
		}
	}
	var conflicts []int
	for _, n := range seatNumbers {
		if occupied[n] {
			conflicts = append(conflicts, n)
		}
	}
	if len(conflicts) > 0 {
		sort.Ints(conflicts)
		return Conflict(CodeSeatAlreadyAssigned,
			fmt.Sprintf("seats already assigned: %v", conflicts)).
			WithDetails(map[string]any{"conflictingSeats": conflicts})
	}
	return nil
}

// CreateAssignment binds a guest's party to seats at a table.  Checks
// run in a fixed order so the observable error is deterministic:
// identifier format, event, venue map, table, guest membership, seat
// list shape, party size, seat range and duplicates, seat occupancy,
// and finally the one-assignment-per-guest rule.  The conflict checks
// and the insert run under the service mutex as one atomic unit.
func (s *Service) CreateAssignment(ctx context.Context, eventID, tableNumber, guestID string, seatNumbers []int) (*model.TableAssignment, error) {
	if !utils.IsValidID(eventID) || !utils.IsValidID(guestID) {
		return nil, Invalid(CodeInvalidIDFormat, "event id and guest id must be valid identifiers")
	}
	if tableNumber == "" {
		return nil, Invalid(CodeInvalidIDFormat, "table id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, table, err := s.resolveTable(ctx, eventID, tableNumber)
	if err != nil {
		return nil, err
	}
	guest, err := s.guests.GetByIDAndEvent(ctx, guestID, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			// A guest of another event is indistinguishable from a
			// nonexistent guest on purpose.
			return nil, NotFound(CodeGuestNotFound, "guest not found for this event")
		}
		return nil, Internal(err)
	}
	if len(seatNumbers) == 0 {
		return nil, Invalid(CodeInvalidSeatNumbers, "seatNumbers must be a non-empty array of integers")
	}
	if len(seatNumbers) != guest.PartySize {
		return nil, Invalid(CodeInvalidPartySize,
			fmt.Sprintf("expected %d seat numbers for party size %d, got %d",
				guest.PartySize, guest.PartySize, len(seatNumbers))).
			WithDetails(map[string]any{"partySize": guest.PartySize, "seatCount": len(seatNumbers)})
	}
	seats := *table.NumberOfSeats
	seen := make(map[int]bool, len(seatNumbers))
	var bad []int
	for _, n := range seatNumbers {
		if n < 1 || n > seats || seen[n] {
			bad = append(bad, n)
		}
		seen[n] = true
	}
	if len(bad) > 0 {
		sort.Ints(bad)
		return nil, Invalid(CodeInvalidSeatNumbers,
			fmt.Sprintf("invalid seat numbers %v: seats must be distinct and between 1 and %d", bad, seats)).
			WithDetails(map[string]any{"invalidSeats": bad, "numberOfSeats": seats})
	}
	if err := s.checkSeatConflicts(ctx, eventID, tableNumber, seatNumbers, ""); err != nil {
		return nil, err
	}
	if _, err := s.assignments.FindByGuest(ctx, eventID, guestID); err == nil {
		return nil, Conflict(CodeGuestAlreadyAssigned, "guest already has a table assignment for this event")
	} else if !errors.Is(err, repository.ErrAssignmentNotFound) {
		return nil, Internal(err)
	}
	now := s.now().UTC()
	assignment := model.TableAssignment{
		ID:          utils.NewID(),
		EventID:     eventID,
		TableNumber: tableNumber,
		GuestID:     guestID,
		SeatNumbers: append([]int(nil), seatNumbers...),
		AssignedAt:  now,
		CreatedAt:   now,
	}
	if err := s.assignments.Create(ctx, assignment); err != nil {
		return nil, Internal(err)
	}
	if s.publisher != nil {
		s.publisher.AssignmentCreated(ctx, assignment)
	}
	return &assignment, nil
}

// ListAssignments returns all assignments at one table of one event in
// insertion order, after the same event/venue/table resolution as
// creation.
func (s *Service) ListAssignments(ctx context.Context, eventID, tableNumber string) ([]model.TableAssignment, error) {
	if !utils.IsValidID(eventID) {
		return nil, Invalid(CodeInvalidIDFormat, "event id is not a valid identifier")
	}
	if tableNumber == "" {
		return nil, Invalid(CodeInvalidIDFormat, "table id is required")
	}
	if _, _, err := s.resolveTable(ctx, eventID, tableNumber); err != nil {
		return nil, err
	}
	assignments, err := s.assignments.ListByEventAndTable(ctx, eventID, tableNumber)
	if err != nil {
		return nil, Internal(err)
	}
	return assignments, nil
}

// DeleteAssignment removes the assignment identified by the
// (event, table, guest) triple.
func (s *Service) DeleteAssignment(ctx context.Context, eventID, tableNumber, guestID string) error {
	if !utils.IsValidID(eventID) || !utils.IsValidID(guestID) {
		return Invalid(CodeInvalidIDFormat, "event id and guest id must be valid identifiers")
	}
	if tableNumber == "" {
		return Invalid(CodeInvalidIDFormat, "table id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, _, err := s.resolveTable(ctx, eventID, tableNumber); err != nil {
		return err
	}
	assignment, err := s.assignments.FindByGuest(ctx, eventID, guestID)
	if err != nil || assignment.TableNumber != tableNumber {
		if err != nil && !errors.Is(err, repository.ErrAssignmentNotFound) {
			return Internal(err)
		}
		return NotFound(CodeAssignmentNotFound, "assignment not found")
	}
	if err := s.assignments.Delete(ctx, eventID, tableNumber, guestID); err != nil {
		return Internal(err)
	}
	if s.publisher != nil {
		s.publisher.AssignmentDeleted(ctx, *assignment)
	}
	return nil
}
