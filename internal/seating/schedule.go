package seating

import (
	"context"
	"time"

	"github.com/iliyamo/event-seating/internal/model"
)

// checkEventDate enforces that a candidate event date lies strictly in
// the future at the moment of the call.
func (s *Service) checkEventDate(date time.Time) error {
	if !date.After(s.now()) {
		return Invalid(CodeInvalidEventDate, "event date must be in the future")
	}
	return nil
}

// checkVenueDayConflict scans the venue's events for one falling on the
// same calendar day as the candidate date.  excludeEventID omits the
// event being updated from the scan so an unrelated-field update does
// not conflict with itself.
func (s *Service) checkVenueDayConflict(ctx context.Context, venueID string, date time.Time, excludeEventID string) error {
	existing, err := s.events.ListByVenue(ctx, venueID)
	if err != nil {
		return Internal(err)
	}
	for i := range existing {
		if existing[i].ID == excludeEventID {
			continue
		}
		if model.SameCalendarDay(existing[i].Date, date) {
			return Conflict(CodeVenueBooked, "venue already booked for this date").
				WithDetails(map[string]any{"conflictingEventId": existing[i].ID})
		}
	}
	return nil
}

// checkVenueCapacity enforces that an expected guest count fits the
// venue.  Zero means the request carried no expectation.
func checkVenueCapacity(venue *model.Venue, expectedGuests int) error {
	if expectedGuests > 0 && expectedGuests > venue.Capacity {
		return Invalid(CodeCapacityExceeded, "expected guest count exceeds venue capacity").
			WithDetails(map[string]any{"capacity": venue.Capacity, "expectedGuests": expectedGuests})
	}
	return nil
}

// attachedPartyTotal sums partySize across the guests already attached
// to the event.  Used when an update moves the event to another venue.
func (s *Service) attachedPartyTotal(ctx context.Context, eventID string) (int, error) {
	guests, err := s.guests.ListByEvent(ctx, eventID)
	if err != nil {
		return 0, Internal(err)
	}
	total := 0
	for i := range guests {
		total += guests[i].PartySize
	}
	return total, nil
}
