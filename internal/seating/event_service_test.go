package seating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-seating/internal/model"
)

func TestCreateEvent_Success(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, testMap(tableFeature("T1", 4)))

	event, err := s.CreateEvent(context.Background(), CreateEventInput{
		UserID:  "8f7ad516-9c4b-4f82-9d61-13f4e03b6a77",
		VenueID: venue.ID,
		Type:    model.EventBirthday,
		Title:   "Fortieth",
		Date:    testNow.AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, venue.ID, event.VenueID)
	assert.Equal(t, model.EventBirthday, event.Type)
}

func TestCreateEvent_DateMustBeFuture(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, nil)

	for _, date := range []time.Time{testNow, testNow.Add(-time.Hour)} {
		_, err := s.CreateEvent(context.Background(), CreateEventInput{
			UserID:  "8f7ad516-9c4b-4f82-9d61-13f4e03b6a77",
			VenueID: venue.ID,
			Type:    model.EventOther,
			Title:   "Retro",
			Date:    date,
		})
		assert.EqualError(t, err, "event date must be in the future")
	}
}

func TestCreateEvent_VenueNotFound(t *testing.T) {
	s := newTestService(t)
	_, err := s.CreateEvent(context.Background(), CreateEventInput{
		UserID:  "8f7ad516-9c4b-4f82-9d61-13f4e03b6a77",
		VenueID: "3b9b2f6e-1d3a-4f4f-8c3a-2f7d9e1b5c44",
		Type:    model.EventOther,
		Title:   "Nowhere",
		Date:    testNow.AddDate(0, 0, 1),
	})
	requireDomainErr(t, err, CodeVenueNotFound)
}

func TestCreateEvent_InvalidVenueIDFormat(t *testing.T) {
	s := newTestService(t)
	_, err := s.CreateEvent(context.Background(), CreateEventInput{
		UserID:  "8f7ad516-9c4b-4f82-9d61-13f4e03b6a77",
		VenueID: "not-a-uuid",
		Type:    model.EventOther,
		Title:   "Bad",
		Date:    testNow.AddDate(0, 0, 1),
	})
	requireDomainErr(t, err, CodeInvalidIDFormat)
}

// Scenario: a venue hosts at most one event per calendar day; a
// different day at the same venue is fine.
func TestCreateEvent_VenueDayConflict(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, nil)
	day := time.Date(2026, 12, 31, 18, 0, 0, 0, time.UTC)

	_, err := s.CreateEvent(context.Background(), CreateEventInput{
		UserID:  "8f7ad516-9c4b-4f82-9d61-13f4e03b6a77",
		VenueID: venue.ID,
		Type:    model.EventWedding,
		Title:   "New Year's Eve Party",
		Date:    day,
	})
	require.NoError(t, err)

	// Same calendar day, different time of day: rejected.
	_, err = s.CreateEvent(context.Background(), CreateEventInput{
		UserID:  "8f7ad516-9c4b-4f82-9d61-13f4e03b6a77",
		VenueID: venue.ID,
		Type:    model.EventCorporate,
		Title:   "Year-End Dinner",
		Date:    day.Add(3 * time.Hour),
	})
	requireDomainErr(t, err, CodeVenueBooked)
	assert.EqualError(t, err, "venue already booked for this date")

	// Next day: accepted.
	_, err = s.CreateEvent(context.Background(), CreateEventInput{
		UserID:  "8f7ad516-9c4b-4f82-9d61-13f4e03b6a77",
		VenueID: venue.ID,
		Type:    model.EventCorporate,
		Title:   "New Year Brunch",
		Date:    day.AddDate(0, 0, 1),
	})
	assert.NoError(t, err)
}

func TestCreateEvent_ExpectedGuestsCapacity(t *testing.T) {
	s := newTestService(t)
	venue, err := s.CreateVenue(context.Background(), CreateVenueInput{
		Name: "Small Room", Capacity: 30,
	})
	require.NoError(t, err)

	_, err = s.CreateEvent(context.Background(), CreateEventInput{
		UserID:         "8f7ad516-9c4b-4f82-9d61-13f4e03b6a77",
		VenueID:        venue.ID,
		Type:           model.EventCorporate,
		Title:          "Offsite",
		Date:           testNow.AddDate(0, 0, 3),
		ExpectedGuests: 31,
	})
	requireDomainErr(t, err, CodeCapacityExceeded)
}

func TestUpdateEvent_SelfConflictExcluded(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, nil)
	event := seedEvent(t, s, venue.ID)

	// Updating an unrelated field must not collide with the event's
	// own booking on that day.
	title := "Renamed Wedding"
	updated, err := s.UpdateEvent(context.Background(), event.ID, UpdateEventInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Wedding", updated.Title)
	assert.Equal(t, event.Date, updated.Date)
}

func TestUpdateEvent_ConflictWithOtherEvent(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, nil)
	first := seedEvent(t, s, venue.ID)

	second, err := s.CreateEvent(context.Background(), CreateEventInput{
		UserID:  "8f7ad516-9c4b-4f82-9d61-13f4e03b6a77",
		VenueID: venue.ID,
		Type:    model.EventOther,
		Title:   "Second",
		Date:    first.Date.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	// Moving the second event onto the first one's day must fail.
	date := first.Date.Add(30 * time.Minute)
	_, err = s.UpdateEvent(context.Background(), second.ID, UpdateEventInput{Date: &date})
	requireDomainErr(t, err, CodeVenueBooked)
}

func TestUpdateEvent_VenueChangeChecksAttachedGuests(t *testing.T) {
	s := newTestService(t)
	big := seedVenue(t, s, nil)
	small, err := s.CreateVenue(context.Background(), CreateVenueInput{
		Name: "Side Room", Capacity: 5,
	})
	require.NoError(t, err)

	event := seedEvent(t, s, big.ID)
	seedGuest(t, s, event.ID, 4)
	seedGuest(t, s, event.ID, 3)

	_, err = s.UpdateEvent(context.Background(), event.ID, UpdateEventInput{VenueID: &small.ID})
	de := requireDomainErr(t, err, CodeCapacityExceeded)
	assert.Equal(t, 7, de.Details["attachedGuests"])

	// The same move into a roomy venue succeeds.
	roomy, err := s.CreateVenue(context.Background(), CreateVenueInput{
		Name: "Annex", Capacity: 50,
	})
	require.NoError(t, err)
	moved, err := s.UpdateEvent(context.Background(), event.ID, UpdateEventInput{VenueID: &roomy.ID})
	require.NoError(t, err)
	assert.Equal(t, roomy.ID, moved.VenueID)
}

func TestDeleteEvent_CascadesGuestsAndAssignments(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, testMap(tableFeature("T1", 4)))
	event := seedEvent(t, s, venue.ID)
	guest := seedGuest(t, s, event.ID, 2)

	_, err := s.CreateAssignment(context.Background(), event.ID, "T1", guest.ID, []int{1, 2})
	require.NoError(t, err)

	require.NoError(t, s.DeleteEvent(context.Background(), event.ID))

	_, err = s.GetEvent(context.Background(), event.ID)
	requireDomainErr(t, err, CodeEventNotFound)

	guests, err := s.guests.ListByEvent(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Empty(t, guests)

	assignments, err := s.assignments.ListByEvent(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestDeleteEvent_NotFound(t *testing.T) {
	s := newTestService(t)
	err := s.DeleteEvent(context.Background(), "3b9b2f6e-1d3a-4f4f-8c3a-2f7d9e1b5c44")
	requireDomainErr(t, err, CodeEventNotFound)
}
