package seating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/repository"
)

// testNow is the pinned clock for every test; event dates are chosen
// relative to it.
var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	opts = append([]Option{WithNow(func() time.Time { return testNow })}, opts...)
	return NewService(
		repository.NewVenueRepo(),
		repository.NewEventRepo(),
		repository.NewGuestRepo(),
		repository.NewAssignmentRepo(),
		opts...,
	)
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// tableFeature builds a well-formed table with the given label and
// seat count.
func tableFeature(num string, seats int) model.Feature {
	return model.Feature{
		Type:          model.FeatureTable,
		Position:      &model.Position{X: fptr(10), Y: fptr(20)},
		TableNumber:   num,
		Shape:         model.TableShapeRound,
		NumberOfSeats: iptr(seats),
	}
}

func testMap(features ...model.Feature) *model.VenueMap {
	if features == nil {
		features = []model.Feature{}
	}
	return &model.VenueMap{
		Dimensions: &model.Dimensions{Width: fptr(100), Height: fptr(80)},
		Features:   features,
	}
}

// seedVenue creates a venue with the given map and returns it.
func seedVenue(t *testing.T, s *Service, m *model.VenueMap) *model.Venue {
	t.Helper()
	venue, err := s.CreateVenue(context.Background(), CreateVenueInput{
		Name:     "Grand Hall",
		Address:  "1 Main St",
		Capacity: 200,
		Map:      m,
	})
	require.NoError(t, err)
	return venue
}

// seedEvent creates an event at the venue one week after testNow.
func seedEvent(t *testing.T, s *Service, venueID string) *model.Event {
	t.Helper()
	event, err := s.CreateEvent(context.Background(), CreateEventInput{
		UserID:  "8f7ad516-9c4b-4f82-9d61-13f4e03b6a77",
		VenueID: venueID,
		Type:    model.EventWedding,
		Title:   "Spring Wedding",
		Date:    testNow.AddDate(0, 0, 7),
	})
	require.NoError(t, err)
	return event
}

// seedGuest attaches a guest with the given party size to the event.
func seedGuest(t *testing.T, s *Service, eventID string, partySize int) *model.Guest {
	t.Helper()
	guest, err := s.CreateGuest(context.Background(), eventID, GuestInput{
		Name:      "Dana Miles",
		Status:    model.GuestConfirmed,
		PartySize: partySize,
	})
	require.NoError(t, err)
	return guest
}

// requireDomainErr asserts that err is a seating error with the given
// code.
func requireDomainErr(t *testing.T, err error, code string) *Error {
	t.Helper()
	require.Error(t, err)
	de, ok := err.(*Error)
	require.True(t, ok, "expected *seating.Error, got %T: %v", err, err)
	require.Equal(t, code, de.Code)
	return de
}
