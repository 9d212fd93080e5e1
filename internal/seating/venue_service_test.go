package seating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-seating/internal/model"
)

func TestCreateVenue_Validation(t *testing.T) {
	s := newTestService(t)

	_, err := s.CreateVenue(context.Background(), CreateVenueInput{Name: "  ", Capacity: 10})
	requireDomainErr(t, err, CodeValidation)

	_, err = s.CreateVenue(context.Background(), CreateVenueInput{Name: "Hall", Capacity: 0})
	requireDomainErr(t, err, CodeValidation)
}

func TestCreateVenue_RejectsInvalidMap(t *testing.T) {
	s := newTestService(t)

	_, err := s.CreateVenue(context.Background(), CreateVenueInput{
		Name:     "Hall",
		Capacity: 10,
		Map:      &model.VenueMap{Features: []model.Feature{}},
	})
	requireDomainErr(t, err, CodeInvalidVenueMap)
}

func TestCreateVenue_MapIsOptional(t *testing.T) {
	s := newTestService(t)

	venue, err := s.CreateVenue(context.Background(), CreateVenueInput{Name: "Hall", Capacity: 10})
	require.NoError(t, err)
	assert.Nil(t, venue.Map)
}

func TestGetVenue_InvalidIDFormat(t *testing.T) {
	s := newTestService(t)

	// Parse-permissive forms of the same value are still rejected.
	for _, id := range []string{
		"123",
		"urn:uuid:3b9b2f6e-1d3a-4f4f-8c3a-2f7d9e1b5c44",
		"{3b9b2f6e-1d3a-4f4f-8c3a-2f7d9e1b5c44}",
	} {
		_, err := s.GetVenue(context.Background(), id)
		requireDomainErr(t, err, CodeInvalidIDFormat)
	}
}

func TestUpdateVenue_MapReplacedWholesale(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, testMap(tableFeature("T1", 4), tableFeature("T2", 6)))

	updated, err := s.UpdateVenue(context.Background(), venue.ID, UpdateVenueInput{
		Map: testMap(tableFeature("T3", 8)),
	})
	require.NoError(t, err)
	require.Len(t, updated.Map.Features, 1)
	assert.Nil(t, updated.Map.Table("T1"))
	assert.NotNil(t, updated.Map.Table("T3"))
}

func TestUpdateVenue_KeepsMapWhenOmitted(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, testMap(tableFeature("T1", 4)))

	name := "Renamed Hall"
	updated, err := s.UpdateVenue(context.Background(), venue.ID, UpdateVenueInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Hall", updated.Name)
	require.NotNil(t, updated.Map)
	assert.NotNil(t, updated.Map.Table("T1"))
}

func TestUpdateVenue_RejectsInvalidMap(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, testMap(tableFeature("T1", 4)))

	_, err := s.UpdateVenue(context.Background(), venue.ID, UpdateVenueInput{
		Map: testMap(tableFeature("", 4)),
	})
	requireDomainErr(t, err, CodeInvalidVenueMap)

	// The stored map is untouched after the rejected update.
	got, err := s.GetVenue(context.Background(), venue.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Map.Table("T1"))
}

func TestDeleteVenue_BlockedWhileInUse(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, nil)
	event := seedEvent(t, s, venue.ID)

	err := s.DeleteVenue(context.Background(), venue.ID)
	requireDomainErr(t, err, CodeVenueInUse)

	require.NoError(t, s.DeleteEvent(context.Background(), event.ID))
	require.NoError(t, s.DeleteVenue(context.Background(), venue.ID))

	_, err = s.GetVenue(context.Background(), venue.ID)
	requireDomainErr(t, err, CodeVenueNotFound)
}
