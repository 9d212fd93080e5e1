package seating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-seating/internal/model"
)

func TestCreateGuest_DefaultsToInvited(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, nil)
	event := seedEvent(t, s, venue.ID)

	guest, err := s.CreateGuest(context.Background(), event.ID, GuestInput{
		Name:      "Omar Haddad",
		PartySize: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, model.GuestInvited, guest.Status)
	assert.Equal(t, 3, guest.PartySize)
}

func TestCreateGuest_PartySizeBounds(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, nil)
	event := seedEvent(t, s, venue.ID)

	for _, size := range []int{0, -1, 21} {
		_, err := s.CreateGuest(context.Background(), event.ID, GuestInput{
			Name:      "Omar Haddad",
			PartySize: size,
		})
		requireDomainErr(t, err, CodeInvalidPartySize)
	}

	// Both ends of the allowed range are accepted.
	for _, size := range []int{1, 20} {
		_, err := s.CreateGuest(context.Background(), event.ID, GuestInput{
			Name:      "Omar Haddad",
			PartySize: size,
		})
		assert.NoError(t, err)
	}
}

func TestCreateGuest_PartySizeCapOption(t *testing.T) {
	s := newTestService(t, WithMaxPartySize(4))
	venue := seedVenue(t, s, nil)
	event := seedEvent(t, s, venue.ID)

	_, err := s.CreateGuest(context.Background(), event.ID, GuestInput{
		Name:      "Omar Haddad",
		PartySize: 5,
	})
	de := requireDomainErr(t, err, CodeInvalidPartySize)
	assert.Equal(t, "partySize must be between 1 and 4", de.Message)
}

func TestCreateGuest_StatusEnum(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, nil)
	event := seedEvent(t, s, venue.ID)

	_, err := s.CreateGuest(context.Background(), event.ID, GuestInput{
		Name:      "Omar Haddad",
		Status:    "maybe",
		PartySize: 1,
	})
	requireDomainErr(t, err, CodeValidation)

	for _, status := range []model.GuestStatus{
		model.GuestInvited, model.GuestConfirmed, model.GuestDeclined,
		model.GuestPending, model.GuestWaitlisted,
	} {
		_, err := s.CreateGuest(context.Background(), event.ID, GuestInput{
			Name:      "Omar Haddad",
			Status:    status,
			PartySize: 1,
		})
		assert.NoError(t, err, "status %s", status)
	}
}

func TestCreateGuest_EventNotFound(t *testing.T) {
	s := newTestService(t)
	_, err := s.CreateGuest(context.Background(), "3b9b2f6e-1d3a-4f4f-8c3a-2f7d9e1b5c44", GuestInput{
		Name:      "Omar Haddad",
		PartySize: 1,
	})
	requireDomainErr(t, err, CodeEventNotFound)
}

func TestGetGuest_OtherEventIsNotFound(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, nil)
	event := seedEvent(t, s, venue.ID)
	guest := seedGuest(t, s, event.ID, 2)

	otherVenue := seedVenue(t, s, nil)
	other, err := s.CreateEvent(context.Background(), CreateEventInput{
		UserID:  "8f7ad516-9c4b-4f82-9d61-13f4e03b6a77",
		VenueID: otherVenue.ID,
		Type:    model.EventOther,
		Title:   "Other",
		Date:    testNow.AddDate(0, 3, 0),
	})
	require.NoError(t, err)

	got, err := s.GetGuest(context.Background(), event.ID, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, guest.ID, got.ID)

	_, err = s.GetGuest(context.Background(), other.ID, guest.ID)
	requireDomainErr(t, err, CodeGuestNotFound)
}

func TestListGuests_AssignedFilter(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, testMap(tableFeature("T1", 6)))
	event := seedEvent(t, s, venue.ID)
	seated := seedGuest(t, s, event.ID, 2)
	standing := seedGuest(t, s, event.ID, 1)

	_, err := s.CreateAssignment(context.Background(), event.ID, "T1", seated.ID, []int{1, 2})
	require.NoError(t, err)

	all, err := s.ListGuests(context.Background(), event.ID, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.NotNil(t, all[0].TableAssignment)
	assert.Equal(t, "T1", all[0].TableAssignment.TableNumber)
	assert.Equal(t, []int{1, 2}, all[0].TableAssignment.SeatNumbers)
	assert.Nil(t, all[1].TableAssignment)

	yes := true
	withSeats, err := s.ListGuests(context.Background(), event.ID, &yes)
	require.NoError(t, err)
	require.Len(t, withSeats, 1)
	assert.Equal(t, seated.ID, withSeats[0].ID)

	no := false
	withoutSeats, err := s.ListGuests(context.Background(), event.ID, &no)
	require.NoError(t, err)
	require.Len(t, withoutSeats, 1)
	assert.Equal(t, standing.ID, withoutSeats[0].ID)
}

func TestUpdateGuest_Partial(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, nil)
	event := seedEvent(t, s, venue.ID)
	guest := seedGuest(t, s, event.ID, 2)

	status := model.GuestWaitlisted
	updated, err := s.UpdateGuest(context.Background(), event.ID, guest.ID, UpdateGuestInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.GuestWaitlisted, updated.Status)
	assert.Equal(t, guest.Name, updated.Name)
	assert.Equal(t, guest.PartySize, updated.PartySize)
}

func TestUpdateGuest_InvalidPartySize(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, nil)
	event := seedEvent(t, s, venue.ID)
	guest := seedGuest(t, s, event.ID, 2)

	size := 0
	_, err := s.UpdateGuest(context.Background(), event.ID, guest.ID, UpdateGuestInput{PartySize: &size})
	requireDomainErr(t, err, CodeInvalidPartySize)
}

func TestDeleteGuest_NotFound(t *testing.T) {
	s := newTestService(t)
	venue := seedVenue(t, s, nil)
	event := seedEvent(t, s, venue.ID)

	err := s.DeleteGuest(context.Background(), event.ID, "3b9b2f6e-1d3a-4f4f-8c3a-2f7d9e1b5c44")
	requireDomainErr(t, err, CodeGuestNotFound)
}
