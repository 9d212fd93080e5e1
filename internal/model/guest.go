package model

import "time"

// GuestStatus enumerates the invitation states a guest can be in.
type GuestStatus string

const (
	GuestInvited    GuestStatus = "invited"
	GuestConfirmed  GuestStatus = "confirmed"
	GuestDeclined   GuestStatus = "declined"
	GuestPending    GuestStatus = "pending"
	GuestWaitlisted GuestStatus = "waitlisted"
)

// ValidGuestStatus reports whether s is one of the enumerated statuses.
func ValidGuestStatus(s GuestStatus) bool {
	switch s {
	case GuestInvited, GuestConfirmed, GuestDeclined, GuestPending, GuestWaitlisted:
		return true
	}
	return false
}

// Guest is an invitee of a single event.  PartySize counts the guest
// plus companions and determines how many seats an assignment for this
// guest must cover.
//
// Fields:
//  ID        – entity identifier (UUID v4).
//  EventID   – owning event.
//  Name      – guest name.
//  Email     – optional contact email.
//  Phone     – optional contact phone.
//  Status    – invitation status.
//  PartySize – number of people in the party, >= 1.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Guest struct {
	ID        string      `json:"id"`
	EventID   string      `json:"eventId"`
	Name      string      `json:"name"`
	Email     string      `json:"email,omitempty"`
	Phone     string      `json:"phone,omitempty"`
	Status    GuestStatus `json:"status"`
	PartySize int         `json:"partySize"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
