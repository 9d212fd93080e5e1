package model

import "time"

// EventType enumerates the supported kinds of events.
type EventType string

const (
	EventWedding   EventType = "wedding"
	EventBirthday  EventType = "birthday"
	EventCorporate EventType = "corporate"
	EventOther     EventType = "other"
)

// ValidEventType reports whether t is one of the enumerated event types.
func ValidEventType(t EventType) bool {
	switch t {
	case EventWedding, EventBirthday, EventCorporate, EventOther:
		return true
	}
	return false
}

// Event is a scheduled gathering at a venue.  A venue hosts at most one
// event per calendar day and the date must lie in the future when the
// event is created or updated.
//
// Fields:
//  ID          – entity identifier (UUID v4).
//  UserID      – identifier of the owning user (from the access token).
//  VenueID     – venue hosting the event.
//  Type        – enumerated event type.
//  Title       – short title of the event.
//  Description – optional free text.
//  Date        – when the event takes place.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Event struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	VenueID     string    `json:"venueId"`
	Type        EventType `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SameCalendarDay reports whether two instants fall on the same date,
// ignoring time of day.  Booking conflicts are decided on calendar-day
// equality only.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
