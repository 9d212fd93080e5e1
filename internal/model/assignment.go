package model

import "time"

// TableAssignment binds one guest's party to a set of seats at one
// table of the event's venue map.  TableNumber refers to a table label
// inside the map, not to an entity identifier.
//
// Invariants enforced by the seating engine:
//  - len(SeatNumbers) equals the guest's PartySize.
//  - every seat number lies in [1, table.NumberOfSeats], no duplicates.
//  - no seat is shared with another guest's assignment at the table.
//  - a guest holds at most one assignment per event.
type TableAssignment struct {
	ID          string    `json:"id"`
	EventID     string    `json:"eventId"`
	TableNumber string    `json:"tableId"`
	GuestID     string    `json:"guestId"`
	SeatNumbers []int     `json:"seatNumbers"`
	AssignedAt  time.Time `json:"assignedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GuestAssignment is the compact view of an assignment embedded in
// guest listings.
type GuestAssignment struct {
	TableNumber string    `json:"tableId"`
	SeatNumbers []int     `json:"seatNumbers"`
	AssignedAt  time.Time `json:"assignedAt"`
}

// GuestWithAssignment decorates a guest with its current table
// assignment when one exists; the field is omitted otherwise.
type GuestWithAssignment struct {
	Guest
	TableAssignment *GuestAssignment `json:"tableAssignment,omitempty"`
}
