// Package queue defines message payloads exchanged over the message
// broker and the publisher/consumer pair moving them.
package queue

// Queue names used on the default exchange.
const (
	AssignedQueue = "seating.assigned"
	ReleasedQueue = "seating.released"
)

// SeatAssignmentEvent is published when a table assignment is created
// or deleted.  It carries enough context for downstream consumers to
// log or notify without querying the service.
type SeatAssignmentEvent struct {
	AssignmentID string `json:"assignment_id"`
	EventID      string `json:"event_id"`
	TableNumber  string `json:"table_id"`
	GuestID      string `json:"guest_id"`
	SeatNumbers  []int  `json:"seat_numbers"`
	OccurredAt   string `json:"occurred_at"`
}
