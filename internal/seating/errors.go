// Package seating implements the cross-entity consistency engine:
// venue map validation, event scheduling conflict detection and the
// seat assignment invariants.  Every check fails fast with a tagged
// Error carrying a stable code; HTTP status mapping happens in the
// handler layer only.
package seating

// Kind classifies a domain failure for transport mapping.
type Kind int

const (
	// KindInvalid covers malformed input and violated invariants (400).
	KindInvalid Kind = iota
	// KindNotFound covers references to absent entities (404).
	KindNotFound
	// KindConflict covers well-formed requests colliding with existing
	// state, such as an occupied seat or a double-booked venue (400).
	KindConflict
	// KindInternal covers unexpected repository failures (500).
	KindInternal
)

// Stable error codes exposed in response bodies.
const (
	CodeInvalidIDFormat      = "INVALID_ID_FORMAT"
	CodeEventNotFound        = "EVENT_NOT_FOUND"
	CodeVenueNotFound        = "VENUE_NOT_FOUND"
	CodeTableNotFound        = "TABLE_NOT_FOUND"
	CodeGuestNotFound        = "GUEST_NOT_FOUND"
	CodeAssignmentNotFound   = "ASSIGNMENT_NOT_FOUND"
	CodeInvalidSeatNumbers   = "INVALID_SEAT_NUMBERS"
	CodeInvalidPartySize     = "INVALID_PARTY_SIZE"
	CodeSeatAlreadyAssigned  = "SEAT_ALREADY_ASSIGNED"
	CodeGuestAlreadyAssigned = "GUEST_ALREADY_ASSIGNED"
	CodeInvalidVenueMap      = "INVALID_VENUE_MAP"
	CodeInvalidEventDate     = "INVALID_EVENT_DATE"
	CodeVenueBooked          = "VENUE_BOOKED"
	CodeCapacityExceeded     = "CAPACITY_EXCEEDED"
	CodeVenueInUse           = "VENUE_IN_USE"
	CodeValidation           = "VALIDATION_ERROR"
	CodeInternal             = "INTERNAL_ERROR"
)

// Error is the tagged domain error returned by every validator and
// service method.  Details carries structured context such as the
// offending seat numbers.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// WithDetails attaches structured context and returns the error.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// Invalid constructs a validation failure.
func Invalid(code, message string) *Error {
	return &Error{Kind: KindInvalid, Code: code, Message: message}
}

// NotFound constructs a missing-entity failure.
func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

// Conflict constructs a state-collision failure.
func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// Internal wraps an unexpected failure behind a generic message so
// repository internals never leak to the caller.
func Internal(err error) *Error {
	_ = err // logged at the boundary, never exposed
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: "internal server error"}
}
