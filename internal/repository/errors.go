// Package repository holds the in-memory collections backing the
// service.  Each repository guards an ordered slice with a RWMutex and
// searches it linearly; state lives only for the process lifetime.
// Sentinel errors defined here let higher layers distinguish failure
// scenarios without inspecting message text.
package repository

import "errors"

// ErrVenueNotFound is returned when a venue lookup fails.
var ErrVenueNotFound = errors.New("venue not found")

// ErrEventNotFound is returned when an event lookup fails.
var ErrEventNotFound = errors.New("event not found")

// ErrGuestNotFound is returned when a guest lookup fails.
var ErrGuestNotFound = errors.New("guest not found")

// ErrAssignmentNotFound is returned when a table assignment lookup fails.
var ErrAssignmentNotFound = errors.New("assignment not found")
