package models

import "errors"

// Refusal errors returned by the booking core. All of them are recoverable:
// the in-memory state is never changed when one of these comes back.
var (
	ErrNotFound             = errors.New("not found")
	ErrDuplicateReservation = errors.New("already booked on this session")
	ErrCapacityExceeded     = errors.New("session is full")
	ErrWeeklyQuotaExceeded  = errors.New("weekly booking limit reached")
	ErrBookingWindowNotOpen = errors.New("booking opens 48 hours before the session")
	ErrSessionInPast        = errors.New("session has already taken place")
	ErrDuplicateUsername    = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrForbiddenForRole     = errors.New("operation not allowed for this role")
)
