package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyCancelled is returned when cancelling a booking that is
	// already cancelled
	ErrAlreadyCancelled = errors.New("booking is already cancelled")

	// ErrBookingDeleted is returned for any transition on a soft-deleted
	// booking; deletion is terminal
	ErrBookingDeleted = errors.New("booking is deleted")

	// ErrInternal is returned for unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
