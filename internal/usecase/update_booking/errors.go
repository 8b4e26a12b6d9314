package update_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrOffGridTime is returned when the requested time is not a cell of
	// the clinic's slot grid
	ErrOffGridTime = errors.New("update_booking: time is not on the slot grid")

	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBookingDeleted is returned when the booking is soft-deleted;
	// deleted bookings accept no further changes
	ErrBookingDeleted = errors.New("update_booking: booking is deleted")

	// ErrDentistNotFound is returned when the assigned dentist does not exist
	ErrDentistNotFound = errors.New("update_booking: dentist not found")

	// ErrUnknownService is returned when a service id is not in the catalog
	ErrUnknownService = errors.New("update_booking: unknown service id")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("update_booking: internal error")
)
