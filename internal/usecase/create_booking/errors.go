package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrOffGridTime is returned when the requested time is not a cell of
	// the clinic's slot grid
	ErrOffGridTime = errors.New("create_booking: time is not on the slot grid")

	// ErrDentistNotFound is returned when the assigned dentist does not exist
	ErrDentistNotFound = errors.New("create_booking: dentist not found")

	// ErrPatientNotFound is returned when the referenced patient does not exist
	ErrPatientNotFound = errors.New("create_booking: patient not found")

	// ErrUnknownService is returned when a service id is not in the catalog
	ErrUnknownService = errors.New("create_booking: unknown service id")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("create_booking: internal error")
)
