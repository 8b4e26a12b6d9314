package directory

import "errors"

var (
	// ErrDentistNotFound is returned when the dentist does not exist
	ErrDentistNotFound = errors.New("dentist not found")

	// ErrInternal is returned for unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
