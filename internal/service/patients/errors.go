package patients

import "errors"

var (
	// ErrPatientNotFound is returned when the patient does not exist
	ErrPatientNotFound = errors.New("patient not found")

	// ErrSearchTermTooShort is returned when the search term is below the
	// minimum length
	ErrSearchTermTooShort = errors.New("search term too short")

	// ErrInternal is returned for unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
