package list_bookings

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("list_bookings: invalid input data")

	// ErrInvalidDateRange is returned when dateTo precedes dateFrom
	ErrInvalidDateRange = errors.New("list_bookings: invalid date range")

	// ErrInvalidStatus is returned for an unknown status filter
	ErrInvalidStatus = errors.New("list_bookings: invalid status")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("list_bookings: internal error")
)
