package get_schedule

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_schedule: invalid input data")

	// ErrInvalidDateRange is returned when dateTo precedes dateFrom
	ErrInvalidDateRange = errors.New("get_schedule: invalid date range")

	// ErrRangeTooLarge is returned when the range exceeds the timetable cap
	ErrRangeTooLarge = errors.New("get_schedule: date range too large")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("get_schedule: internal error")
)
