package get_summary

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_summary: invalid input data")

	// ErrInvalidDateRange is returned when dateTo precedes dateFrom
	ErrInvalidDateRange = errors.New("get_summary: invalid date range")

	// ErrInvalidGroupBy is returned for an unknown grouping key
	ErrInvalidGroupBy = errors.New("get_summary: invalid groupBy")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("get_summary: internal error")
)
