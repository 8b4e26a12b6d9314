package settings

import "errors"

var (
	// ErrSettingsNotFound is returned when the settings row is missing
	ErrSettingsNotFound = errors.New("booking settings not found")

	// ErrInvalidCapacity is returned when a capacity value is out of range
	ErrInvalidCapacity = errors.New("invalid slot capacity value")

	// ErrInternal is returned for unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
