package timeslot

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is returned when a time string cannot be parsed
	ErrInvalidFormat = errors.New("timeslot: invalid time format")

	// ErrOffGrid is returned when a time does not lie on the booking grid
	ErrOffGrid = errors.New("timeslot: time is not on the slot grid")
)

// TimeOfDay is a time-of-day value with minute precision.
// The zero value is midnight (00:00).
type TimeOfDay struct {
	minutes int
}

// New creates a TimeOfDay from an hour and minute pair.
func New(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidFormat, hour, minute)
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseDisplay parses the human-entered "HH:mm" representation.
func ParseDisplay(s string) (TimeOfDay, error) {
	var hour, minute int
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, fmt.Errorf("%w: %q, want HH:mm", ErrInvalidFormat, s)
	}
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hour, &minute); err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q, want HH:mm", ErrInvalidFormat, s)
	}
	return New(hour, minute)
}

// ParseStorage parses the canonical storage representation "HH:mm:ss".
// Seconds must be zero: booking times only exist on whole minutes.
func ParseStorage(s string) (TimeOfDay, error) {
	var hour, minute, sec int
	if len(s) != 8 || s[2] != ':' || s[5] != ':' {
		return TimeOfDay{}, fmt.Errorf("%w: %q, want HH:mm:ss", ErrInvalidFormat, s)
	}
	if _, err := fmt.Sscanf(s, "%02d:%02d:%02d", &hour, &minute, &sec); err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q, want HH:mm:ss", ErrInvalidFormat, s)
	}
	if sec != 0 {
		return TimeOfDay{}, fmt.Errorf("%w: %q, seconds must be 00", ErrInvalidFormat, s)
	}
	return New(hour, minute)
}

// Display returns the "HH:mm" representation shown to staff.
func (t TimeOfDay) Display() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// Storage returns the "HH:mm:ss" representation persisted in the database.
func (t TimeOfDay) Storage() string {
	return fmt.Sprintf("%02d:%02d:00", t.minutes/60, t.minutes%60)
}

// AddMinutes returns the time shifted forward by the given number of minutes.
func (t TimeOfDay) AddMinutes(m int) (TimeOfDay, error) {
	total := t.minutes + m
	if total < 0 || total >= 24*60 {
		return TimeOfDay{}, fmt.Errorf("%w: %s + %dm is out of day range", ErrInvalidFormat, t.Display(), m)
	}
	return TimeOfDay{minutes: total}, nil
}

// Before reports whether t is strictly before other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// After reports whether t is strictly after other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// Equal reports whether t and other are the same minute of the day.
func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.minutes == other.minutes
}

// MinutesSinceMidnight returns the raw minute offset, used for sorting.
func (t TimeOfDay) MinutesSinceMidnight() int {
	return t.minutes
}

// String implements fmt.Stringer using the display representation.
func (t TimeOfDay) String() string {
	return t.Display()
}
