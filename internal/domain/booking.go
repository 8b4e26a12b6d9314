package domain

import (
	"time"

	"github.com/smiledental/DCS-SchedulingService/pkg/timeslot"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusBooked    BookingStatus = "booked"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is the write-side appointment entity. Display-only fields
// (dentist name, patient names, service names) live on ScheduleEntry,
// the read projection produced by query-time joins.
type Booking struct {
	ID          int64
	BookingDate time.Time
	BookingTime timeslot.TimeOfDay

	// DentistID nil means the booking occupies the unassigned pool.
	DentistID *int64

	Patient PatientRef

	ServiceIDs    []int64
	OtherServices []string

	Note *string

	Status    BookingStatus
	IsDeleted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the booking counts toward slot capacity:
// status booked and not soft-deleted.
func (b *Booking) IsActive() bool {
	return b.Status == StatusBooked && !b.IsDeleted
}

// IsCancelled reports whether the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeUpdated reports whether field mutation is still allowed.
// Soft-deleted bookings are terminal.
func (b *Booking) CanBeUpdated() bool {
	return !b.IsDeleted
}

// CanBeCancelled reports whether a cancel transition is legal.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusBooked && !b.IsDeleted
}

// CanBeDeleted reports whether a soft-delete transition is legal.
// Deletion is allowed from any status but only once.
func (b *Booking) CanBeDeleted() bool {
	return !b.IsDeleted
}

// HasServices reports whether the booking references at least one
// catalog service or one free-text service entry.
func (b *Booking) HasServices() bool {
	return len(b.ServiceIDs) > 0 || len(b.OtherServices) > 0
}

// BookingsFilter narrows the management listing of bookings.
type BookingsFilter struct {
	DateFrom time.Time
	DateTo   time.Time

	DentistID *int64         // nil - all dentists
	Status    *BookingStatus // nil - any status

	// SearchTerm matches HN, walk-in names and the patient search text
	// case-insensitively. The minimum query length is the caller's
	// contract; the filter applies whatever it receives.
	SearchTerm string

	IncludeDeleted bool
}

// SummaryFilter narrows the printable summary listing.
type SummaryFilter struct {
	DateFrom time.Time
	DateTo   time.Time

	DentistID *int64

	IncludeCancelled bool

	// IncludeUnassigned semantics depend on DentistID:
	// with a dentist filter, true widens the result to "dentist OR
	// unassigned"; without one, false drops unassigned rows entirely.
	IncludeUnassigned bool
}
