package domain

import (
	"time"

	"github.com/smiledental/DCS-SchedulingService/pkg/timeslot"
)

// ScheduleEntry is the read projection of a booking used by the
// timetable, management and summary views. The denormalized display
// fields are produced by joins at query time and never stored on the
// write entity.
type ScheduleEntry struct {
	ID          int64
	BookingDate time.Time
	BookingTime timeslot.TimeOfDay

	Status    BookingStatus
	IsDeleted bool

	DentistID   *int64
	DentistName *string
	DentistCode *string

	PatientID     *int64
	HN            *string
	PatientNameTH *string
	PatientNameEN *string

	WalkinNameTH *string
	WalkinNameEN *string
	WalkinPhone  *string

	ServiceIDs    []int64
	ServiceNames  []string
	OtherServices []string

	Note *string
}

// IsActive reports whether the entry counts toward slot capacity.
func (e *ScheduleEntry) IsActive() bool {
	return e.Status == StatusBooked && !e.IsDeleted
}

// DentistLabel returns the display name used for grouping, with a fixed
// label for the unassigned pool.
func (e *ScheduleEntry) DentistLabel() string {
	if e.DentistName != nil && *e.DentistName != "" {
		return *e.DentistName
	}
	return UnassignedLabel
}

// UnassignedLabel is the group heading for bookings without a dentist.
const UnassignedLabel = "Unassigned"
