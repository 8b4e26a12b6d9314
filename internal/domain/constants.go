package domain

import "github.com/smiledental/DCS-SchedulingService/pkg/timeslot"

// Clinic time grid: fixed 15-minute slots from opening to last bookable
// slot, both inclusive.
const (
	GridOpenTime    = "10:00"
	GridCloseTime   = "18:45"
	GridStepMinutes = 15
)

// Business validation constants
const (
	MinSlotCapacity = 0
	MaxSlotCapacity = 50

	MaxNoteLength         = 500
	MaxWalkinNameLength   = 200
	MaxOtherServiceLength = 200

	// MinSearchTermLength is the contract enforced at the API boundary:
	// shorter search terms are treated as no filter.
	MinSearchTermLength = 2

	// MaxScheduleRangeDays caps the timetable range; the view renders a
	// cell per slot per day, so unbounded ranges would be quadratic.
	MaxScheduleRangeDays = 31

	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultGrid returns the clinic's bookable slot grid.
func DefaultGrid() timeslot.Grid {
	return timeslot.MustGrid(GridOpenTime, GridCloseTime, GridStepMinutes)
}
