package get_schedule

import (
	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	"github.com/smiledental/DCS-SchedulingService/pkg/timeslot"
)

// viewMode selects which pools a cell counts.
type viewMode int

const (
	// modeAggregate counts every pool against the clinic-wide ceiling.
	modeAggregate viewMode = iota
	// modeDentist counts one dentist's pool only.
	modeDentist
	// modeDentistAndUnassigned shows one dentist's pool and the
	// unassigned pool side by side, each with its own count and
	// ceiling. The pools are never summed.
	modeDentistAndUnassigned
)

func resolveMode(dentistID *int64, includeUnassigned bool) viewMode {
	if dentistID == nil {
		return modeAggregate
	}
	if includeUnassigned {
		return modeDentistAndUnassigned
	}
	return modeDentist
}

// inPool reports whether the entry belongs to a pool the view shows.
func inPool(e *domain.ScheduleEntry, mode viewMode, dentistID *int64) bool {
	switch mode {
	case modeDentist:
		return e.DentistID != nil && *e.DentistID == *dentistID
	case modeDentistAndUnassigned:
		return e.DentistID == nil || *e.DentistID == *dentistID
	default:
		return true
	}
}

// cellCapacity is the ceiling of a cell's primary pool: the aggregate
// ceiling without a dentist filter, the dentist's own ceiling with one.
// The unassigned pool of the widened view is reported separately and
// never folded in here.
func cellCapacity(snapshot domain.CapacitySnapshot, mode viewMode) int {
	if mode == modeAggregate {
		return snapshot.AggregateCapacity()
	}
	return snapshot.DentistCapacity()
}

// cellKey identifies one timetable cell.
type cellKey struct {
	date string // "2025-10-15"
	time string // "10:15"
}

// buildCellIndex buckets entries by (date, time). Entries on off-grid
// times are dropped; they cannot be rendered in a grid cell.
func buildCellIndex(entries []*domain.ScheduleEntry, grid timeslot.Grid) map[cellKey][]*domain.ScheduleEntry {
	index := make(map[cellKey][]*domain.ScheduleEntry)
	for _, e := range entries {
		if !grid.Contains(e.BookingTime) {
			continue
		}
		key := cellKey{
			date: e.BookingDate.Format(domain.DateFormat),
			time: e.BookingTime.Display(),
		}
		index[key] = append(index[key], e)
	}
	return index
}

// countActive counts entries that occupy capacity: booked, not deleted.
func countActive(entries []*domain.ScheduleEntry) int {
	count := 0
	for _, e := range entries {
		if e.IsActive() {
			count++
		}
	}
	return count
}

// splitPools partitions entries by assignment, so the widened view can
// count each pool against its own ceiling.
func splitPools(entries []*domain.ScheduleEntry) (dentist, unassigned []*domain.ScheduleEntry) {
	for _, e := range entries {
		if e.DentistID == nil {
			unassigned = append(unassigned, e)
		} else {
			dentist = append(dentist, e)
		}
	}
	return dentist, unassigned
}
