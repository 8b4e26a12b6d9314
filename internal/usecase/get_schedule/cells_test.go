package get_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	"github.com/smiledental/DCS-SchedulingService/pkg/timeslot"
)

func i64Ptr(v int64) *int64 { return &v }

func entryAt(t *testing.T, date, clock string, dentistID *int64, status domain.BookingStatus) *domain.ScheduleEntry {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, date)
	require.NoError(t, err)
	slot, err := timeslot.ParseDisplay(clock)
	require.NoError(t, err)
	return &domain.ScheduleEntry{
		BookingDate: d,
		BookingTime: slot,
		DentistID:   dentistID,
		Status:      status,
	}
}

func TestResolveMode(t *testing.T) {
	assert.Equal(t, modeAggregate, resolveMode(nil, false))
	assert.Equal(t, modeAggregate, resolveMode(nil, true))
	assert.Equal(t, modeDentist, resolveMode(i64Ptr(3), false))
	assert.Equal(t, modeDentistAndUnassigned, resolveMode(i64Ptr(3), true))
}

func TestInPool(t *testing.T) {
	dentist := i64Ptr(3)
	mine := &domain.ScheduleEntry{DentistID: i64Ptr(3)}
	other := &domain.ScheduleEntry{DentistID: i64Ptr(9)}
	unassigned := &domain.ScheduleEntry{}

	// aggregate view counts everything
	assert.True(t, inPool(mine, modeAggregate, nil))
	assert.True(t, inPool(other, modeAggregate, nil))
	assert.True(t, inPool(unassigned, modeAggregate, nil))

	// dentist view counts only that dentist's pool
	assert.True(t, inPool(mine, modeDentist, dentist))
	assert.False(t, inPool(other, modeDentist, dentist))
	assert.False(t, inPool(unassigned, modeDentist, dentist))

	// widened view adds the unassigned pool, still not other dentists
	assert.True(t, inPool(mine, modeDentistAndUnassigned, dentist))
	assert.False(t, inPool(other, modeDentistAndUnassigned, dentist))
	assert.True(t, inPool(unassigned, modeDentistAndUnassigned, dentist))
}

func TestCellCapacity(t *testing.T) {
	snapshot := domain.CapacitySnapshot{
		ActiveDentists: 3,
		Settings: domain.BookingSettings{
			SlotCapacityPerDentist: 2,
			SlotCapacityUnassigned: 1,
		},
	}

	assert.Equal(t, 7, cellCapacity(snapshot, modeAggregate))
	assert.Equal(t, 2, cellCapacity(snapshot, modeDentist))
	// the widened view's primary pair is still the dentist's own
	// ceiling; the unassigned pool is reported as a separate pair
	assert.Equal(t, 2, cellCapacity(snapshot, modeDentistAndUnassigned))
}

func TestSplitPools(t *testing.T) {
	mine := &domain.ScheduleEntry{DentistID: i64Ptr(3)}
	other := &domain.ScheduleEntry{DentistID: i64Ptr(9)}
	walkUp := &domain.ScheduleEntry{}

	dentist, unassigned := splitPools([]*domain.ScheduleEntry{mine, walkUp, other})

	assert.Equal(t, []*domain.ScheduleEntry{mine, other}, dentist)
	assert.Equal(t, []*domain.ScheduleEntry{walkUp}, unassigned)

	dentist, unassigned = splitPools(nil)
	assert.Empty(t, dentist)
	assert.Empty(t, unassigned)
}

func TestBuildCellIndex(t *testing.T) {
	grid := domain.DefaultGrid()

	entries := []*domain.ScheduleEntry{
		entryAt(t, "2026-09-01", "10:00", i64Ptr(1), domain.StatusBooked),
		entryAt(t, "2026-09-01", "10:00", nil, domain.StatusBooked),
		entryAt(t, "2026-09-01", "10:15", i64Ptr(1), domain.StatusBooked),
		entryAt(t, "2026-09-02", "10:00", i64Ptr(1), domain.StatusBooked),
	}

	index := buildCellIndex(entries, grid)

	assert.Len(t, index, 3)
	assert.Len(t, index[cellKey{date: "2026-09-01", time: "10:00"}], 2)
	assert.Len(t, index[cellKey{date: "2026-09-01", time: "10:15"}], 1)
	assert.Len(t, index[cellKey{date: "2026-09-02", time: "10:00"}], 1)
}

func TestBuildCellIndex_DropsOffGridTimes(t *testing.T) {
	grid := domain.DefaultGrid()

	entries := []*domain.ScheduleEntry{
		entryAt(t, "2026-09-01", "09:30", i64Ptr(1), domain.StatusBooked),
		entryAt(t, "2026-09-01", "10:07", i64Ptr(1), domain.StatusBooked),
	}

	assert.Empty(t, buildCellIndex(entries, grid))
}

func TestCountActive(t *testing.T) {
	entries := []*domain.ScheduleEntry{
		{Status: domain.StatusBooked},
		{Status: domain.StatusCancelled},
		{Status: domain.StatusBooked, IsDeleted: true},
		{Status: domain.StatusBooked},
	}

	assert.Equal(t, 2, countActive(entries))
}
