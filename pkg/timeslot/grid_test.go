package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clinicGrid(t *testing.T) Grid {
	t.Helper()
	open, err := ParseDisplay("10:00")
	require.NoError(t, err)
	close, err := ParseDisplay("18:45")
	require.NoError(t, err)
	grid, err := NewGrid(open, close, 15)
	require.NoError(t, err)
	return grid
}

func TestNewGrid_Invalid(t *testing.T) {
	open, _ := ParseDisplay("10:00")
	close, _ := ParseDisplay("18:45")

	_, err := NewGrid(open, close, 0)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewGrid(close, open, 15)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	// 18:50 is not a whole number of 15-minute steps after 10:00
	badClose, _ := ParseDisplay("18:50")
	_, err = NewGrid(open, badClose, 15)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestGrid_Slots(t *testing.T) {
	slots := clinicGrid(t).Slots()

	// 10:00 through 18:45 inclusive in 15-minute steps
	require.Len(t, slots, 36)
	assert.Equal(t, "10:00", slots[0].Display())
	assert.Equal(t, "10:15", slots[1].Display())
	assert.Equal(t, "18:45", slots[35].Display())

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Before(slots[i]), "slots must be ascending at index %d", i)
		assert.Equal(t, 15, slots[i].MinutesSinceMidnight()-slots[i-1].MinutesSinceMidnight())
	}
}

func TestGrid_Contains(t *testing.T) {
	grid := clinicGrid(t)

	cases := []struct {
		time string
		want bool
	}{
		{"10:00", true},  // opening bound
		{"18:45", true},  // closing bound
		{"14:30", true},  // interior grid point
		{"09:45", false}, // before opening
		{"19:00", false}, // after last slot
		{"10:07", false}, // off-step
		{"18:50", false},
	}
	for _, tc := range cases {
		tod, err := ParseDisplay(tc.time)
		require.NoError(t, err, tc.time)
		assert.Equal(t, tc.want, grid.Contains(tod), "time %s", tc.time)
	}
}

func TestGrid_Check(t *testing.T) {
	grid := clinicGrid(t)

	onGrid, _ := ParseDisplay("12:15")
	assert.NoError(t, grid.Check(onGrid))

	offGrid, _ := ParseDisplay("12:10")
	assert.ErrorIs(t, grid.Check(offGrid), ErrOffGrid)
}

func TestMustGrid_PanicsOnMalformedBounds(t *testing.T) {
	assert.Panics(t, func() { MustGrid("bad", "18:45", 15) })
	assert.Panics(t, func() { MustGrid("10:00", "bad", 15) })
	assert.Panics(t, func() { MustGrid("10:00", "18:45", 0) })
	assert.NotPanics(t, func() { MustGrid("10:00", "18:45", 15) })
}
