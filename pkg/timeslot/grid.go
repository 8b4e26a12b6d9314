package timeslot

import "fmt"

// Grid describes the fixed set of bookable time points in a working day:
// every StepMinutes from Open to Close, both bounds inclusive.
type Grid struct {
	Open        TimeOfDay
	Close       TimeOfDay
	StepMinutes int
}

// NewGrid builds a grid and validates its configuration.
func NewGrid(open, close TimeOfDay, stepMinutes int) (Grid, error) {
	if stepMinutes <= 0 {
		return Grid{}, fmt.Errorf("%w: step must be positive, got %d", ErrInvalidFormat, stepMinutes)
	}
	if close.Before(open) {
		return Grid{}, fmt.Errorf("%w: close %s before open %s", ErrInvalidFormat, close.Display(), open.Display())
	}
	if (close.minutes-open.minutes)%stepMinutes != 0 {
		return Grid{}, fmt.Errorf("%w: close %s is not a whole number of steps after open %s",
			ErrInvalidFormat, close.Display(), open.Display())
	}
	return Grid{Open: open, Close: close, StepMinutes: stepMinutes}, nil
}

// MustGrid builds a grid from display-format bounds and panics on
// malformed input. Intended for package-level defaults only.
func MustGrid(open, close string, stepMinutes int) Grid {
	openT, err := ParseDisplay(open)
	if err != nil {
		panic(err)
	}
	closeT, err := ParseDisplay(close)
	if err != nil {
		panic(err)
	}
	g, err := NewGrid(openT, closeT, stepMinutes)
	if err != nil {
		panic(err)
	}
	return g
}

// Slots enumerates every slot on the grid in ascending order.
// The result is a pure function of the grid configuration.
func (g Grid) Slots() []TimeOfDay {
	slots := make([]TimeOfDay, 0, (g.Close.minutes-g.Open.minutes)/g.StepMinutes+1)
	for m := g.Open.minutes; m <= g.Close.minutes; m += g.StepMinutes {
		slots = append(slots, TimeOfDay{minutes: m})
	}
	return slots
}

// Contains reports whether t lies exactly on a grid point.
func (g Grid) Contains(t TimeOfDay) bool {
	if t.Before(g.Open) || t.After(g.Close) {
		return false
	}
	return (t.minutes-g.Open.minutes)%g.StepMinutes == 0
}

// Check returns ErrOffGrid when t is not a bookable grid point.
func (g Grid) Check(t TimeOfDay) error {
	if !g.Contains(t) {
		return fmt.Errorf("%w: %s (grid %s-%s step %dm)",
			ErrOffGrid, t.Display(), g.Open.Display(), g.Close.Display(), g.StepMinutes)
	}
	return nil
}
