package domain

import "time"

// BookingSettings is the singleton capacity configuration. It is mutated
// administratively and read-only from the scheduling engine's
// perspective: every capacity computation takes it as an explicit
// parameter rather than reading ambient state.
type BookingSettings struct {
	// SlotCapacityPerDentist max concurrent bookings per dentist per slot.
	SlotCapacityPerDentist int

	// SlotCapacityUnassigned max concurrent bookings with no dentist
	// assigned, per slot. Tracked independently of any dentist's pool.
	SlotCapacityUnassigned int

	UpdatedAt time.Time
}
