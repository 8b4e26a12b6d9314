package domain

// CapacitySnapshot is everything a capacity computation needs: the
// current settings and the number of active dentists. Capacity is
// advisory; the write path never rejects a booking for exceeding it.
type CapacitySnapshot struct {
	ActiveDentists int
	Settings       BookingSettings
}

// AggregateCapacity is the clinic-wide ceiling of one slot: every
// active dentist's pool plus the unassigned pool.
func (c CapacitySnapshot) AggregateCapacity() int {
	return c.ActiveDentists*c.Settings.SlotCapacityPerDentist + c.Settings.SlotCapacityUnassigned
}

// DentistCapacity is the per-slot ceiling of a single dentist's pool.
func (c CapacitySnapshot) DentistCapacity() int {
	return c.Settings.SlotCapacityPerDentist
}

// UnassignedCapacity is the per-slot ceiling of the unassigned pool.
// The pool is independent: it is never borrowed by dentists and never
// lends to them.
func (c CapacitySnapshot) UnassignedCapacity() int {
	return c.Settings.SlotCapacityUnassigned
}
