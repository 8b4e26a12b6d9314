package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacitySnapshot(t *testing.T) {
	snapshot := CapacitySnapshot{
		ActiveDentists: 3,
		Settings: BookingSettings{
			SlotCapacityPerDentist: 2,
			SlotCapacityUnassigned: 1,
		},
	}

	// 3 dentists x 2 + 1 unassigned
	assert.Equal(t, 7, snapshot.AggregateCapacity())
	assert.Equal(t, 2, snapshot.DentistCapacity())
	assert.Equal(t, 1, snapshot.UnassignedCapacity())
}

func TestCapacitySnapshot_ZeroCapacity(t *testing.T) {
	snapshot := CapacitySnapshot{ActiveDentists: 3}

	assert.Equal(t, 0, snapshot.AggregateCapacity())
	assert.Equal(t, 0, snapshot.DentistCapacity())
	assert.Equal(t, 0, snapshot.UnassignedCapacity())
}

func TestCapacitySnapshot_NoDentists(t *testing.T) {
	snapshot := CapacitySnapshot{
		ActiveDentists: 0,
		Settings: BookingSettings{
			SlotCapacityPerDentist: 2,
			SlotCapacityUnassigned: 1,
		},
	}

	// only the unassigned pool remains
	assert.Equal(t, 1, snapshot.AggregateCapacity())
}
