package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Lifecycle(t *testing.T) {
	cases := []struct {
		name      string
		status    BookingStatus
		isDeleted bool

		active       bool
		canCancel    bool
		canUpdate    bool
		canBeDeleted bool
	}{
		{
			name:   "booked",
			status: StatusBooked,

			active:       true,
			canCancel:    true,
			canUpdate:    true,
			canBeDeleted: true,
		},
		{
			name:   "cancelled",
			status: StatusCancelled,

			active:       false,
			canCancel:    false,
			canUpdate:    true,
			canBeDeleted: true,
		},
		{
			name:      "booked then deleted",
			status:    StatusBooked,
			isDeleted: true,

			active:       false,
			canCancel:    false,
			canUpdate:    false,
			canBeDeleted: false,
		},
		{
			name:      "cancelled then deleted",
			status:    StatusCancelled,
			isDeleted: true,

			active:       false,
			canCancel:    false,
			canUpdate:    false,
			canBeDeleted: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &Booking{Status: tc.status, IsDeleted: tc.isDeleted}

			assert.Equal(t, tc.active, b.IsActive())
			assert.Equal(t, tc.canCancel, b.CanBeCancelled())
			assert.Equal(t, tc.canUpdate, b.CanBeUpdated())
			assert.Equal(t, tc.canBeDeleted, b.CanBeDeleted())
		})
	}
}

func TestBooking_IsCancelled(t *testing.T) {
	assert.False(t, (&Booking{Status: StatusBooked}).IsCancelled())
	assert.True(t, (&Booking{Status: StatusCancelled}).IsCancelled())
	// deletion does not change the status
	assert.True(t, (&Booking{Status: StatusCancelled, IsDeleted: true}).IsCancelled())
}

func TestBooking_HasServices(t *testing.T) {
	assert.False(t, (&Booking{}).HasServices())
	assert.True(t, (&Booking{ServiceIDs: []int64{1}}).HasServices())
	assert.True(t, (&Booking{OtherServices: []string{"Consultation"}}).HasServices())
}
