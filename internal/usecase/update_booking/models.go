package update_booking

import (
	"time"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	"github.com/smiledental/DCS-SchedulingService/pkg/timeslot"
)

// Request carries the reschedulable fields of a booking. The patient
// binding is immutable after creation and deliberately absent here.
type Request struct {
	ID int64

	Date time.Time
	Time timeslot.TimeOfDay

	DentistID *int64 // nil moves the booking into the unassigned pool

	ServiceIDs    []int64
	OtherServices []string

	Note *string
}

// Response is the booking after the update
type Response struct {
	ID          int64
	BookingDate time.Time
	BookingTime timeslot.TimeOfDay

	DentistID *int64

	PatientID    *int64
	WalkinNameTH *string
	WalkinNameEN *string
	WalkinPhone  *string

	ServiceIDs    []int64
	OtherServices []string

	Note *string

	Status string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		BookingDate:   b.BookingDate,
		BookingTime:   b.BookingTime,
		DentistID:     b.DentistID,
		PatientID:     b.Patient.PatientID,
		WalkinNameTH:  b.Patient.WalkinNameTH,
		WalkinNameEN:  b.Patient.WalkinNameEN,
		WalkinPhone:   b.Patient.WalkinPhone,
		ServiceIDs:    b.ServiceIDs,
		OtherServices: b.OtherServices,
		Note:          b.Note,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
