package update_booking

import (
	"time"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	updateBooking "github.com/smiledental/DCS-SchedulingService/internal/usecase/update_booking"
	"github.com/smiledental/DCS-SchedulingService/pkg/timeslot"
)

// UpdateBookingRequest HTTP request model. The patient binding is
// immutable and not part of the update surface.
type UpdateBookingRequest struct {
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`

	DentistID *int64 `json:"dentistId,omitempty"`

	ServiceIDs    []int64  `json:"serviceIds"`
	OtherServices []string `json:"otherServices"`

	Note *string `json:"note,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`

	DentistID *int64 `json:"dentistId,omitempty"`

	PatientID    *int64  `json:"patientId,omitempty"`
	WalkinNameTH *string `json:"walkinNameTh,omitempty"`
	WalkinNameEN *string `json:"walkinNameEn,omitempty"`
	WalkinPhone  *string `json:"walkinPhone,omitempty"`

	ServiceIDs    []int64  `json:"serviceIds"`
	OtherServices []string `json:"otherServices"`

	Note *string `json:"note,omitempty"`

	Status string `json:"status"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	bookingTime, err := timeslot.ParseDisplay(r.BookingTime)
	if err != nil {
		return nil, err
	}

	return &updateBooking.Request{
		ID:            bookingID,
		Date:          bookingDate,
		Time:          bookingTime,
		DentistID:     r.DentistID,
		ServiceIDs:    r.ServiceIDs,
		OtherServices: r.OtherServices,
		Note:          r.Note,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:            resp.ID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		BookingTime:   resp.BookingTime.Display(),
		DentistID:     resp.DentistID,
		PatientID:     resp.PatientID,
		WalkinNameTH:  resp.WalkinNameTH,
		WalkinNameEN:  resp.WalkinNameEN,
		WalkinPhone:   resp.WalkinPhone,
		ServiceIDs:    resp.ServiceIDs,
		OtherServices: resp.OtherServices,
		Note:          resp.Note,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
	if out.ServiceIDs == nil {
		out.ServiceIDs = []int64{}
	}
	if out.OtherServices == nil {
		out.OtherServices = []string{}
	}
	return out
}
