package models

import (
	"time"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// BookingResponse is the write-side booking DTO
type BookingResponse struct {
	ID          int64  `json:"id"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	BookingTime string `json:"bookingTime"` // "10:00"

	DentistID *int64 `json:"dentistId,omitempty"`

	PatientID    *int64  `json:"patientId,omitempty"`
	WalkinNameTH *string `json:"walkinNameTh,omitempty"`
	WalkinNameEN *string `json:"walkinNameEn,omitempty"`
	WalkinPhone  *string `json:"walkinPhone,omitempty"`

	ServiceIDs    []int64  `json:"serviceIds"`
	OtherServices []string `json:"otherServices"`

	Note *string `json:"note,omitempty"`

	Status    string `json:"status"`
	IsDeleted bool   `json:"isDeleted"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainBooking converts a domain booking into the DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		BookingTime:   b.BookingTime.Display(),
		DentistID:     b.DentistID,
		PatientID:     b.Patient.PatientID,
		WalkinNameTH:  b.Patient.WalkinNameTH,
		WalkinNameEN:  b.Patient.WalkinNameEN,
		WalkinPhone:   b.Patient.WalkinPhone,
		ServiceIDs:    b.ServiceIDs,
		OtherServices: b.OtherServices,
		Note:          b.Note,
		Status:        string(b.Status),
		IsDeleted:     b.IsDeleted,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	if resp.ServiceIDs == nil {
		resp.ServiceIDs = []int64{}
	}
	if resp.OtherServices == nil {
		resp.OtherServices = []string{}
	}

	return resp
}
