package list_bookings

import (
	"time"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// Request narrows and pages the management listing
type Request struct {
	DateFrom time.Time
	DateTo   time.Time

	DentistID *int64
	Status    *string // "booked" or "cancelled"

	// SearchTerm matches HN, walk-in names and the patient search text.
	// Terms below the minimum length are treated as no filter.
	SearchTerm string

	IncludeDeleted bool

	Page     int // zero-based
	PageSize int
}

// Response is one page of the listing. Total counts every row matching
// the filter, independent of paging.
type Response struct {
	Bookings []BookingRow `json:"bookings"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
	Total    int64        `json:"total"`
}

// BookingRow is one management listing row
type BookingRow struct {
	ID          int64  `json:"id"`
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`

	Status    string `json:"status"`
	IsDeleted bool   `json:"isDeleted"`

	DentistID   *int64  `json:"dentistId,omitempty"`
	DentistName *string `json:"dentistName,omitempty"`

	PatientID     *int64  `json:"patientId,omitempty"`
	HN            *string `json:"hn,omitempty"`
	PatientNameTH *string `json:"patientNameTh,omitempty"`
	PatientNameEN *string `json:"patientNameEn,omitempty"`
	WalkinNameTH  *string `json:"walkinNameTh,omitempty"`
	WalkinNameEN  *string `json:"walkinNameEn,omitempty"`
	WalkinPhone   *string `json:"walkinPhone,omitempty"`

	ServiceNames  []string `json:"serviceNames"`
	OtherServices []string `json:"otherServices"`

	Note *string `json:"note,omitempty"`
}

func toRow(e *domain.ScheduleEntry) BookingRow {
	row := BookingRow{
		ID:            e.ID,
		BookingDate:   e.BookingDate.Format(domain.DateFormat),
		BookingTime:   e.BookingTime.Display(),
		Status:        string(e.Status),
		IsDeleted:     e.IsDeleted,
		DentistID:     e.DentistID,
		DentistName:   e.DentistName,
		PatientID:     e.PatientID,
		HN:            e.HN,
		PatientNameTH: e.PatientNameTH,
		PatientNameEN: e.PatientNameEN,
		WalkinNameTH:  e.WalkinNameTH,
		WalkinNameEN:  e.WalkinNameEN,
		WalkinPhone:   e.WalkinPhone,
		ServiceNames:  e.ServiceNames,
		OtherServices: e.OtherServices,
		Note:          e.Note,
	}
	if row.ServiceNames == nil {
		row.ServiceNames = []string{}
	}
	if row.OtherServices == nil {
		row.OtherServices = []string{}
	}
	return row
}
