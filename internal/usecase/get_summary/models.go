package get_summary

import (
	"time"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// Grouping keys of the printable summary.
const (
	GroupByDate    = "date"
	GroupByDentist = "dentist"
)

// Request selects the summary window, its filters and its grouping
type Request struct {
	DateFrom time.Time
	DateTo   time.Time

	// DentistID filters to one dentist. With IncludeUnassigned it widens
	// to "this dentist or no dentist".
	DentistID *int64

	IncludeCancelled bool

	// IncludeUnassigned without a dentist filter: false drops unassigned
	// rows entirely.
	IncludeUnassigned bool

	GroupBy string // "date" or "dentist"
}

// Response is the grouped printable summary
type Response struct {
	GroupBy string  `json:"groupBy"`
	Groups  []Group `json:"groups"`
	Total   int     `json:"total"`
}

// Group is one section of the printout. Keys are sorted
// lexicographically; dates in ISO form sort chronologically that way.
type Group struct {
	Key  string `json:"key"` // "2025-10-15" or a dentist label
	Rows []Row  `json:"rows"`
}

// Row is one printed line
type Row struct {
	ID          int64  `json:"id"`
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`

	Status string `json:"status"`

	DentistLabel string `json:"dentistLabel"`

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

func toRow(e *domain.ScheduleEntry) Row {
	row := Row{
		ID:            e.ID,
		BookingDate:   e.BookingDate.Format(domain.DateFormat),
		BookingTime:   e.BookingTime.Display(),
		Status:        string(e.Status),
		DentistLabel:  e.DentistLabel(),
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
