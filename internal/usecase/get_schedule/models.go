package get_schedule

import (
	"time"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// Request selects the timetable window and the pools to count.
type Request struct {
	DateFrom time.Time
	DateTo   time.Time

	// DentistID nil renders the aggregate view: every pool counted
	// together against the clinic-wide ceiling.
	DentistID *int64

	// IncludeUnassigned widens a dentist view to also count the
	// unassigned pool next to the dentist's own. Ignored without a
	// dentist filter.
	IncludeUnassigned bool
}

// Response is the cell-indexed timetable
type Response struct {
	GridOpen    string `json:"gridOpen"`
	GridClose   string `json:"gridClose"`
	StepMinutes int    `json:"stepMinutes"`

	Capacity CapacityInfo `json:"capacity"`

	Days []Day `json:"days"`
}

// CapacityInfo reports the ceilings the cells were computed against
type CapacityInfo struct {
	ActiveDentists         int `json:"activeDentists"`
	SlotCapacityPerDentist int `json:"slotCapacityPerDentist"`
	SlotCapacityUnassigned int `json:"slotCapacityUnassigned"`
	AggregateCapacity      int `json:"aggregateCapacity"`
}

// Day is one date column of the timetable
type Day struct {
	Date  string `json:"date"` // "2025-10-15"
	Cells []Cell `json:"cells"`
}

// Cell is one (date, time) slot. BookedCount counts only active
// bookings in the cell's primary pool (everything in the aggregate
// view, the filtered dentist's pool otherwise); Entries additionally
// carries cancelled ones so the view can badge them.
type Cell struct {
	Time        string `json:"time"` // "10:15"
	BookedCount int    `json:"bookedCount"`
	Capacity    int    `json:"capacity"`

	// Unassigned is the second, independently tracked pool pair,
	// present only when a dentist view includes the unassigned pool.
	// The two pools keep separate counts and ceilings; neither lends
	// capacity to the other.
	Unassigned *PoolReport `json:"unassigned,omitempty"`

	Entries []Entry `json:"entries"`
}

// PoolReport is one booked/capacity pair.
type PoolReport struct {
	BookedCount int `json:"bookedCount"`
	Capacity    int `json:"capacity"`
}

// Entry is a booking rendered inside a cell
type Entry struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`

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

func toEntry(e *domain.ScheduleEntry) Entry {
	entry := Entry{
		ID:            e.ID,
		Status:        string(e.Status),
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
	if entry.ServiceNames == nil {
		entry.ServiceNames = []string{}
	}
	if entry.OtherServices == nil {
		entry.OtherServices = []string{}
	}
	return entry
}
