package models

import (
	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// PatientResponse is the directory search result DTO
type PatientResponse struct {
	ID     int64   `json:"id"`
	HN     string  `json:"hn"`
	NameTH *string `json:"nameTh,omitempty"`
	NameEN *string `json:"nameEn,omitempty"`
	Phone  *string `json:"phone,omitempty"`
}

// PatientListResponse wraps a directory search result page
type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
}

// FromDomainPatient converts a domain directory entry into the DTO
func FromDomainPatient(p *domain.PatientLite) PatientResponse {
	return PatientResponse{
		ID:     p.ID,
		HN:     p.HN,
		NameTH: p.NameTH,
		NameEN: p.NameEN,
		Phone:  p.Phone,
	}
}

// FromDomainPatientList converts a search result page into the DTO
func FromDomainPatientList(patients []*domain.PatientLite) *PatientListResponse {
	resp := &PatientListResponse{Patients: make([]PatientResponse, len(patients))}
	for i, p := range patients {
		resp.Patients[i] = FromDomainPatient(p)
	}
	return resp
}
