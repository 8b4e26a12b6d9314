package models

import (
	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// DentistResponse is the roster entry DTO
type DentistResponse struct {
	ID     int64   `json:"id"`
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Phone  *string `json:"phone,omitempty"`
	Active bool    `json:"active"`
}

// DentistListResponse wraps a roster listing
type DentistListResponse struct {
	Dentists []DentistResponse `json:"dentists"`
}

// ClinicServiceResponse is the catalog entry DTO
type ClinicServiceResponse struct {
	ID     int64  `json:"id"`
	NameTH string `json:"nameTh"`
	Active bool   `json:"active"`
}

// ClinicServiceListResponse wraps a catalog listing
type ClinicServiceListResponse struct {
	Services []ClinicServiceResponse `json:"services"`
}

// FromDomainDentist converts a domain dentist into the DTO
func FromDomainDentist(d *domain.Dentist) DentistResponse {
	return DentistResponse{
		ID:     d.ID,
		Code:   d.Code,
		Name:   d.Name,
		Phone:  d.Phone,
		Active: d.Active,
	}
}

// FromDomainDentistList converts a roster listing into the DTO
func FromDomainDentistList(dentists []*domain.Dentist) *DentistListResponse {
	resp := &DentistListResponse{Dentists: make([]DentistResponse, len(dentists))}
	for i, d := range dentists {
		resp.Dentists[i] = FromDomainDentist(d)
	}
	return resp
}

// FromDomainClinicServiceList converts a catalog listing into the DTO
func FromDomainClinicServiceList(services []*domain.ClinicService) *ClinicServiceListResponse {
	resp := &ClinicServiceListResponse{Services: make([]ClinicServiceResponse, len(services))}
	for i, s := range services {
		resp.Services[i] = ClinicServiceResponse{ID: s.ID, NameTH: s.NameTH, Active: s.Active}
	}
	return resp
}
