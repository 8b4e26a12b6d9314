package models

import (
	"time"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// UpdateSettingsRequest carries the new capacity values
type UpdateSettingsRequest struct {
	SlotCapacityPerDentist int `json:"slotCapacityPerDentist"`
	SlotCapacityUnassigned int `json:"slotCapacityUnassigned"`
}

// SettingsResponse is the settings DTO
type SettingsResponse struct {
	SlotCapacityPerDentist int       `json:"slotCapacityPerDentist"`
	SlotCapacityUnassigned int       `json:"slotCapacityUnassigned"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// FromDomainSettings converts domain settings into the DTO
func FromDomainSettings(s *domain.BookingSettings) *SettingsResponse {
	if s == nil {
		return nil
	}
	return &SettingsResponse{
		SlotCapacityPerDentist: s.SlotCapacityPerDentist,
		SlotCapacityUnassigned: s.SlotCapacityUnassigned,
		UpdatedAt:              s.UpdatedAt,
	}
}
