package update_settings

import (
	"errors"
	"net/http"

	"github.com/smiledental/DCS-SchedulingService/internal/api/handlers"
	"github.com/smiledental/DCS-SchedulingService/internal/service/settings"
	"github.com/smiledental/DCS-SchedulingService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCapacity    = "invalid slot capacity value"
	msgNotFound           = "booking settings not found"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidCapacity):
			h.logger.Warn("PUT /settings - Invalid capacity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, settings.ErrSettingsNotFound):
			h.logger.Warn("PUT /settings - Settings not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /settings - Failed to update settings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings updated: perDentist=%d unassigned=%d",
		result.SlotCapacityPerDentist, result.SlotCapacityUnassigned)
	handlers.RespondJSON(w, http.StatusOK, result)
}
