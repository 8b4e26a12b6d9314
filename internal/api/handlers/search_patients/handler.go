package search_patients

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/smiledental/DCS-SchedulingService/internal/api/handlers"
	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	"github.com/smiledental/DCS-SchedulingService/internal/service/patients"
)

const (
	msgInvalidQuery = "invalid query parameters"
	msgTermTooShort = "search term too short"

	defaultLimit = 20
	maxLimit     = 100
)

type Handler struct {
	service PatientService
	logger  Logger
}

func NewHandler(service PatientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/patients?q=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	term := query.Get("q")

	limit := uint64(defaultLimit)
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 || parsed > maxLimit {
			h.logger.Warn("GET /patients - Invalid limit %q", raw)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		limit = parsed
	}

	var offset uint64
	if raw := query.Get("offset"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /patients - Invalid offset %q", raw)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		offset = parsed
	}

	result, err := h.service.Search(r.Context(), term, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, patients.ErrSearchTermTooShort):
			h.logger.Warn("GET /patients - Term too short (min %d)", domain.MinSearchTermLength)
			handlers.RespondBadRequest(w, msgTermTooShort)

		default:
			h.logger.Error("GET /patients - Failed to search patients: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
