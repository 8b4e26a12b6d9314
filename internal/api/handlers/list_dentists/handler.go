package list_dentists

import (
	"net/http"
	"strconv"

	"github.com/smiledental/DCS-SchedulingService/internal/api/handlers"
)

const msgInvalidQuery = "invalid query parameters"

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dentists
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if raw := r.URL.Query().Get("activeOnly"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /dentists - Invalid activeOnly %q", raw)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		activeOnly = parsed
	}

	result, err := h.service.ListDentists(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /dentists - Failed to list dentists: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
