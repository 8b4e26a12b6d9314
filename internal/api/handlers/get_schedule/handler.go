package get_schedule

import (
	"errors"
	"net/http"

	"github.com/smiledental/DCS-SchedulingService/internal/api/handlers"
	getSchedule "github.com/smiledental/DCS-SchedulingService/internal/usecase/get_schedule"
)

const (
	msgInvalidQuery     = "invalid query parameters"
	msgInvalidDateRange = "dateTo must not precede dateFrom"
	msgRangeTooLarge    = "date range too large"
)

type Handler struct {
	useCase GetScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r)
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrInvalidDateRange):
			h.logger.Warn("GET /schedule - Invalid date range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, getSchedule.ErrRangeTooLarge):
			h.logger.Warn("GET /schedule - Range too large: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getSchedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /schedule - Failed to build schedule: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
