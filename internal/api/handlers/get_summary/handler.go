package get_summary

import (
	"errors"
	"net/http"

	"github.com/smiledental/DCS-SchedulingService/internal/api/handlers"
	getSummary "github.com/smiledental/DCS-SchedulingService/internal/usecase/get_summary"
)

const (
	msgInvalidQuery     = "invalid query parameters"
	msgInvalidDateRange = "dateTo must not precede dateFrom"
	msgInvalidGroupBy   = "groupBy must be \"date\" or \"dentist\""
)

type Handler struct {
	useCase GetSummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r)
	if err != nil {
		h.logger.Warn("GET /schedule/summary - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSummary.ErrInvalidDateRange):
			h.logger.Warn("GET /schedule/summary - Invalid date range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, getSummary.ErrInvalidGroupBy):
			h.logger.Warn("GET /schedule/summary - Invalid groupBy: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGroupBy)

		case errors.Is(err, getSummary.ErrInvalidInput):
			h.logger.Warn("GET /schedule/summary - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /schedule/summary - Failed to build summary: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
