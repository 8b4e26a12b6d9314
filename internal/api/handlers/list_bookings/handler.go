package list_bookings

import (
	"errors"
	"net/http"

	"github.com/smiledental/DCS-SchedulingService/internal/api/handlers"
	listBookings "github.com/smiledental/DCS-SchedulingService/internal/usecase/list_bookings"
)

const (
	msgInvalidQuery     = "invalid query parameters"
	msgInvalidDateRange = "dateTo must not precede dateFrom"
	msgInvalidStatus    = "invalid status filter"
)

type Handler struct {
	useCase ListBookingsUseCase
	logger  Logger
}

func NewHandler(useCase ListBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, listBookings.ErrInvalidDateRange):
			h.logger.Warn("GET /bookings - Invalid date range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, listBookings.ErrInvalidStatus):
			h.logger.Warn("GET /bookings - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, listBookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
