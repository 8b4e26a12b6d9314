package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smiledental/DCS-SchedulingService/internal/api/handlers"
	updateBooking "github.com/smiledental/DCS-SchedulingService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid bookingDate or bookingTime, expected YYYY-MM-DD and HH:mm"
	msgOffGridTime        = "bookingTime is not on the slot grid"
	msgInvalidInput       = "invalid booking data"
	msgNotFound           = "booking not found"
	msgDeleted            = "booking is deleted"
	msgDentistNotFound    = "dentist not found"
	msgUnknownService     = "unknown service id"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrBookingDeleted):
			h.logger.Warn("PUT /bookings/{id} - Booking deleted: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgDeleted)

		case errors.Is(err, updateBooking.ErrOffGridTime):
			h.logger.Warn("PUT /bookings/{id} - Off-grid time: %s", req.BookingTime)
			handlers.RespondBadRequest(w, msgOffGridTime)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateBooking.ErrDentistNotFound):
			h.logger.Warn("PUT /bookings/{id} - Dentist not found: dentist_id=%v", req.DentistID)
			handlers.RespondNotFound(w, msgDentistNotFound)

		case errors.Is(err, updateBooking.ErrUnknownService):
			h.logger.Warn("PUT /bookings/{id} - Unknown service id: %v", req.ServiceIDs)
			handlers.RespondBadRequest(w, msgUnknownService)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
