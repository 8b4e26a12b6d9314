package create_booking

import (
	"errors"
	"net/http"

	"github.com/smiledental/DCS-SchedulingService/internal/api/handlers"
	createBooking "github.com/smiledental/DCS-SchedulingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid bookingDate or bookingTime, expected YYYY-MM-DD and HH:mm"
	msgOffGridTime        = "bookingTime is not on the slot grid"
	msgInvalidInput       = "invalid booking data"
	msgDentistNotFound    = "dentist not found"
	msgPatientNotFound    = "patient not found"
	msgUnknownService     = "unknown service id"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrOffGridTime):
			h.logger.Warn("POST /bookings - Off-grid time: %s", req.BookingTime)
			handlers.RespondBadRequest(w, msgOffGridTime)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrDentistNotFound):
			h.logger.Warn("POST /bookings - Dentist not found: dentist_id=%v", req.DentistID)
			handlers.RespondNotFound(w, msgDentistNotFound)

		case errors.Is(err, createBooking.ErrPatientNotFound):
			h.logger.Warn("POST /bookings - Patient not found: patient_id=%v", req.PatientID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, createBooking.ErrUnknownService):
			h.logger.Warn("POST /bookings - Unknown service id: %v", req.ServiceIDs)
			handlers.RespondBadRequest(w, msgUnknownService)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
