package cancel_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/smiledental/DCS-SchedulingService/internal/service/bookings"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Cancel(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func doCancel(service BookingService, bookingID string) *httptest.ResponseRecorder {
	handler := NewHandler(service, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}/cancel", handler.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/cancel", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	service := new(MockBookingService)
	service.On("Cancel", mock.Anything, int64(7)).Return(nil)

	rec := doCancel(service, "7")

	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestHandle_InvalidID(t *testing.T) {
	service := new(MockBookingService)

	rec := doCancel(service, "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}

func TestHandle_NotFound(t *testing.T) {
	service := new(MockBookingService)
	service.On("Cancel", mock.Anything, int64(404)).Return(bookings.ErrBookingNotFound)

	rec := doCancel(service, "404")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_AlreadyCancelled(t *testing.T) {
	service := new(MockBookingService)
	service.On("Cancel", mock.Anything, int64(7)).Return(bookings.ErrAlreadyCancelled)

	rec := doCancel(service, "7")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_Deleted(t *testing.T) {
	service := new(MockBookingService)
	service.On("Cancel", mock.Anything, int64(7)).Return(bookings.ErrBookingDeleted)

	rec := doCancel(service, "7")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	service := new(MockBookingService)
	service.On("Cancel", mock.Anything, int64(7)).Return(errors.New("boom"))

	rec := doCancel(service, "7")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
