package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	bookingRepo "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/booking"
	"github.com/smiledental/DCS-SchedulingService/pkg/timeslot"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Cancel(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testBooking(status domain.BookingStatus, isDeleted bool) *domain.Booking {
	slot, _ := timeslot.New(10, 15)
	return &domain.Booking{
		ID:          7,
		BookingDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		BookingTime: slot,
		Patient:     domain.RegisteredPatient(42),
		ServiceIDs:  []int64{1},
		Status:      status,
		IsDeleted:   isDeleted,
	}
}

func TestService_GetByID_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(testBooking(domain.StatusBooked, false), nil)

	service := NewService(repo, nopLogger{})

	resp, err := service.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-09-01", resp.BookingDate)
	assert.Equal(t, "10:15", resp.BookingTime)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, bookingRepo.ErrBookingNotFound)

	service := NewService(repo, nopLogger{})

	_, err := service.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(testBooking(domain.StatusBooked, false), nil)
	repo.On("Cancel", mock.Anything, int64(7)).Return(nil)

	service := NewService(repo, nopLogger{})

	err := service.Cancel(context.Background(), 7)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(testBooking(domain.StatusCancelled, false), nil)

	service := NewService(repo, nopLogger{})

	err := service.Cancel(context.Background(), 7)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}

func TestService_Cancel_DeletedIsTerminal(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(testBooking(domain.StatusBooked, true), nil)

	service := NewService(repo, nopLogger{})

	err := service.Cancel(context.Background(), 7)
	assert.ErrorIs(t, err, ErrBookingDeleted)
	repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}

func TestService_Cancel_NotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, bookingRepo.ErrBookingNotFound)

	service := NewService(repo, nopLogger{})

	err := service.Cancel(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_SoftDelete_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(testBooking(domain.StatusBooked, false), nil)
	repo.On("SoftDelete", mock.Anything, int64(7)).Return(nil)

	service := NewService(repo, nopLogger{})

	err := service.SoftDelete(context.Background(), 7)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_SoftDelete_CancelledBookingIsDeletable(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(testBooking(domain.StatusCancelled, false), nil)
	repo.On("SoftDelete", mock.Anything, int64(7)).Return(nil)

	service := NewService(repo, nopLogger{})

	err := service.SoftDelete(context.Background(), 7)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_SoftDelete_AlreadyDeleted(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(testBooking(domain.StatusCancelled, true), nil)

	service := NewService(repo, nopLogger{})

	err := service.SoftDelete(context.Background(), 7)
	assert.ErrorIs(t, err, ErrBookingDeleted)
	repo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}
