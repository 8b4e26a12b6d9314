package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	bookingRepoErrs "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/booking"
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

func (m *MockBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) ListInRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.ScheduleEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ScheduleEntry), args.Error(1)
}

type MockDentistRepository struct {
	mock.Mock
}

func (m *MockDentistRepository) GetByID(ctx context.Context, id int64) (*domain.Dentist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dentist), args.Error(1)
}

func (m *MockDentistRepository) CountActive(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockClinicServiceRepository struct {
	mock.Mock
}

func (m *MockClinicServiceRepository) CountExisting(ctx context.Context, ids []int64) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*domain.BookingSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingSettings), args.Error(1)
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func i64Ptr(v int64) *int64 { return &v }

type useCaseMocks struct {
	bookings *MockBookingRepository
	dentists *MockDentistRepository
	services *MockClinicServiceRepository
	settings *MockSettingsRepository
}

func newTestUseCase(t *testing.T) (*UseCase, *useCaseMocks) {
	t.Helper()
	m := &useCaseMocks{
		bookings: new(MockBookingRepository),
		dentists: new(MockDentistRepository),
		services: new(MockClinicServiceRepository),
		settings: new(MockSettingsRepository),
	}
	uc := NewUseCase(m.bookings, m.dentists, m.services, m.settings,
		passthroughTxManager{}, domain.DefaultGrid(), nopLogger{})
	return uc, m
}

func validUpdateRequest(t *testing.T) *Request {
	t.Helper()
	slot, err := timeslot.ParseDisplay("11:30")
	require.NoError(t, err)
	return &Request{
		ID:         7,
		Date:       time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		Time:       slot,
		DentistID:  i64Ptr(3),
		ServiceIDs: []int64{1},
	}
}

func storedBooking(t *testing.T) *domain.Booking {
	t.Helper()
	slot, err := timeslot.ParseDisplay("10:00")
	require.NoError(t, err)
	return &domain.Booking{
		ID:          7,
		BookingDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		BookingTime: slot,
		Patient:     domain.RegisteredPatient(42),
		ServiceIDs:  []int64{9},
		Status:      domain.StatusBooked,
	}
}

func TestExecute_Success(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.dentists.On("GetByID", mock.Anything, int64(3)).Return(&domain.Dentist{ID: 3, Active: true}, nil)
	m.dentists.On("CountActive", mock.Anything).Return(3, nil)
	m.settings.On("Get", mock.Anything).Return(&domain.BookingSettings{SlotCapacityPerDentist: 2}, nil)
	m.services.On("CountExisting", mock.Anything, []int64{1}).Return(1, nil)
	m.bookings.On("ListInRange", mock.Anything, mock.Anything).Return([]*domain.ScheduleEntry{}, nil)

	m.bookings.On("GetByID", mock.Anything, int64(7)).Return(storedBooking(t), nil).Once()
	m.bookings.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.ID == 7 &&
			b.BookingDate.Equal(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)) &&
			b.BookingTime.Display() == "11:30" &&
			b.DentistID != nil && *b.DentistID == 3 &&
			len(b.ServiceIDs) == 1 && b.ServiceIDs[0] == 1 &&
			// the patient binding is never touched by an update
			b.Patient.PatientID != nil && *b.Patient.PatientID == 42
	})).Return(nil)

	reloaded := storedBooking(t)
	reloaded.UpdatedAt = time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	m.bookings.On("GetByID", mock.Anything, int64(7)).Return(reloaded, nil).Once()

	resp, err := uc.Execute(context.Background(), validUpdateRequest(t))
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, reloaded.UpdatedAt, resp.UpdatedAt)
	m.bookings.AssertExpectations(t)
}

func TestExecute_NotFound(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.dentists.On("GetByID", mock.Anything, int64(3)).Return(&domain.Dentist{ID: 3, Active: true}, nil)
	m.bookings.On("GetByID", mock.Anything, int64(7)).Return(nil, bookingRepoErrs.ErrBookingNotFound)

	_, err := uc.Execute(context.Background(), validUpdateRequest(t))
	assert.ErrorIs(t, err, ErrBookingNotFound)
	m.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExecute_DeletedBookingIsImmutable(t *testing.T) {
	uc, m := newTestUseCase(t)

	deleted := storedBooking(t)
	deleted.IsDeleted = true

	m.dentists.On("GetByID", mock.Anything, int64(3)).Return(&domain.Dentist{ID: 3, Active: true}, nil)
	m.bookings.On("GetByID", mock.Anything, int64(7)).Return(deleted, nil)

	_, err := uc.Execute(context.Background(), validUpdateRequest(t))
	assert.ErrorIs(t, err, ErrBookingDeleted)
	m.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExecute_CancelledBookingIsEditable(t *testing.T) {
	uc, m := newTestUseCase(t)

	cancelled := storedBooking(t)
	cancelled.Status = domain.StatusCancelled

	m.dentists.On("GetByID", mock.Anything, int64(3)).Return(&domain.Dentist{ID: 3, Active: true}, nil)
	m.dentists.On("CountActive", mock.Anything).Return(3, nil)
	m.settings.On("Get", mock.Anything).Return(&domain.BookingSettings{SlotCapacityPerDentist: 2}, nil)
	m.services.On("CountExisting", mock.Anything, []int64{1}).Return(1, nil)
	m.bookings.On("ListInRange", mock.Anything, mock.Anything).Return([]*domain.ScheduleEntry{}, nil)
	m.bookings.On("GetByID", mock.Anything, int64(7)).Return(cancelled, nil)
	m.bookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Execute(context.Background(), validUpdateRequest(t))
	assert.NoError(t, err)
}

func TestExecute_UnknownService(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.dentists.On("GetByID", mock.Anything, int64(3)).Return(&domain.Dentist{ID: 3, Active: true}, nil)
	m.bookings.On("GetByID", mock.Anything, int64(7)).Return(storedBooking(t), nil)
	m.services.On("CountExisting", mock.Anything, []int64{1}).Return(0, nil)

	_, err := uc.Execute(context.Background(), validUpdateRequest(t))
	assert.ErrorIs(t, err, ErrUnknownService)
	m.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExecute_OffGridTime(t *testing.T) {
	uc, m := newTestUseCase(t)

	req := validUpdateRequest(t)
	slot, err := timeslot.ParseDisplay("11:37")
	require.NoError(t, err)
	req.Time = slot

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOffGridTime)
	m.bookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
