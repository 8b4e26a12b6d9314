package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	dentistRepoErrs "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/dentist"
	patientRepoErrs "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/patient"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
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

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) GetLiteByID(ctx context.Context, id int64) (*domain.PatientLite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PatientLite), args.Error(1)
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

// passthroughTxManager runs the function directly without a database.
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type useCaseMocks struct {
	bookings *MockBookingRepository
	dentists *MockDentistRepository
	services *MockClinicServiceRepository
	patients *MockPatientRepository
	settings *MockSettingsRepository
}

func newTestUseCase(t *testing.T) (*UseCase, *useCaseMocks) {
	t.Helper()
	m := &useCaseMocks{
		bookings: new(MockBookingRepository),
		dentists: new(MockDentistRepository),
		services: new(MockClinicServiceRepository),
		patients: new(MockPatientRepository),
		settings: new(MockSettingsRepository),
	}
	uc := NewUseCase(m.bookings, m.dentists, m.services, m.patients, m.settings,
		passthroughTxManager{}, domain.DefaultGrid(), nopLogger{})
	return uc, m
}

func TestExecute_Success(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.dentists.On("GetByID", mock.Anything, int64(3)).Return(&domain.Dentist{ID: 3, Active: true}, nil)
	m.dentists.On("CountActive", mock.Anything).Return(3, nil)
	m.patients.On("GetLiteByID", mock.Anything, int64(42)).Return(&domain.PatientLite{ID: 42, HN: "HN001"}, nil)
	m.settings.On("Get", mock.Anything).Return(&domain.BookingSettings{
		SlotCapacityPerDentist: 2,
		SlotCapacityUnassigned: 1,
	}, nil)
	m.services.On("CountExisting", mock.Anything, []int64{1, 2}).Return(2, nil)
	m.bookings.On("ListInRange", mock.Anything, mock.Anything).Return([]*domain.ScheduleEntry{}, nil)
	m.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.StatusBooked &&
			b.BookingDate.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) &&
			b.BookingTime.Display() == "10:15" &&
			b.DentistID != nil && *b.DentistID == 3
	})).Return(&domain.Booking{ID: 77, Status: domain.StatusBooked}, nil)

	req := validRequest(t)
	// the date's time-of-day portion must not leak into the stored date
	req.Date = time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(77), resp.ID)
	m.bookings.AssertExpectations(t)
}

func TestExecute_UnassignedPool(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.patients.On("GetLiteByID", mock.Anything, int64(42)).Return(&domain.PatientLite{ID: 42}, nil)
	m.dentists.On("CountActive", mock.Anything).Return(3, nil)
	m.settings.On("Get", mock.Anything).Return(&domain.BookingSettings{SlotCapacityUnassigned: 1}, nil)
	m.services.On("CountExisting", mock.Anything, []int64{1, 2}).Return(2, nil)
	m.bookings.On("ListInRange", mock.Anything, mock.Anything).Return([]*domain.ScheduleEntry{}, nil)
	m.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.DentistID == nil
	})).Return(&domain.Booking{ID: 78, Status: domain.StatusBooked}, nil)

	req := validRequest(t)
	req.DentistID = nil

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	m.dentists.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestExecute_DentistNotFound(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.dentists.On("GetByID", mock.Anything, int64(3)).Return(nil, dentistRepoErrs.ErrDentistNotFound)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrDentistNotFound)
	m.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_PatientNotFound(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.dentists.On("GetByID", mock.Anything, int64(3)).Return(&domain.Dentist{ID: 3, Active: true}, nil)
	m.patients.On("GetLiteByID", mock.Anything, int64(42)).Return(nil, patientRepoErrs.ErrPatientNotFound)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrPatientNotFound)
	m.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_UnknownService(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.dentists.On("GetByID", mock.Anything, int64(3)).Return(&domain.Dentist{ID: 3, Active: true}, nil)
	m.patients.On("GetLiteByID", mock.Anything, int64(42)).Return(&domain.PatientLite{ID: 42}, nil)
	// only one of the two requested service ids exists
	m.services.On("CountExisting", mock.Anything, []int64{1, 2}).Return(1, nil)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrUnknownService)
	m.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_FullCellIsStillBooked(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.dentists.On("GetByID", mock.Anything, int64(3)).Return(&domain.Dentist{ID: 3, Active: true}, nil)
	m.dentists.On("CountActive", mock.Anything).Return(3, nil)
	m.patients.On("GetLiteByID", mock.Anything, int64(42)).Return(&domain.PatientLite{ID: 42}, nil)
	m.settings.On("Get", mock.Anything).Return(&domain.BookingSettings{
		SlotCapacityPerDentist: 1,
		SlotCapacityUnassigned: 1,
	}, nil)
	m.services.On("CountExisting", mock.Anything, []int64{1, 2}).Return(2, nil)

	// the dentist's pool in this cell is already at its ceiling
	m.bookings.On("ListInRange", mock.Anything, mock.Anything).Return([]*domain.ScheduleEntry{
		entryForCell(t, i64Ptr(3)),
	}, nil)
	m.bookings.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Booking{ID: 79, Status: domain.StatusBooked}, nil)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.NoError(t, err)
	m.bookings.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_InactiveDentistIsAllowed(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.dentists.On("GetByID", mock.Anything, int64(3)).Return(&domain.Dentist{ID: 3, Active: false}, nil)
	m.dentists.On("CountActive", mock.Anything).Return(2, nil)
	m.patients.On("GetLiteByID", mock.Anything, int64(42)).Return(&domain.PatientLite{ID: 42}, nil)
	m.settings.On("Get", mock.Anything).Return(&domain.BookingSettings{SlotCapacityPerDentist: 2}, nil)
	m.services.On("CountExisting", mock.Anything, []int64{1, 2}).Return(2, nil)
	m.bookings.On("ListInRange", mock.Anything, mock.Anything).Return([]*domain.ScheduleEntry{}, nil)
	m.bookings.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Booking{ID: 80, Status: domain.StatusBooked}, nil)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.NoError(t, err)
}

func entryForCell(t *testing.T, dentistID *int64) *domain.ScheduleEntry {
	t.Helper()
	req := validRequest(t)
	return &domain.ScheduleEntry{
		BookingDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		BookingTime: req.Time,
		DentistID:   dentistID,
		Status:      domain.StatusBooked,
	}
}
