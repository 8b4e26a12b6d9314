package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	settingsRepo "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/settings"
	"github.com/smiledental/DCS-SchedulingService/internal/service/settings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

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

func (m *MockSettingsRepository) Update(ctx context.Context, s *domain.BookingSettings) (*domain.BookingSettings, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingSettings), args.Error(1)
}

func TestService_Get_Success(t *testing.T) {
	repo := new(MockSettingsRepository)
	repo.On("Get", mock.Anything).Return(&domain.BookingSettings{
		SlotCapacityPerDentist: 2,
		SlotCapacityUnassigned: 1,
		UpdatedAt:              time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}, nil)

	service := NewService(repo, nopLogger{})

	resp, err := service.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.SlotCapacityPerDentist)
	assert.Equal(t, 1, resp.SlotCapacityUnassigned)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := new(MockSettingsRepository)
	repo.On("Get", mock.Anything).Return(nil, settingsRepo.ErrSettingsNotFound)

	service := NewService(repo, nopLogger{})

	_, err := service.Get(context.Background())
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestService_Update_Success(t *testing.T) {
	repo := new(MockSettingsRepository)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.BookingSettings) bool {
		return s.SlotCapacityPerDentist == 3 && s.SlotCapacityUnassigned == 0
	})).Return(&domain.BookingSettings{
		SlotCapacityPerDentist: 3,
		SlotCapacityUnassigned: 0,
		UpdatedAt:              time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
	}, nil)

	service := NewService(repo, nopLogger{})

	resp, err := service.Update(context.Background(), &models.UpdateSettingsRequest{
		SlotCapacityPerDentist: 3,
		SlotCapacityUnassigned: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.SlotCapacityPerDentist)
	assert.Equal(t, 0, resp.SlotCapacityUnassigned)
	repo.AssertExpectations(t)
}

func TestService_Update_InvalidCapacity(t *testing.T) {
	repo := new(MockSettingsRepository)
	service := NewService(repo, nopLogger{})

	cases := []models.UpdateSettingsRequest{
		{SlotCapacityPerDentist: -1, SlotCapacityUnassigned: 1},
		{SlotCapacityPerDentist: 2, SlotCapacityUnassigned: -1},
		{SlotCapacityPerDentist: domain.MaxSlotCapacity + 1, SlotCapacityUnassigned: 1},
		{SlotCapacityPerDentist: 2, SlotCapacityUnassigned: domain.MaxSlotCapacity + 1},
	}
	for _, req := range cases {
		_, err := service.Update(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidCapacity, "perDentist=%d unassigned=%d",
			req.SlotCapacityPerDentist, req.SlotCapacityUnassigned)
	}
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_ZeroIsValid(t *testing.T) {
	repo := new(MockSettingsRepository)
	repo.On("Update", mock.Anything, mock.Anything).Return(&domain.BookingSettings{}, nil)

	service := NewService(repo, nopLogger{})

	_, err := service.Update(context.Background(), &models.UpdateSettingsRequest{})
	assert.NoError(t, err)
}
