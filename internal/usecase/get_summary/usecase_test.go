package get_summary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	"github.com/smiledental/DCS-SchedulingService/pkg/timeslot"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) ListForSummary(ctx context.Context, filter domain.SummaryFilter) ([]*domain.ScheduleEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ScheduleEntry), args.Error(1)
}

func i64Ptr(v int64) *int64   { return &v }
func strPtr(s string) *string { return &s }
func day(d int) time.Time     { return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC) }

func summaryEntry(t *testing.T, id int64, d int, clock string, dentistName *string) *domain.ScheduleEntry {
	t.Helper()
	slot, err := timeslot.ParseDisplay(clock)
	require.NoError(t, err)
	return &domain.ScheduleEntry{
		ID:          id,
		BookingDate: day(d),
		BookingTime: slot,
		DentistName: dentistName,
		Status:      domain.StatusBooked,
	}
}

func TestExecute_GroupByDateIsDefault(t *testing.T) {
	// rows arrive from storage ordered by (date, time)
	entries := []*domain.ScheduleEntry{
		summaryEntry(t, 1, 1, "10:00", strPtr("Dr. Ananya")),
		summaryEntry(t, 2, 1, "11:30", nil),
		summaryEntry(t, 3, 2, "10:15", strPtr("Dr. Ananya")),
	}

	repo := new(MockBookingRepository)
	repo.On("ListForSummary", mock.Anything, mock.Anything).Return(entries, nil)

	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DateFrom: day(1), DateTo: day(2)})
	require.NoError(t, err)

	assert.Equal(t, GroupByDate, resp.GroupBy)
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Groups, 2)

	assert.Equal(t, "2026-09-01", resp.Groups[0].Key)
	require.Len(t, resp.Groups[0].Rows, 2)
	assert.Equal(t, "10:00", resp.Groups[0].Rows[0].BookingTime)
	assert.Equal(t, "11:30", resp.Groups[0].Rows[1].BookingTime)

	assert.Equal(t, "2026-09-02", resp.Groups[1].Key)
	require.Len(t, resp.Groups[1].Rows, 1)
}

func TestExecute_GroupByDentist(t *testing.T) {
	entries := []*domain.ScheduleEntry{
		summaryEntry(t, 1, 1, "10:00", strPtr("Dr. Chai")),
		summaryEntry(t, 2, 1, "10:15", nil),
		summaryEntry(t, 3, 1, "11:00", strPtr("Dr. Ananya")),
		summaryEntry(t, 4, 2, "09:00", strPtr("Dr. Chai")),
	}

	repo := new(MockBookingRepository)
	repo.On("ListForSummary", mock.Anything, mock.Anything).Return(entries, nil)

	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DateFrom: day(1),
		DateTo:   day(2),
		GroupBy:  GroupByDentist,
	})
	require.NoError(t, err)

	assert.Equal(t, GroupByDentist, resp.GroupBy)
	assert.Equal(t, 4, resp.Total)
	require.Len(t, resp.Groups, 3)

	// lexicographic group keys, unassigned under its fixed label
	assert.Equal(t, "Dr. Ananya", resp.Groups[0].Key)
	assert.Equal(t, "Dr. Chai", resp.Groups[1].Key)
	assert.Equal(t, domain.UnassignedLabel, resp.Groups[2].Key)

	// rows keep their (date, time) arrival order inside the group
	require.Len(t, resp.Groups[1].Rows, 2)
	assert.Equal(t, int64(1), resp.Groups[1].Rows[0].ID)
	assert.Equal(t, int64(4), resp.Groups[1].Rows[1].ID)
}

func TestExecute_PassesFilterThrough(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("ListForSummary", mock.Anything, mock.MatchedBy(func(f domain.SummaryFilter) bool {
		return f.DentistID != nil && *f.DentistID == 3 &&
			f.IncludeCancelled &&
			f.IncludeUnassigned
	})).Return([]*domain.ScheduleEntry{}, nil)

	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DateFrom:          day(1),
		DateTo:            day(7),
		DentistID:         i64Ptr(3),
		IncludeCancelled:  true,
		IncludeUnassigned: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Groups)
	repo.AssertExpectations(t)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(new(MockBookingRepository), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DateFrom: day(7), DateTo: day(1)})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = uc.Execute(context.Background(), &Request{DateFrom: day(1), DateTo: day(7), GroupBy: "patient"})
	assert.ErrorIs(t, err, ErrInvalidGroupBy)

	_, err = uc.Execute(context.Background(), &Request{DateFrom: day(1), DateTo: day(7), DentistID: i64Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
