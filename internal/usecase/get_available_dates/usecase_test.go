package get_available_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AppointmentService/internal/timezone"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeServiceRepo struct {
	service *domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if f.service == nil || f.service.ID != id {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return f.service, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if filter.ServiceID != nil && a.ServiceID != *filter.ServiceID {
			continue
		}
		if filter.DateFrom != nil && a.Date.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && a.Date.After(*filter.DateTo) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testService(t *testing.T, durationMinutes int, blocked ...time.Time) *domain.Service {
	t.Helper()

	days := map[int]domain.DayWindow{}
	for d := domain.DayMonday; d <= domain.DayFriday; d++ {
		days[d] = domain.DayWindow{Available: true, Start: "08:00", End: "17:00"}
	}

	tpl, err := domain.NewScheduleTemplate(days, blocked)
	require.NoError(t, err)

	return &domain.Service{
		ID:              1,
		Name:            "Software Demo",
		DurationMinutes: durationMinutes,
		Timezone:        "UTC",
		Template:        tpl,
	}
}

type testEnv struct {
	uc   *UseCase
	repo *fakeAppointmentRepo
}

func newTestEnv(svc *domain.Service, now time.Time) *testEnv {
	repo := &fakeAppointmentRepo{}
	uc := NewUseCase(
		repo,
		&fakeServiceRepo{service: svc},
		timezone.NewConverter(),
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return &testEnv{uc: uc, repo: repo}
}

func findDate(t *testing.T, dates []DateInfo, day int) DateInfo {
	t.Helper()
	for _, d := range dates {
		if d.Date.Day() == day {
			return d
		}
	}
	t.Fatalf("day %d not found in month view", day)
	return DateInfo{}
}

// fillDay books every grid slot of an 08:00-17:00/30min day.
func fillDay(repo *fakeAppointmentRepo, date time.Time) {
	for minutes := 8 * 60; minutes+30 <= 17*60; minutes += domain.SlotStepMinutes {
		start, _ := types.FromMinutes(minutes)
		repo.appointments = append(repo.appointments, &domain.Appointment{
			ServiceID: 1,
			Date:      date,
			StartTime: start,
			Status:    domain.StatusConfirmed,
		})
	}
}

func TestExecute(t *testing.T) {
	september := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	// Mid-month "today" so the view contains both past and future days.
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	monthRequest := func() *Request {
		return &Request{ServiceID: 1, Month: september, Timezone: "UTC"}
	}

	t.Run("every day of the month is present", func(t *testing.T) {
		env := newTestEnv(testService(t, 30), now)

		resp, err := env.uc.Execute(context.Background(), monthRequest())
		require.NoError(t, err)

		require.Len(t, resp.Dates, 30)
		assert.Equal(t, 1, resp.Dates[0].Date.Day())
		assert.Equal(t, 30, resp.Dates[29].Date.Day())
		assert.Equal(t, "UTC", resp.Timezone)
	})

	t.Run("weekdays available, weekend not", func(t *testing.T) {
		env := newTestEnv(testService(t, 30), now)

		resp, err := env.uc.Execute(context.Background(), monthRequest())
		require.NoError(t, err)

		// 2026-09-16 is a Wednesday, 2026-09-19 a Saturday.
		wednesday := findDate(t, resp.Dates, 16)
		assert.True(t, wednesday.Available)
		assert.Equal(t, domain.DayWednesday, wednesday.DayOfWeek)

		saturday := findDate(t, resp.Dates, 19)
		assert.False(t, saturday.Available)
		assert.Equal(t, domain.DaySaturday, saturday.DayOfWeek)
	})

	t.Run("fully booked day is unavailable", func(t *testing.T) {
		env := newTestEnv(testService(t, 30), now)
		fillDay(env.repo, time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC))

		resp, err := env.uc.Execute(context.Background(), monthRequest())
		require.NoError(t, err)

		booked := findDate(t, resp.Dates, 16)
		assert.False(t, booked.Available)
		assert.False(t, booked.IsPast)

		// The next working day keeps its slots.
		assert.True(t, findDate(t, resp.Dates, 17).Available)
	})

	t.Run("one free slot keeps the day available", func(t *testing.T) {
		env := newTestEnv(testService(t, 30), now)
		fillDay(env.repo, time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC))
		// Release 09:00 by declining it.
		for _, a := range env.repo.appointments {
			if a.StartTime.Equal("09:00") {
				a.Status = domain.StatusDeclined
			}
		}

		resp, err := env.uc.Execute(context.Background(), monthRequest())
		require.NoError(t, err)
		assert.True(t, findDate(t, resp.Dates, 16).Available)
	})

	t.Run("duration longer than the window makes the day unavailable", func(t *testing.T) {
		// A 120-minute session never fits into a one-hour window: the grid
		// is empty even though the template marks the day available.
		days := map[int]domain.DayWindow{
			domain.DayWednesday: {Available: true, Start: "08:00", End: "09:00"},
		}
		tpl, err := domain.NewScheduleTemplate(days, nil)
		require.NoError(t, err)

		env := newTestEnv(&domain.Service{
			ID:              1,
			Name:            "Software Demo",
			DurationMinutes: 120,
			Timezone:        "UTC",
			Template:        tpl,
		}, now)

		resp, err := env.uc.Execute(context.Background(), monthRequest())
		require.NoError(t, err)

		for _, d := range resp.Dates {
			assert.False(t, d.Available, "day %d has no bookable slot and must not be available", d.Date.Day())
		}
	})

	t.Run("past days are flagged and never available", func(t *testing.T) {
		env := newTestEnv(testService(t, 30), now)

		resp, err := env.uc.Execute(context.Background(), monthRequest())
		require.NoError(t, err)

		// 2026-09-14 is a Monday: a working day by template, but in the past.
		past := findDate(t, resp.Dates, 14)
		assert.True(t, past.IsPast)
		assert.False(t, past.Available)

		today := findDate(t, resp.Dates, 15)
		assert.False(t, today.IsPast)
	})

	t.Run("blocked date is unavailable", func(t *testing.T) {
		blocked := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
		env := newTestEnv(testService(t, 30, blocked), now)

		resp, err := env.uc.Execute(context.Background(), monthRequest())
		require.NoError(t, err)

		day := findDate(t, resp.Dates, 16)
		assert.False(t, day.Available)
		assert.False(t, day.IsPast)
	})

	t.Run("fully past month", func(t *testing.T) {
		env := newTestEnv(testService(t, 30), now)

		resp, err := env.uc.Execute(context.Background(), &Request{
			ServiceID: 1,
			Month:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			Timezone:  "UTC",
		})
		require.NoError(t, err)

		require.Len(t, resp.Dates, 31)
		for _, d := range resp.Dates {
			assert.True(t, d.IsPast, "day %d should be past", d.Date.Day())
			assert.False(t, d.Available)
		}
	})

	t.Run("unknown timezone is rejected", func(t *testing.T) {
		env := newTestEnv(testService(t, 30), now)

		req := monthRequest()
		req.Timezone = "CET"
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimezone)
	})

	t.Run("missing service", func(t *testing.T) {
		env := newTestEnv(testService(t, 30), now)

		req := monthRequest()
		req.ServiceID = 42
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		env := newTestEnv(testService(t, 30), now)

		req := monthRequest()
		req.ServiceID = 0
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)

		req = monthRequest()
		req.Month = time.Time{}
		_, err = env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)

		req = monthRequest()
		req.Timezone = ""
		_, err = env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository failure maps to internal error", func(t *testing.T) {
		env := newTestEnv(testService(t, 30), now)
		env.repo.err = assert.AnError

		_, err := env.uc.Execute(context.Background(), monthRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}
