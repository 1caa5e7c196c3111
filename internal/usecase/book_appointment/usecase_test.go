package book_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
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

// fakeAppointmentRepo mimics the partial unique index: the first insert for a
// slot wins, every later one gets ErrSlotTaken.
type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	nextID       int64

	// hideFromList makes the pre-insert list read miss existing rows,
	// simulating a concurrent transaction that wins between the read and
	// the insert.
	hideFromList bool
}

func (f *fakeAppointmentRepo) ListByServiceAndDate(_ context.Context, serviceID int64, date time.Time) ([]*domain.Appointment, error) {
	if f.hideFromList {
		return []*domain.Appointment{}, nil
	}
	out := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if a.ServiceID == serviceID && a.Date.Equal(date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) CreateIfSlotFree(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	for _, existing := range f.appointments {
		if existing.ServiceID == appt.ServiceID &&
			existing.Date.Equal(appt.Date) &&
			existing.StartTime.Equal(appt.StartTime) &&
			existing.CountsAgainstAvailability() {
			return nil, appointmentRepo.ErrSlotTaken
		}
	}

	f.nextID++
	created := *appt
	created.ID = f.nextID
	created.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.appointments = append(f.appointments, &created)
	return &created, nil
}

type fakeNotifier struct {
	confirmations int
	adminNotices  int
	fail          bool
}

func (f *fakeNotifier) SendBookingConfirmation(_ context.Context, _ *domain.Appointment, _ *domain.Service) error {
	f.confirmations++
	if f.fail {
		return assert.AnError
	}
	return nil
}

func (f *fakeNotifier) SendAdminNotification(_ context.Context, _ *domain.Appointment, _ *domain.Service) error {
	f.adminNotices++
	if f.fail {
		return assert.AnError
	}
	return nil
}

// fakeTxManager runs the callback directly: isolation is the database's
// concern and is covered by the repository layer.
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func testService(t *testing.T, tz string, blocked ...time.Time) *domain.Service {
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
		DurationMinutes: 30,
		Timezone:        tz,
		Template:        tpl,
	}
}

type testEnv struct {
	uc       *UseCase
	repo     *fakeAppointmentRepo
	notifier *fakeNotifier
}

func newTestEnv(svc *domain.Service) *testEnv {
	repo := &fakeAppointmentRepo{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(
		repo,
		&fakeServiceRepo{service: svc},
		timezone.NewConverter(),
		notifier,
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}
	return &testEnv{uc: uc, repo: repo, notifier: notifier}
}

// 2026-09-16 is a Wednesday.
var bookingDate = time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		ServiceID:     1,
		CustomerName:  "Alice Smith",
		CustomerEmail: "alice@example.com",
		Date:          bookingDate,
		StartTime:     "09:00",
		Timezone:      "UTC",
	}
}

func TestExecute(t *testing.T) {
	t.Run("successful booking", func(t *testing.T) {
		env := newTestEnv(testService(t, "UTC"))

		resp, err := env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
		assert.Equal(t, types.TimeString("09:00"), resp.ServiceTime)
		assert.False(t, resp.NotificationWarning)
		assert.Equal(t, 1, env.notifier.confirmations)
		assert.Equal(t, 1, env.notifier.adminNotices)
	})

	t.Run("start time is stored in the service timezone", func(t *testing.T) {
		env := newTestEnv(testService(t, "UTC"))

		req := validRequest()
		req.StartTime = "14:30" // 09:00 UTC expressed in IST
		req.Timezone = "IST"

		resp, err := env.uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, types.TimeString("14:30"), resp.StartTime)
		assert.Equal(t, types.TimeString("09:00"), resp.ServiceTime)
		assert.Equal(t, "IST", resp.Timezone)

		require.Len(t, env.repo.appointments, 1)
		stored := env.repo.appointments[0]
		assert.Equal(t, types.TimeString("09:00"), stored.StartTime)
		assert.Equal(t, "UTC", stored.Timezone)
	})

	t.Run("second booking for the same slot loses", func(t *testing.T) {
		env := newTestEnv(testService(t, "UTC"))

		_, err := env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		req := validRequest()
		req.CustomerEmail = "bob@example.com"
		_, err = env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotUnavailable)

		assert.Len(t, env.repo.appointments, 1)
	})

	t.Run("race lost at insert maps to slot unavailable", func(t *testing.T) {
		env := newTestEnv(testService(t, "UTC"))

		// The slot looks free on the list read but the insert hits the
		// unique index: another transaction won in between.
		env.repo.hideFromList = true
		env.repo.appointments = append(env.repo.appointments, &domain.Appointment{
			ServiceID: 1,
			Date:      bookingDate,
			StartTime: "09:00",
			Status:    domain.StatusPending,
		})

		req := validRequest()
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("declined appointment does not occupy the slot", func(t *testing.T) {
		env := newTestEnv(testService(t, "UTC"))
		env.repo.appointments = append(env.repo.appointments, &domain.Appointment{
			ServiceID: 1,
			Date:      bookingDate,
			StartTime: "09:00",
			Status:    domain.StatusDeclined,
		})

		resp, err := env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("past date is rejected", func(t *testing.T) {
		env := newTestEnv(testService(t, "UTC"))

		req := validRequest()
		req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("blocked date is rejected", func(t *testing.T) {
		env := newTestEnv(testService(t, "UTC", bookingDate))

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrDateBlocked)
	})

	t.Run("unavailable weekday is rejected", func(t *testing.T) {
		env := newTestEnv(testService(t, "UTC"))

		req := validRequest()
		req.Date = time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC) // Saturday
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDayUnavailable)
	})

	t.Run("off-grid start time is rejected", func(t *testing.T) {
		env := newTestEnv(testService(t, "UTC"))

		req := validRequest()
		req.StartTime = "09:10"
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)

		req.StartTime = "07:30" // before the window opens
		_, err = env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("template mismatches are slot-unavailable conflicts", func(t *testing.T) {
		// Booking any time absent from the current available-slots result
		// fails as an unavailable slot, whatever the underlying cause.
		env := newTestEnv(testService(t, "UTC", time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC)))

		blocked := validRequest()
		blocked.Date = time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC)
		_, err := env.uc.Execute(context.Background(), blocked)
		assert.ErrorIs(t, err, ErrDateBlocked)
		assert.ErrorIs(t, err, ErrSlotUnavailable)

		weekend := validRequest()
		weekend.Date = time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC)
		_, err = env.uc.Execute(context.Background(), weekend)
		assert.ErrorIs(t, err, ErrDayUnavailable)
		assert.ErrorIs(t, err, ErrSlotUnavailable)

		offGrid := validRequest()
		offGrid.StartTime = "09:10"
		_, err = env.uc.Execute(context.Background(), offGrid)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("unknown timezone is rejected", func(t *testing.T) {
		env := newTestEnv(testService(t, "UTC"))

		req := validRequest()
		req.Timezone = "CET"
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimezone)
	})

	t.Run("missing service", func(t *testing.T) {
		env := newTestEnv(testService(t, "UTC"))

		req := validRequest()
		req.ServiceID = 77
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("notification failure keeps the booking", func(t *testing.T) {
		env := newTestEnv(testService(t, "UTC"))
		env.notifier.fail = true

		resp, err := env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.True(t, resp.NotificationWarning)
		assert.Len(t, env.repo.appointments, 1)
	})
}

func TestValidateRequest(t *testing.T) {
	converter := timezone.NewConverter()

	t.Run("missing name", func(t *testing.T) {
		req := validRequest()
		req.CustomerName = ""
		assert.ErrorIs(t, validateRequest(req, converter), ErrInvalidInput)
	})

	t.Run("malformed email", func(t *testing.T) {
		for _, email := range []string{"", "alice", "alice@", "@example.com", "a b@example.com"} {
			req := validRequest()
			req.CustomerEmail = email
			assert.Error(t, validateRequest(req, converter), "email %q should be rejected", email)
		}
	})

	t.Run("overlong message", func(t *testing.T) {
		msg := make([]byte, domain.MaxCustomerMessageLength+1)
		for i := range msg {
			msg[i] = 'x'
		}
		s := string(msg)

		req := validRequest()
		req.CustomerMessage = &s
		assert.ErrorIs(t, validateRequest(req, converter), ErrInvalidInput)
	})

	t.Run("invalid start time", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "9am"
		assert.ErrorIs(t, validateRequest(req, converter), ErrInvalidInput)
	})

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validateRequest(validRequest(), converter))
	})
}
