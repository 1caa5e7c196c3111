package approve_appointment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/googlecalendar"
)

type fakeAppointmentRepo struct {
	appointment *domain.Appointment
	updateErr   error

	updatedStatus      *domain.AppointmentStatus
	updatedEventID     *string
	updatedMeetingLink *string
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if f.appointment == nil || f.appointment.ID != id {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return f.appointment, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, _ int64, status domain.AppointmentStatus, eventID, meetingLink *string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedStatus = &status
	f.updatedEventID = eventID
	f.updatedMeetingLink = meetingLink
	return nil
}

type fakeServiceRepo struct {
	service *domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	if f.service == nil {
		return nil, fmt.Errorf("service repo failure")
	}
	return f.service, nil
}

type fakeCalendar struct {
	created int
	fail    bool
}

func (f *fakeCalendar) CreateEvent(_ context.Context, appt *domain.Appointment, _ *domain.Service) (*googlecalendar.CalendarEvent, error) {
	f.created++
	if f.fail {
		return nil, assert.AnError
	}
	return &googlecalendar.CalendarEvent{
		EventID:     fmt.Sprintf("event-%d", appt.ID),
		MeetingLink: "https://meet.google.com/abc-defg-hij",
	}, nil
}

type fakeNotifier struct {
	sent int
	fail bool
}

func (f *fakeNotifier) SendApproval(_ context.Context, _ *domain.Appointment, _ *domain.Service) error {
	f.sent++
	if f.fail {
		return assert.AnError
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              10,
		ServiceID:       1,
		CustomerName:    "Alice Smith",
		CustomerEmail:   "alice@example.com",
		Date:            time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		DurationMinutes: 30,
		Timezone:        "UTC",
		Status:          domain.StatusPending,
	}
}

type testEnv struct {
	uc       *UseCase
	repo     *fakeAppointmentRepo
	calendar *fakeCalendar
	notifier *fakeNotifier
}

func newTestEnv(appt *domain.Appointment) *testEnv {
	repo := &fakeAppointmentRepo{appointment: appt}
	cal := &fakeCalendar{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(
		repo,
		&fakeServiceRepo{service: &domain.Service{ID: 1, Name: "Software Demo", Timezone: "UTC"}},
		cal,
		notifier,
		nopLogger{},
	)
	return &testEnv{uc: uc, repo: repo, calendar: cal, notifier: notifier}
}

func TestExecute(t *testing.T) {
	t.Run("pending appointment is confirmed with calendar event", func(t *testing.T) {
		env := newTestEnv(pendingAppointment())

		resp, err := env.uc.Execute(context.Background(), &Request{AppointmentID: 10})
		require.NoError(t, err)

		assert.Equal(t, "confirmed", resp.Status)
		require.NotNil(t, resp.CalendarEventID)
		assert.Equal(t, "event-10", *resp.CalendarEventID)
		require.NotNil(t, resp.MeetingLink)
		assert.False(t, resp.CalendarWarning)
		assert.False(t, resp.NotificationWarning)

		require.NotNil(t, env.repo.updatedStatus)
		assert.Equal(t, domain.StatusConfirmed, *env.repo.updatedStatus)
		require.NotNil(t, env.repo.updatedEventID)
		assert.Equal(t, "event-10", *env.repo.updatedEventID)
		assert.Equal(t, 1, env.notifier.sent)
	})

	t.Run("approving a confirmed appointment is a no-op", func(t *testing.T) {
		appt := pendingAppointment()
		appt.Status = domain.StatusConfirmed
		eventID := "event-10"
		appt.CalendarEventID = &eventID
		env := newTestEnv(appt)

		resp, err := env.uc.Execute(context.Background(), &Request{AppointmentID: 10})
		require.NoError(t, err)

		assert.Equal(t, "confirmed", resp.Status)
		require.NotNil(t, resp.CalendarEventID)
		assert.Equal(t, "event-10", *resp.CalendarEventID)

		// No second event, no second email, no status write.
		assert.Zero(t, env.calendar.created)
		assert.Zero(t, env.notifier.sent)
		assert.Nil(t, env.repo.updatedStatus)
	})

	t.Run("declined appointment cannot be approved", func(t *testing.T) {
		appt := pendingAppointment()
		appt.Status = domain.StatusDeclined
		env := newTestEnv(appt)

		_, err := env.uc.Execute(context.Background(), &Request{AppointmentID: 10})
		assert.ErrorIs(t, err, ErrAlreadyDeclined)
		assert.Nil(t, env.repo.updatedStatus)
	})

	t.Run("calendar failure still confirms", func(t *testing.T) {
		env := newTestEnv(pendingAppointment())
		env.calendar.fail = true

		resp, err := env.uc.Execute(context.Background(), &Request{AppointmentID: 10})
		require.NoError(t, err)

		assert.Equal(t, "confirmed", resp.Status)
		assert.True(t, resp.CalendarWarning)
		assert.Nil(t, resp.CalendarEventID)
		assert.Nil(t, resp.MeetingLink)

		require.NotNil(t, env.repo.updatedStatus)
		assert.Equal(t, domain.StatusConfirmed, *env.repo.updatedStatus)
		assert.Nil(t, env.repo.updatedEventID)
	})

	t.Run("email failure sets warning only", func(t *testing.T) {
		env := newTestEnv(pendingAppointment())
		env.notifier.fail = true

		resp, err := env.uc.Execute(context.Background(), &Request{AppointmentID: 10})
		require.NoError(t, err)

		assert.Equal(t, "confirmed", resp.Status)
		assert.True(t, resp.NotificationWarning)
		assert.False(t, resp.CalendarWarning)
	})

	t.Run("missing appointment", func(t *testing.T) {
		env := newTestEnv(pendingAppointment())

		_, err := env.uc.Execute(context.Background(), &Request{AppointmentID: 99})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		env := newTestEnv(pendingAppointment())

		_, err := env.uc.Execute(context.Background(), &Request{AppointmentID: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("status update failure is internal", func(t *testing.T) {
		env := newTestEnv(pendingAppointment())
		env.repo.updateErr = assert.AnError

		_, err := env.uc.Execute(context.Background(), &Request{AppointmentID: 10})
		assert.ErrorIs(t, err, ErrInternal)
		assert.Zero(t, env.notifier.sent)
	})
}
