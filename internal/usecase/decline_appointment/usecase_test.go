package decline_appointment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
)

type fakeAppointmentRepo struct {
	appointment *domain.Appointment
	updateErr   error

	updatedStatus      *domain.AppointmentStatus
	updatedEventID     *string
	updatedMeetingLink *string
	updateCalled       bool
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
	f.updateCalled = true
	f.updatedStatus = &status
	f.updatedEventID = eventID
	f.updatedMeetingLink = meetingLink
	return nil
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type fakeCalendar struct {
	deleted []string
	fail    bool
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, eventID string) error {
	if f.fail {
		return assert.AnError
	}
	f.deleted = append(f.deleted, eventID)
	return nil
}

type fakeNotifier struct {
	sent int
	fail bool
}

func (f *fakeNotifier) SendDecline(_ context.Context, _ *domain.Appointment, _ *domain.Service) error {
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

func confirmedAppointment() *domain.Appointment {
	eventID := "event-10"
	link := "https://meet.google.com/abc-defg-hij"
	return &domain.Appointment{
		ID:              10,
		ServiceID:       1,
		CustomerName:    "Alice Smith",
		CustomerEmail:   "alice@example.com",
		Date:            time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		DurationMinutes: 30,
		Timezone:        "UTC",
		Status:          domain.StatusConfirmed,
		CalendarEventID: &eventID,
		MeetingLink:     &link,
	}
}

type testEnv struct {
	uc          *UseCase
	repo        *fakeAppointmentRepo
	serviceRepo *fakeServiceRepo
	calendar    *fakeCalendar
	notifier    *fakeNotifier
}

func newTestEnv(appt *domain.Appointment) *testEnv {
	repo := &fakeAppointmentRepo{appointment: appt}
	svcRepo := &fakeServiceRepo{service: &domain.Service{ID: 1, Name: "Software Demo", Timezone: "UTC"}}
	cal := &fakeCalendar{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(repo, svcRepo, cal, notifier, nopLogger{})
	return &testEnv{uc: uc, repo: repo, serviceRepo: svcRepo, calendar: cal, notifier: notifier}
}

func TestExecute(t *testing.T) {
	t.Run("confirmed appointment is declined and slot released", func(t *testing.T) {
		env := newTestEnv(confirmedAppointment())

		resp, err := env.uc.Execute(context.Background(), &Request{AppointmentID: 10})
		require.NoError(t, err)

		assert.Equal(t, "declined", resp.Status)
		assert.False(t, resp.CalendarWarning)
		assert.False(t, resp.NotificationWarning)

		require.NotNil(t, env.repo.updatedStatus)
		assert.Equal(t, domain.StatusDeclined, *env.repo.updatedStatus)
		// Calendar fields are cleared on decline.
		assert.Nil(t, env.repo.updatedEventID)
		assert.Nil(t, env.repo.updatedMeetingLink)

		assert.Equal(t, []string{"event-10"}, env.calendar.deleted)
		assert.Equal(t, 1, env.notifier.sent)
	})

	t.Run("pending appointment has no calendar event to delete", func(t *testing.T) {
		appt := confirmedAppointment()
		appt.Status = domain.StatusPending
		appt.CalendarEventID = nil
		appt.MeetingLink = nil
		env := newTestEnv(appt)

		resp, err := env.uc.Execute(context.Background(), &Request{AppointmentID: 10})
		require.NoError(t, err)

		assert.Equal(t, "declined", resp.Status)
		assert.Empty(t, env.calendar.deleted)
	})

	t.Run("declining a declined appointment is a no-op", func(t *testing.T) {
		appt := confirmedAppointment()
		appt.Status = domain.StatusDeclined
		appt.CalendarEventID = nil
		appt.MeetingLink = nil
		env := newTestEnv(appt)

		resp, err := env.uc.Execute(context.Background(), &Request{AppointmentID: 10})
		require.NoError(t, err)

		assert.Equal(t, "declined", resp.Status)
		assert.False(t, env.repo.updateCalled)
		assert.Empty(t, env.calendar.deleted)
		assert.Zero(t, env.notifier.sent)
	})

	t.Run("calendar deletion failure still declines", func(t *testing.T) {
		env := newTestEnv(confirmedAppointment())
		env.calendar.fail = true

		resp, err := env.uc.Execute(context.Background(), &Request{AppointmentID: 10})
		require.NoError(t, err)

		assert.Equal(t, "declined", resp.Status)
		assert.True(t, resp.CalendarWarning)
		require.NotNil(t, env.repo.updatedStatus)
		assert.Equal(t, domain.StatusDeclined, *env.repo.updatedStatus)
	})

	t.Run("email failure sets warning only", func(t *testing.T) {
		env := newTestEnv(confirmedAppointment())
		env.notifier.fail = true

		resp, err := env.uc.Execute(context.Background(), &Request{AppointmentID: 10})
		require.NoError(t, err)

		assert.Equal(t, "declined", resp.Status)
		assert.True(t, resp.NotificationWarning)
	})

	t.Run("service lookup failure for email sets warning", func(t *testing.T) {
		env := newTestEnv(confirmedAppointment())
		env.serviceRepo.err = fmt.Errorf("connection refused")

		resp, err := env.uc.Execute(context.Background(), &Request{AppointmentID: 10})
		require.NoError(t, err)

		assert.Equal(t, "declined", resp.Status)
		assert.True(t, resp.NotificationWarning)
		assert.Zero(t, env.notifier.sent)
	})

	t.Run("missing appointment", func(t *testing.T) {
		env := newTestEnv(confirmedAppointment())

		_, err := env.uc.Execute(context.Background(), &Request{AppointmentID: 99})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		env := newTestEnv(confirmedAppointment())

		_, err := env.uc.Execute(context.Background(), &Request{AppointmentID: -1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("status update failure is internal", func(t *testing.T) {
		env := newTestEnv(confirmedAppointment())
		env.repo.updateErr = assert.AnError

		_, err := env.uc.Execute(context.Background(), &Request{AppointmentID: 10})
		assert.ErrorIs(t, err, ErrInternal)
		assert.Zero(t, env.notifier.sent)
	})
}
