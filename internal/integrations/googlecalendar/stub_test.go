package googlecalendar

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestStubClientCreateEvent(t *testing.T) {
	client := NewStubClient(nopLogger{})
	appt := &domain.Appointment{
		ID:        42,
		Date:      time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
	}

	event, err := client.CreateEvent(context.Background(), appt, &domain.Service{Name: "Software Demo"})
	require.NoError(t, err)

	assert.Equal(t, "stub-event-42", event.EventID)
	assert.Regexp(t, regexp.MustCompile(`^https://meet\.google\.com/[a-z]{3}-[a-z]{4}-[a-z]{3}$`), event.MeetingLink)

	// Same appointment always yields the same link.
	again, err := client.CreateEvent(context.Background(), appt, &domain.Service{Name: "Software Demo"})
	require.NoError(t, err)
	assert.Equal(t, event.MeetingLink, again.MeetingLink)

	other, err := client.CreateEvent(context.Background(), &domain.Appointment{ID: 43}, &domain.Service{})
	require.NoError(t, err)
	assert.NotEqual(t, event.MeetingLink, other.MeetingLink)
}

func TestStubClientDeleteEvent(t *testing.T) {
	client := NewStubClient(nopLogger{})
	assert.NoError(t, client.DeleteEvent(context.Background(), "stub-event-42"))
}
