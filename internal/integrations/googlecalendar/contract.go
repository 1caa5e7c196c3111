package googlecalendar

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// CalendarEvent результат создания события в календаре
type CalendarEvent struct {
	EventID     string
	MeetingLink string
}

// Client интерфейс календарного провайдера. Реализации: GoogleClient
// (реальный Google Calendar API) и StubClient (детерминированная заглушка
// для окружений без учётных данных).
type Client interface {
	CreateEvent(ctx context.Context, appt *domain.Appointment, svc *domain.Service) (*CalendarEvent, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
