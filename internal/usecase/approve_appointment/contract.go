package approve_appointment

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/googlecalendar"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus, eventID, meetingLink *string) error
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// CalendarClient интерфейс календарного провайдера
type CalendarClient interface {
	CreateEvent(ctx context.Context, appt *domain.Appointment, svc *domain.Service) (*googlecalendar.CalendarEvent, error)
}

// Notifier интерфейс почтовых уведомлений
type Notifier interface {
	SendApproval(ctx context.Context, appt *domain.Appointment, svc *domain.Service) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
