package book_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	CreateIfSlotFree(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListByServiceAndDate(ctx context.Context, serviceID int64, date time.Time) ([]*domain.Appointment, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TimezoneConverter интерфейс конвертера часовых поясов
type TimezoneConverter interface {
	Convert(t types.TimeString, from, to string) (types.TimeString, error)
	IsKnown(zone string) bool
}

// Notifier интерфейс почтовых уведомлений
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, appt *domain.Appointment, svc *domain.Service) error
	SendAdminNotification(ctx context.Context, appt *domain.Appointment, svc *domain.Service) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
