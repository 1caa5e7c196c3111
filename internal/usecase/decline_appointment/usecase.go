package decline_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
)

// UseCase use case для отклонения записи администратором
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	calendar        CalendarClient
	notifier        Notifier
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	calendar CalendarClient,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		calendar:        calendar,
		notifier:        notifier,
		logger:          logger,
	}
}

// Execute выполняет use case отклонения записи.
// Отклоненный слот сразу освобождается для новых записей.
// Повторное отклонение — no-op.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeclineAppointment: id=%d", req.AppointmentID)

	// 1. Валидация входных данных
	if req.AppointmentID <= 0 {
		uc.logger.Warn("DeclineAppointment: invalid appointment id=%d", req.AppointmentID)
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	// 2. Получаем запись
	appt, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("DeclineAppointment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("DeclineAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. Уже отклонена — возвращаем текущее состояние
	if appt.IsDeclined() {
		uc.logger.Info("DeclineAppointment: appointment id=%d is already declined", appt.ID)
		return buildResponse(appt, false, false), nil
	}

	// 4. Удаляем событие календаря, если оно было создано при подтверждении
	calendarWarning := false
	if appt.CalendarEventID != nil && *appt.CalendarEventID != "" {
		if err := uc.calendar.DeleteEvent(ctx, *appt.CalendarEventID); err != nil {
			uc.logger.Error("DeclineAppointment: failed to delete calendar event %s for appointment id=%d: %v",
				*appt.CalendarEventID, appt.ID, err)
			calendarWarning = true
		}
	}

	// 5. Отклоняем запись и очищаем календарные поля
	if err := uc.appointmentRepo.UpdateStatus(ctx, appt.ID, domain.StatusDeclined, nil, nil); err != nil {
		uc.logger.Error("DeclineAppointment: failed to update appointment id=%d: %v", appt.ID, err)
		return nil, fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
	}

	appt.Status = domain.StatusDeclined
	appt.CalendarEventID = nil
	appt.MeetingLink = nil

	uc.logger.Info("DeclineAppointment: appointment id=%d declined, slot %s released",
		appt.ID, appt.StartTime)

	// 6. Уведомляем клиента
	notificationWarning := false
	service, err := uc.serviceRepo.GetByID(ctx, appt.ServiceID)
	if err != nil {
		uc.logger.Error("DeclineAppointment: failed to get service id=%d for email: %v", appt.ServiceID, err)
		notificationWarning = true
	} else if err := uc.notifier.SendDecline(context.WithoutCancel(ctx), appt, service); err != nil {
		uc.logger.Error("DeclineAppointment: failed to send decline email for appointment id=%d: %v",
			appt.ID, err)
		notificationWarning = true
	}

	return buildResponse(appt, calendarWarning, notificationWarning), nil
}

func buildResponse(appt *domain.Appointment, calendarWarning, notificationWarning bool) *Response {
	return &Response{
		ID:                  appt.ID,
		ServiceID:           appt.ServiceID,
		CustomerName:        appt.CustomerName,
		CustomerEmail:       appt.CustomerEmail,
		Date:                appt.Date,
		StartTime:           appt.StartTime,
		DurationMinutes:     appt.DurationMinutes,
		Timezone:            appt.Timezone,
		Status:              string(appt.Status),
		CalendarWarning:     calendarWarning,
		NotificationWarning: notificationWarning,
	}
}
