package approve_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
)

// UseCase use case для подтверждения записи администратором
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

// Execute выполняет use case подтверждения записи.
// Повторное подтверждение уже подтвержденной записи — no-op: возвращается
// текущее состояние без создания событий и отправки писем.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveAppointment: id=%d", req.AppointmentID)

	// 1. Валидация входных данных
	if req.AppointmentID <= 0 {
		uc.logger.Warn("ApproveAppointment: invalid appointment id=%d", req.AppointmentID)
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	// 2. Получаем запись
	appt, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("ApproveAppointment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("ApproveAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. Уже подтверждена — возвращаем текущее состояние
	if appt.IsConfirmed() {
		uc.logger.Info("ApproveAppointment: appointment id=%d is already confirmed", appt.ID)
		return buildResponse(appt, false, false), nil
	}

	// 4. Отклоненную запись подтвердить нельзя
	if appt.IsDeclined() {
		uc.logger.Warn("ApproveAppointment: appointment id=%d is declined", appt.ID)
		return nil, ErrAlreadyDeclined
	}

	// 5. Получаем услугу для события и письма
	service, err := uc.serviceRepo.GetByID(ctx, appt.ServiceID)
	if err != nil {
		uc.logger.Error("ApproveAppointment: failed to get service id=%d: %v", appt.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 6. Создаем событие в календаре.
	// Неудача не блокирует подтверждение — запись сохраняется без
	// ссылки на конференцию, а в ответе выставляется warning.
	calendarWarning := false
	var eventID, meetingLink *string

	event, err := uc.calendar.CreateEvent(ctx, appt, service)
	if err != nil {
		uc.logger.Error("ApproveAppointment: failed to create calendar event for appointment id=%d: %v",
			appt.ID, err)
		calendarWarning = true
	} else {
		eventID = &event.EventID
		if event.MeetingLink != "" {
			meetingLink = &event.MeetingLink
		}
	}

	// 7. Подтверждаем запись
	if err := uc.appointmentRepo.UpdateStatus(ctx, appt.ID, domain.StatusConfirmed, eventID, meetingLink); err != nil {
		uc.logger.Error("ApproveAppointment: failed to update appointment id=%d: %v", appt.ID, err)
		return nil, fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
	}

	appt.Status = domain.StatusConfirmed
	appt.CalendarEventID = eventID
	appt.MeetingLink = meetingLink

	uc.logger.Info("ApproveAppointment: appointment id=%d confirmed", appt.ID)

	// 8. Отправляем письмо клиенту после фиксации статуса
	notificationWarning := false
	if err := uc.notifier.SendApproval(context.WithoutCancel(ctx), appt, service); err != nil {
		uc.logger.Error("ApproveAppointment: failed to send approval email for appointment id=%d: %v",
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
		CalendarEventID:     appt.CalendarEventID,
		MeetingLink:         appt.MeetingLink,
		CalendarWarning:     calendarWarning,
		NotificationWarning: notificationWarning,
	}
}
