package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
)

// UseCase use case для создания записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	converter       TimezoneConverter
	notifier        Notifier
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	converter TimezoneConverter,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		converter:       converter,
		notifier:        notifier,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Использует сериализуемую транзакцию и условную вставку, чтобы при
// конкурентных запросах на один слот победила ровно одна запись.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: service=%d, date=%s, time=%s, tz=%s, email=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.Timezone, req.CustomerEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.converter); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("BookAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Получаем услугу вместе с шаблоном расписания
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("BookAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("BookAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Конвертируем время начала из часового пояса клиента в часовой пояс услуги.
	// Запись хранится во времени услуги, в нем же идут все проверки доступности.
	serviceTime, err := uc.converter.Convert(req.StartTime, req.Timezone, service.Timezone)
	if err != nil {
		uc.logger.Warn("BookAppointment: failed to convert %s from %s to %s: %v",
			req.StartTime, req.Timezone, service.Timezone, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimezone, err)
	}

	// 6. Проверяем дату по шаблону расписания
	if service.Template.IsBlocked(req.Date) {
		uc.logger.Warn("BookAppointment: date %s is blocked for service id=%d",
			req.Date.Format(domain.DateFormat), req.ServiceID)
		return nil, ErrDateBlocked
	}

	dayOfWeek := domain.ISODayOfWeek(req.Date)
	if !service.Template.IsAvailable(dayOfWeek) {
		uc.logger.Warn("BookAppointment: day %d is not available for service id=%d", dayOfWeek, req.ServiceID)
		return nil, ErrDayUnavailable
	}

	// 7. Проверяем, что время начала попадает в сетку слотов
	slots := generateTimeSlots(service.Template, req.Date, service.DurationMinutes)
	if !containsSlot(slots, serviceTime) {
		uc.logger.Warn("BookAppointment: time %s (service tz) is not a valid slot for service id=%d",
			serviceTime, req.ServiceID)
		return nil, ErrInvalidTimeSlot
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 8. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем активные записи на эту дату с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.ListByServiceAndDate(txCtx, req.ServiceID, req.Date)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 8.2. Проверяем, что слот еще свободен
		if isSlotTaken(appointments, serviceTime) {
			uc.logger.Warn("BookAppointment: slot %s already taken for service=%d, date=%s",
				serviceTime, req.ServiceID, req.Date.Format(domain.DateFormat))
			return ErrSlotUnavailable
		}

		// 8.3. Создаем запись. Частичный уникальный индекс по
		// (service_id, date, start_time) гарантирует одного победителя
		// даже при конкурентных вставках.
		appointment := &domain.Appointment{
			ServiceID:       req.ServiceID,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			CustomerMessage: req.CustomerMessage,
			Date:            req.Date,
			StartTime:       serviceTime,
			DurationMinutes: service.DurationMinutes,
			Timezone:        service.Timezone,
			Status:          domain.StatusPending,
		}

		created, err := uc.appointmentRepo.CreateIfSlotFree(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("BookAppointment: lost the race for slot %s, service=%d", serviceTime, req.ServiceID)
				return ErrSlotUnavailable
			}
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: successfully created appointment id=%d", result.ID)

	// 9. Отправляем уведомления после фиксации транзакции.
	// Ошибки отправки не откатывают запись — только warning в ответе.
	notificationWarning := uc.sendNotifications(ctx, result, service)

	return &Response{
		ID:                  result.ID,
		ServiceID:           result.ServiceID,
		ServiceName:         service.Name,
		CustomerName:        result.CustomerName,
		CustomerEmail:       result.CustomerEmail,
		Date:                result.Date,
		StartTime:           req.StartTime,
		ServiceTime:         result.StartTime,
		DurationMinutes:     result.DurationMinutes,
		Timezone:            req.Timezone,
		Status:              string(result.Status),
		CreatedAt:           result.CreatedAt,
		NotificationWarning: notificationWarning,
	}, nil
}

// sendNotifications отправляет письма клиенту и администратору.
// Возвращает true, если хотя бы одно письмо не удалось отправить.
func (uc *UseCase) sendNotifications(ctx context.Context, appt *domain.Appointment, service *domain.Service) bool {
	// Отправка не должна отменяться вместе с HTTP-запросом: запись уже
	// зафиксирована. Таймауты отправки ограничивает сам notifier.
	sendCtx := context.WithoutCancel(ctx)

	warning := false

	if err := uc.notifier.SendBookingConfirmation(sendCtx, appt, service); err != nil {
		uc.logger.Error("BookAppointment: failed to send confirmation email for appointment id=%d: %v",
			appt.ID, err)
		warning = true
	}

	if err := uc.notifier.SendAdminNotification(sendCtx, appt, service); err != nil {
		uc.logger.Error("BookAppointment: failed to send admin notification for appointment id=%d: %v",
			appt.ID, err)
		warning = true
	}

	return warning
}
