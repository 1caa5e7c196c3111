package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	converter       TimezoneConverter
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	converter TimezoneConverter,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		converter:       converter,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Слоты генерируются и сверяются с записями в часовом поясе услуги,
// и только потом конвертируются в часовой пояс запроса.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s, tz=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.Timezone)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.converter); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу вместе с шаблоном расписания
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	emptyResponse := &Response{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Timezone:  req.Timezone,
		Slots:     []Slot{},
	}

	// 4. Прошедшие даты не оцениваются — слотов нет
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return emptyResponse, nil
	}

	// 5. Заблокированная дата — слотов нет
	if service.Template.IsBlocked(req.Date) {
		uc.logger.Info("GetAvailableSlots: date %s is blocked for service id=%d",
			req.Date.Format(domain.DateFormat), req.ServiceID)
		return emptyResponse, nil
	}

	// 6. Генерируем слоты в часовом поясе услуги
	serviceSlots, err := generateTimeSlots(service.Template, req.Date, service.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	if len(serviceSlots) == 0 {
		uc.logger.Info("GetAvailableSlots: no working window on %s for service id=%d",
			req.Date.Format(domain.DateFormat), req.ServiceID)
		return emptyResponse, nil
	}

	// 7. Получаем активные записи на эту дату
	appointments, err := uc.appointmentRepo.ListByServiceAndDate(ctx, req.ServiceID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 8. Исключаем занятые слоты
	availableSlots := excludeBookedSlots(serviceSlots, appointments)

	// 9. Конвертируем время начала в часовой пояс запроса
	slots := make([]Slot, 0, len(availableSlots))
	for _, slotStart := range availableSlots {
		displayTime, err := uc.converter.Convert(slotStart, service.Timezone, req.Timezone)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to convert %s from %s to %s: %v",
				slotStart, service.Timezone, req.Timezone, err)
			return nil, fmt.Errorf("%w: failed to convert slot time: %v", ErrInternal, err)
		}

		slots = append(slots, Slot{
			StartTime:       displayTime,
			ServiceTime:     slotStart,
			DurationMinutes: service.DurationMinutes,
		})
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for service=%d, date=%s",
		len(slots), len(serviceSlots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Timezone:  req.Timezone,
		Slots:     slots,
	}, nil
}
