package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UseCase use case для получения календаря доступности на месяц
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

// Execute выполняет use case получения календаря на месяц.
// Прошедшие дни помечаются isPast и не оцениваются. Остальные дни доступны,
// только если на них остался хотя бы один свободный слот: день с рабочим
// окном, но полностью занятый записями или слишком коротким окном для
// длительности услуги, недоступен.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: service=%d, month=%s, tz=%s",
		req.ServiceID, req.Month.Format(domain.MonthFormat), req.Timezone)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.converter); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу вместе с шаблоном расписания
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableDates: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	monthStart := time.Date(req.Month.Year(), req.Month.Month(), 1, 0, 0, 0, 0, req.Month.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)
	monthEnd := nextMonth.AddDate(0, 0, -1)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// 4. Одним запросом получаем записи месяца и группируем занятые
	// времена начала по датам. Сравнение идет в часовом поясе услуги —
	// в нем же хранятся записи.
	appointments, err := uc.appointmentRepo.ListWithFilter(ctx, domain.AppointmentsFilter{
		ServiceID: &req.ServiceID,
		DateFrom:  &monthStart,
		DateTo:    &monthEnd,
	})
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	takenByDate := make(map[string]map[types.TimeString]struct{})
	for _, appt := range appointments {
		if !appt.CountsAgainstAvailability() {
			continue
		}
		key := appt.Date.Format(domain.DateFormat)
		if takenByDate[key] == nil {
			takenByDate[key] = make(map[types.TimeString]struct{})
		}
		takenByDate[key][appt.StartTime] = struct{}{}
	}

	// 5. Обходим все дни месяца
	dates := make([]DateInfo, 0, 31)
	for date := monthStart; date.Before(nextMonth); date = date.AddDate(0, 0, 1) {
		dayOfWeek := domain.ISODayOfWeek(date)

		info := DateInfo{
			Date:      date,
			DayOfWeek: dayOfWeek,
		}

		switch {
		case date.Before(today):
			// Прошедший день: available всегда false, слоты не считаются
			info.IsPast = true

		case !service.Template.IsAvailable(dayOfWeek) || service.Template.IsBlocked(date):
			// Нет рабочего окна или дата заблокирована

		default:
			// День доступен, только если осталась хотя бы одна свободная
			// позиция в сетке слотов
			slots := generateTimeSlots(service.Template, date, service.DurationMinutes)
			info.Available = hasFreeSlot(slots, takenByDate[date.Format(domain.DateFormat)])
		}

		dates = append(dates, info)
	}

	uc.logger.Info("GetAvailableDates: %d days resolved for service=%d, month=%s",
		len(dates), req.ServiceID, req.Month.Format(domain.MonthFormat))

	return &Response{
		ServiceID: req.ServiceID,
		Month:     monthStart,
		Timezone:  req.Timezone,
		Dates:     dates,
	}, nil
}
