package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	blockedRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/blockeddate"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
)

// Service сервис для управления заблокированными датами услуги
type Service struct {
	blockedRepo BlockedDateRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(blockedRepo BlockedDateRepository, serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		blockedRepo: blockedRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// ListBlockedDates получает список заблокированных дат услуги
func (s *Service) ListBlockedDates(ctx context.Context, serviceID int64) ([]string, error) {
	s.logger.Info("ListBlockedDates: service=%d", serviceID)

	if err := s.checkService(ctx, serviceID); err != nil {
		return nil, err
	}

	dates, err := s.blockedRepo.ListByService(ctx, serviceID)
	if err != nil {
		s.logger.Error("ListBlockedDates: repository error for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: ListBlockedDates - repository error: %v", ErrInternal, err)
	}

	result := make([]string, 0, len(dates))
	for _, d := range dates {
		result = append(result, d.Format(domain.DateFormat))
	}

	return result, nil
}

// BlockDate блокирует дату для услуги.
// Существующие записи на эту дату не затрагиваются — блокировка действует
// только на новые запросы доступности и бронирования.
func (s *Service) BlockDate(ctx context.Context, serviceID int64, date time.Time) error {
	s.logger.Info("BlockDate: service=%d, date=%s", serviceID, date.Format(domain.DateFormat))

	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := s.checkService(ctx, serviceID); err != nil {
		return err
	}

	if err := s.blockedRepo.Add(ctx, serviceID, date); err != nil {
		if errors.Is(err, blockedRepo.ErrAlreadyBlocked) {
			s.logger.Warn("BlockDate: date %s is already blocked for service=%d",
				date.Format(domain.DateFormat), serviceID)
			return ErrAlreadyBlocked
		}
		s.logger.Error("BlockDate: repository error for service=%d: %v", serviceID, err)
		return fmt.Errorf("%w: BlockDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BlockDate: date %s blocked for service=%d", date.Format(domain.DateFormat), serviceID)
	return nil
}

// UnblockDate снимает блокировку даты
func (s *Service) UnblockDate(ctx context.Context, serviceID int64, date time.Time) error {
	s.logger.Info("UnblockDate: service=%d, date=%s", serviceID, date.Format(domain.DateFormat))

	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := s.checkService(ctx, serviceID); err != nil {
		return err
	}

	if err := s.blockedRepo.Remove(ctx, serviceID, date); err != nil {
		if errors.Is(err, blockedRepo.ErrNotBlocked) {
			s.logger.Warn("UnblockDate: date %s is not blocked for service=%d",
				date.Format(domain.DateFormat), serviceID)
			return ErrNotBlocked
		}
		s.logger.Error("UnblockDate: repository error for service=%d: %v", serviceID, err)
		return fmt.Errorf("%w: UnblockDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UnblockDate: date %s unblocked for service=%d", date.Format(domain.DateFormat), serviceID)
	return nil
}

// checkService проверяет существование услуги
func (s *Service) checkService(ctx context.Context, serviceID int64) error {
	if serviceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if _, err := s.serviceRepo.GetByID(ctx, serviceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("checkService: service id=%d not found", serviceID)
			return ErrServiceNotFound
		}
		s.logger.Error("checkService: repository error for service id=%d: %v", serviceID, err)
		return fmt.Errorf("%w: checkService - repository error: %v", ErrInternal, err)
	}

	return nil
}
