package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AppointmentService/internal/service/services/models"
)

// Service сервис для администрирования услуг и их расписаний
type Service struct {
	serviceRepo ServiceRepository
	converter   TimezoneConverter
	logger      Logger
}

// NewService создает новый экземпляр сервиса услуг
func NewService(serviceRepo ServiceRepository, converter TimezoneConverter, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		converter:   converter,
		logger:      logger,
	}
}

// Create создает новую услугу с недельным расписанием
// Доступно только администратору
func (s *Service) Create(ctx context.Context, req *models.SaveServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q, duration=%d, tz=%s",
		req.Name, req.DurationMinutes, req.Timezone)

	// 1. Валидируем входные данные
	if err := s.validateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Конвертируем в доменную модель (проверяет окна расписания)
	domainService, err := req.ToDomainService()
	if err != nil {
		s.logger.Warn("Create: invalid schedule: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Создаем услугу
	created, err := s.serviceRepo.Create(ctx, domainService)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// GetByID получает услугу по ID
// Публичный метод - доступен всем
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%d", id)

	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// List получает список всех услуг
// Публичный метод - доступен всем
func (s *Service) List(ctx context.Context) ([]*models.ServiceResponse, error) {
	s.logger.Info("List: fetching all services")

	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.ServiceResponse, 0, len(services))
	for _, svc := range services {
		result = append(result, models.FromDomainService(svc))
	}

	s.logger.Info("List: fetched %d services", len(result))
	return result, nil
}

// Update обновляет услугу и ее расписание
// Доступно только администратору
func (s *Service) Update(ctx context.Context, id int64, req *models.SaveServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d", id)

	// 1. Валидируем входные данные
	if err := s.validateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование услуги
	if _, err := s.serviceRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: failed to get service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 3. Конвертируем в доменную модель
	domainService, err := req.ToDomainService()
	if err != nil {
		s.logger.Warn("Update: invalid schedule: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	domainService.ID = id

	// 4. Обновляем услугу
	if err := s.serviceRepo.Update(ctx, domainService); err != nil {
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 5. Перечитываем, чтобы вернуть актуальные timestamps
	updated, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%d", id)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу
// Услугу с существующими записями удалить нельзя
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting service id=%d", id)

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, serviceRepo.ErrServiceNotFound):
			s.logger.Warn("Delete: service id=%d not found", id)
			return ErrServiceNotFound
		case errors.Is(err, serviceRepo.ErrServiceReferenced):
			s.logger.Warn("Delete: service id=%d has appointments", id)
			return ErrServiceReferenced
		default:
			s.logger.Error("Delete: repository error for service id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: successfully deleted service id=%d", id)
	return nil
}

// validateRequest валидирует общие поля запроса на сохранение услуги
func (s *Service) validateRequest(req *models.SaveServiceRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be in [%d..%d] minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.Timezone == "" {
		return fmt.Errorf("%w: timezone is required", ErrInvalidInput)
	}
	if !s.converter.IsKnown(req.Timezone) {
		return fmt.Errorf("%w: %q", ErrInvalidTimezone, req.Timezone)
	}

	for _, day := range req.Schedule {
		if day.DayOfWeek < domain.DayMonday || day.DayOfWeek > domain.DaySunday {
			return fmt.Errorf("%w: day of week must be in [1..7], got %d", ErrInvalidInput, day.DayOfWeek)
		}
	}

	return nil
}
