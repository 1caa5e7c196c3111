package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// Service сервис для просмотра записей администратором
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает список записей с фильтрами
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) ([]*models.AppointmentResponse, error) {
	s.logger.Info("List: fetching appointments, service=%v, status=%v", req.ServiceID, req.Status)

	// Валидация статуса фильтра
	if req.Status != nil && !domain.ValidStatus(domain.AppointmentStatus(*req.Status)) {
		s.logger.Warn("List: invalid status filter %q", *req.Status)
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		result = append(result, models.FromDomainAppointment(appt))
	}

	s.logger.Info("List: fetched %d appointments", len(result))
	return result, nil
}
