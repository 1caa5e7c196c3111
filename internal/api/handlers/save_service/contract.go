package save_service

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/services/models"
)

type ServicesService interface {
	Create(ctx context.Context, req *models.SaveServiceRequest) (*models.ServiceResponse, error)
	Update(ctx context.Context, id int64, req *models.SaveServiceRequest) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
