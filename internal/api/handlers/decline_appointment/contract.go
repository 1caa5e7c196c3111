package decline_appointment

import (
	"context"

	declineAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/decline_appointment"
)

type DeclineAppointmentUseCase interface {
	Execute(ctx context.Context, req *declineAppointment.Request) (*declineAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
