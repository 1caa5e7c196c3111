package decline_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	declineAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/decline_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgAppointmentNotFound  = "запись не найдена"
)

type Handler struct {
	useCase DeclineAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase DeclineAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/decline
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/decline - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &declineAppointment.Request{AppointmentID: appointmentID})
	if err != nil {
		switch {
		case errors.Is(err, declineAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/decline - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, declineAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/decline - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /appointments/{id}/decline - Failed to decline: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /appointments/{id}/decline - Appointment declined: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
