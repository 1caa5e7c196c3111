package approve_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	approveAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/approve_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgAppointmentNotFound  = "запись не найдена"
	msgAlreadyDeclined      = "запись уже отклонена"
)

type Handler struct {
	useCase ApproveAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ApproveAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/approve - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &approveAppointment.Request{AppointmentID: appointmentID})
	if err != nil {
		switch {
		case errors.Is(err, approveAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/approve - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, approveAppointment.ErrAlreadyDeclined):
			h.logger.Warn("PATCH /appointments/{id}/approve - Already declined: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyDeclined)

		case errors.Is(err, approveAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/approve - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /appointments/{id}/approve - Failed to approve: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /appointments/{id}/approve - Appointment approved: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
