package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	bookAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimezone    = "неизвестный часовой пояс"
	msgServiceNotFound    = "услуга не найдена"
	msgPastDate           = "дата записи уже прошла"
	msgDateBlocked        = "выбранная дата заблокирована"
	msgDayUnavailable     = "в этот день услуга не предоставляется"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgSlotUnavailable    = "выбранный временной слот уже занят"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		// Все причины недоступности слота — конфликт 409: занятый слот,
		// заблокированная дата, нерабочий день и время вне сетки
		// заворачивают ErrSlotUnavailable. Уточняющие случаи идут первыми
		// ради более точного сообщения.
		case errors.Is(err, bookAppointment.ErrDateBlocked):
			h.logger.Warn("POST /appointments - Date blocked: service_id=%d, date=%s", req.ServiceID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDateBlocked)

		case errors.Is(err, bookAppointment.ErrDayUnavailable):
			h.logger.Warn("POST /appointments - Day unavailable: service_id=%d, date=%s", req.ServiceID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDayUnavailable)

		case errors.Is(err, bookAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: service_id=%d, time=%s",
				req.ServiceID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTimeSlot)

		case errors.Is(err, bookAppointment.ErrSlotUnavailable):
			h.logger.Warn("POST /appointments - Slot not available: service_id=%d, date=%s, time=%s",
				req.ServiceID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, bookAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, bookAppointment.ErrInvalidTimezone):
			h.logger.Warn("POST /appointments - Invalid timezone: %q", req.Timezone)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, bookAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Past date: service_id=%d, date=%s", req.ServiceID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: service_id=%d, error=%v",
				req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, service_id=%d",
		result.ID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
