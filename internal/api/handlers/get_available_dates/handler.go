package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	getAvailableDates "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_dates"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingMonth     = "месяц обязателен"
	msgInvalidMonth     = "некорректный формат месяца, ожидается YYYY-MM"
	msgMissingTimezone  = "часовой пояс обязателен"
	msgInvalidTimezone  = "неизвестный часовой пояс"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/available-dates
// Query params: month (required, YYYY-MM), timezone (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/available-dates - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /services/{id}/available-dates - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	timezone := r.URL.Query().Get("timezone")
	if timezone == "" {
		h.logger.Warn("GET /services/{id}/available-dates - Missing timezone")
		handlers.RespondBadRequest(w, msgMissingTimezone)
		return
	}

	useCaseReq, err := ToUseCaseRequest(serviceID, monthStr, timezone)
	if err != nil {
		h.logger.Warn("GET /services/{id}/available-dates - Invalid month format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id}/available-dates - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableDates.ErrInvalidTimezone):
			h.logger.Warn("GET /services/{id}/available-dates - Invalid timezone: %q", timezone)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/available-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /services/{id}/available-dates - Failed to get dates: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /services/{id}/available-dates - Calendar retrieved successfully: service_id=%d, month=%s",
		serviceID, monthStr)
	handlers.RespondJSON(w, http.StatusOK, response)
}
