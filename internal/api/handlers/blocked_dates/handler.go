package blocked_dates

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	scheduleService "github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound    = "услуга не найдена"
	msgAlreadyBlocked     = "дата уже заблокирована"
	msgNotBlocked         = "дата не заблокирована"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/services/{serviceId}/blocked-dates
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := h.serviceID(w, r, "GET /services/{id}/blocked-dates")
	if !ok {
		return
	}

	dates, err := h.service.ListBlockedDates(r.Context(), serviceID)
	if err != nil {
		h.respondScheduleError(w, "GET /services/{id}/blocked-dates", err)
		return
	}

	h.logger.Info("GET /services/{id}/blocked-dates - Retrieved %d dates: service_id=%d", len(dates), serviceID)
	handlers.RespondJSON(w, http.StatusOK, &BlockedDatesResponse{ServiceID: serviceID, Dates: dates})
}

// HandleBlock POST /api/v1/services/{serviceId}/blocked-dates
func (h *Handler) HandleBlock(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := h.serviceID(w, r, "POST /services/{id}/blocked-dates")
	if !ok {
		return
	}

	var req BlockDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services/{id}/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /services/{id}/blocked-dates - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.BlockDate(r.Context(), serviceID, date); err != nil {
		h.respondScheduleError(w, "POST /services/{id}/blocked-dates", err)
		return
	}

	h.logger.Info("POST /services/{id}/blocked-dates - Date blocked: service_id=%d, date=%s", serviceID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, nil)
}

// HandleUnblock DELETE /api/v1/services/{serviceId}/blocked-dates/{date}
func (h *Handler) HandleUnblock(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := h.serviceID(w, r, "DELETE /services/{id}/blocked-dates/{date}")
	if !ok {
		return
	}

	dateStr := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("DELETE /services/{id}/blocked-dates/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.UnblockDate(r.Context(), serviceID, date); err != nil {
		h.respondScheduleError(w, "DELETE /services/{id}/blocked-dates/{date}", err)
		return
	}

	h.logger.Info("DELETE /services/{id}/blocked-dates/{date} - Date unblocked: service_id=%d, date=%s",
		serviceID, dateStr)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) serviceID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid service ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return 0, false
	}
	return serviceID, true
}

func (h *Handler) respondScheduleError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, scheduleService.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: %v", route, err)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, scheduleService.ErrAlreadyBlocked):
		h.logger.Warn("%s - Already blocked: %v", route, err)
		handlers.RespondError(w, http.StatusConflict, msgAlreadyBlocked)

	case errors.Is(err, scheduleService.ErrNotBlocked):
		h.logger.Warn("%s - Not blocked: %v", route, err)
		handlers.RespondNotFound(w, msgNotBlocked)

	case errors.Is(err, scheduleService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Schedule operation failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
