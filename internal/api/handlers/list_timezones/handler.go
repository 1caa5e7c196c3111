package list_timezones

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

// TimezoneEntry HTTP response model
type TimezoneEntry struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type Handler struct {
	converter TimezoneConverter
	logger    Logger
}

func NewHandler(converter TimezoneConverter, logger Logger) *Handler {
	return &Handler{
		converter: converter,
		logger:    logger,
	}
}

// Handle GET /api/v1/timezones
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	zones := h.converter.Zones()

	result := make([]TimezoneEntry, len(zones))
	for i, z := range zones {
		result[i] = TimezoneEntry{Code: z.Code, Label: z.Label}
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
