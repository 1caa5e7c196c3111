package get_available_dates

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableDates "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	ServiceID int64       `json:"serviceId"`
	Month     string      `json:"month"`
	Timezone  string      `json:"timezone"`
	Dates     []DateEntry `json:"dates"`
}

// DateEntry сведения о доступности одного дня
type DateEntry struct {
	Date      string `json:"date"`
	DayOfWeek int    `json:"dayOfWeek"`
	Available bool   `json:"available"`
	IsPast    bool   `json:"isPast"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(serviceID int64, monthStr, timezone string) (*getAvailableDates.Request, error) {
	month, err := time.Parse(domain.MonthFormat, monthStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableDates.Request{
		ServiceID: serviceID,
		Month:     month,
		Timezone:  timezone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]DateEntry, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = DateEntry{
			Date:      d.Date.Format(domain.DateFormat),
			DayOfWeek: d.DayOfWeek,
			Available: d.Available,
			IsPast:    d.IsPast,
		}
	}

	return &AvailableDatesResponse{
		ServiceID: resp.ServiceID,
		Month:     resp.Month.Format(domain.MonthFormat),
		Timezone:  resp.Timezone,
		Dates:     dates,
	}
}
