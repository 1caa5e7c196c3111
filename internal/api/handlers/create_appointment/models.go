package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID       int64   `json:"serviceId"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	CustomerMessage *string `json:"customerMessage,omitempty"`
	Date            string  `json:"date"`      // "2026-09-15"
	StartTime       string  `json:"startTime"` // "14:30", в часовом поясе клиента
	Timezone        string  `json:"timezone"`  // "UTC", "EST", "PST", "IST"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                  int64  `json:"id"`
	ServiceID           int64  `json:"serviceId"`
	ServiceName         string `json:"serviceName"`
	CustomerName        string `json:"customerName"`
	CustomerEmail       string `json:"customerEmail"`
	Date                string `json:"date"`
	StartTime           string `json:"startTime"`   // В часовом поясе клиента
	ServiceTime         string `json:"serviceTime"` // В часовом поясе услуги
	DurationMinutes     int    `json:"durationMinutes"`
	Timezone            string `json:"timezone"`
	Status              string `json:"status"`
	CreatedAt           string `json:"createdAt"`
	NotificationWarning bool   `json:"notificationWarning,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*bookAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		ServiceID:       r.ServiceID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		CustomerMessage: r.CustomerMessage,
		Date:            date,
		StartTime:       startTime,
		Timezone:        r.Timezone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                  resp.ID,
		ServiceID:           resp.ServiceID,
		ServiceName:         resp.ServiceName,
		CustomerName:        resp.CustomerName,
		CustomerEmail:       resp.CustomerEmail,
		Date:                resp.Date.Format(domain.DateFormat),
		StartTime:           resp.StartTime.String(),
		ServiceTime:         resp.ServiceTime.String(),
		DurationMinutes:     resp.DurationMinutes,
		Timezone:            resp.Timezone,
		Status:              resp.Status,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
		NotificationWarning: resp.NotificationWarning,
	}
}
