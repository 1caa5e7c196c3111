package approve_appointment

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	approveAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/approve_appointment"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                  int64   `json:"id"`
	ServiceID           int64   `json:"serviceId"`
	CustomerName        string  `json:"customerName"`
	CustomerEmail       string  `json:"customerEmail"`
	Date                string  `json:"date"`
	StartTime           string  `json:"startTime"`
	DurationMinutes     int     `json:"durationMinutes"`
	Timezone            string  `json:"timezone"`
	Status              string  `json:"status"`
	CalendarEventID     *string `json:"calendarEventId,omitempty"`
	MeetingLink         *string `json:"meetingLink,omitempty"`
	CalendarWarning     bool    `json:"calendarWarning,omitempty"`
	NotificationWarning bool    `json:"notificationWarning,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *approveAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                  resp.ID,
		ServiceID:           resp.ServiceID,
		CustomerName:        resp.CustomerName,
		CustomerEmail:       resp.CustomerEmail,
		Date:                resp.Date.Format(domain.DateFormat),
		StartTime:           resp.StartTime.String(),
		DurationMinutes:     resp.DurationMinutes,
		Timezone:            resp.Timezone,
		Status:              resp.Status,
		CalendarEventID:     resp.CalendarEventID,
		MeetingLink:         resp.MeetingLink,
		CalendarWarning:     resp.CalendarWarning,
		NotificationWarning: resp.NotificationWarning,
	}
}
