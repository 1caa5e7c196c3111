package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей.
// Все фильтры опциональны.
type ListAppointmentsRequest struct {
	ServiceID *int64     // Фильтр по услуге
	Status    *string    // Фильтр по статусу (pending/confirmed/declined)
	DateFrom  *time.Time // Нижняя граница даты записи
	DateTo    *time.Time // Верхняя граница даты записи
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() domain.AppointmentsFilter {
	filter := domain.AppointmentsFilter{
		ServiceID: r.ServiceID,
		DateFrom:  r.DateFrom,
		DateTo:    r.DateTo,
	}
	if r.Status != nil {
		status := domain.AppointmentStatus(*r.Status)
		filter.Status = &status
	}
	return filter
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	ServiceID       int64     `json:"serviceId"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   *string   `json:"customerPhone,omitempty"`
	CustomerMessage *string   `json:"customerMessage,omitempty"`
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Timezone        string    `json:"timezone"`
	Status          string    `json:"status"`
	CalendarEventID *string   `json:"calendarEventId,omitempty"`
	MeetingLink     *string   `json:"meetingLink,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FromDomainAppointment конвертирует доменную модель в ответ
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              appt.ID,
		ServiceID:       appt.ServiceID,
		CustomerName:    appt.CustomerName,
		CustomerEmail:   appt.CustomerEmail,
		CustomerPhone:   appt.CustomerPhone,
		CustomerMessage: appt.CustomerMessage,
		Date:            appt.Date.Format(domain.DateFormat),
		StartTime:       appt.StartTime.String(),
		DurationMinutes: appt.DurationMinutes,
		Timezone:        appt.Timezone,
		Status:          string(appt.Status),
		CalendarEventID: appt.CalendarEventID,
		MeetingLink:     appt.MeetingLink,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}
