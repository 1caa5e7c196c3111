package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusDeclined  AppointmentStatus = "declined"
)

// Appointment represents a booked meeting for a service.
// Date and StartTime are stored in the service's own timezone; Timezone
// records which zone the stored time is expressed in.
type Appointment struct {
	ID        int64
	ServiceID int64

	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	CustomerMessage *string

	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Timezone        string

	Status AppointmentStatus

	// Filled on approval by the calendar integration
	CalendarEventID *string
	MeetingLink     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsAgainstAvailability reports whether the appointment occupies its slot.
// Declined appointments free the slot for other customers.
func (a *Appointment) CountsAgainstAvailability() bool {
	return a.Status != StatusDeclined
}

// IsPending returns true while the appointment awaits an admin decision
func (a *Appointment) IsPending() bool {
	return a.Status == StatusPending
}

// IsConfirmed returns true once the appointment has been approved
func (a *Appointment) IsConfirmed() bool {
	return a.Status == StatusConfirmed
}

// IsDeclined returns true if the appointment has been declined
func (a *Appointment) IsDeclined() bool {
	return a.Status == StatusDeclined
}

// ValidStatus reports whether s is one of the known statuses
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeclined:
		return true
	default:
		return false
	}
}

// AppointmentsFilter фильтр для выборки встреч в админских операциях
type AppointmentsFilter struct {
	ServiceID *int64             // Фильтр по услуге (опционально)
	Status    *AppointmentStatus // Фильтр по статусу (опционально)
	DateFrom  *time.Time         // Начало периода (опционально)
	DateTo    *time.Time         // Конец периода (опционально)
}
