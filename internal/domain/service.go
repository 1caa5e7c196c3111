package domain

import "time"

// Service represents a bookable service with its weekly schedule.
// The schedule template and blocked dates are loaded together with the
// service and are read-only for the availability engine.
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Description     string
	Color           string
	Timezone        string
	Template        *ScheduleTemplate

	CreatedAt time.Time
	UpdatedAt time.Time
}
