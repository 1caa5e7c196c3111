package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Slot is a derived, never-persisted candidate appointment start of fixed
// duration within a business-hours window. Slots are recomputed from the
// template and the current appointment set on every request.
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// End returns the slot's end time
func (s Slot) End() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}

// DateInfo describes a single calendar date in the month view.
// Past dates are never available regardless of the template.
type DateInfo struct {
	Date      time.Time
	Day       int
	Available bool
	IsPast    bool
}
