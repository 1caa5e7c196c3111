package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ISO weekday numbering, 1=Monday .. 7=Sunday
const (
	DayMonday = iota + 1
	DayTuesday
	DayWednesday
	DayThursday
	DayFriday
	DaySaturday
	DaySunday
)

// DayWindow is the open/close window of a single weekday,
// expressed in the service's own timezone.
type DayWindow struct {
	Available bool
	Start     types.TimeString
	End       types.TimeString
}

// ScheduleTemplate is the per-service weekly availability definition plus the
// set of explicitly blocked calendar dates. It is pure data: the availability
// engine only queries it and never mutates it.
type ScheduleTemplate struct {
	days    [8]DayWindow // index 1..7 (ISO), index 0 unused
	blocked map[string]struct{}
}

// NewScheduleTemplate builds a template from per-weekday windows and blocked
// dates. Days absent from the map are unavailable. For every available day the
// Start < End invariant is enforced at construction time.
func NewScheduleTemplate(days map[int]DayWindow, blockedDates []time.Time) (*ScheduleTemplate, error) {
	t := &ScheduleTemplate{
		blocked: make(map[string]struct{}, len(blockedDates)),
	}

	for day, window := range days {
		if day < DayMonday || day > DaySunday {
			return nil, fmt.Errorf("schedule: day of week must be in [1..7], got %d", day)
		}
		if window.Available {
			if err := window.Start.Validate(); err != nil {
				return nil, fmt.Errorf("schedule: day %d start: %w", day, err)
			}
			if err := window.End.Validate(); err != nil {
				return nil, fmt.Errorf("schedule: day %d end: %w", day, err)
			}
			if !window.Start.IsBefore(window.End) {
				return nil, fmt.Errorf("schedule: day %d window start %s must be before end %s",
					day, window.Start, window.End)
			}
		}
		t.days[day] = window
	}

	for _, d := range blockedDates {
		t.blocked[d.Format(DateFormat)] = struct{}{}
	}

	return t, nil
}

// IsAvailable reports whether the service accepts appointments on the given
// ISO weekday (1=Monday .. 7=Sunday).
func (t *ScheduleTemplate) IsAvailable(dayOfWeek int) bool {
	if dayOfWeek < DayMonday || dayOfWeek > DaySunday {
		return false
	}
	return t.days[dayOfWeek].Available
}

// BusinessHours returns the open/close window for the given ISO weekday in the
// service's own timezone. ok is false when the day is unavailable.
func (t *ScheduleTemplate) BusinessHours(dayOfWeek int) (start, end types.TimeString, ok bool) {
	if !t.IsAvailable(dayOfWeek) {
		return "", "", false
	}
	w := t.days[dayOfWeek]
	return w.Start, w.End, true
}

// IsBlocked reports whether the calendar date is in the blocked set.
func (t *ScheduleTemplate) IsBlocked(date time.Time) bool {
	_, ok := t.blocked[date.Format(DateFormat)]
	return ok
}

// Windows returns a copy of all seven weekday windows keyed by ISO day number.
func (t *ScheduleTemplate) Windows() map[int]DayWindow {
	out := make(map[int]DayWindow, 7)
	for day := DayMonday; day <= DaySunday; day++ {
		out[day] = t.days[day]
	}
	return out
}

// ISODayOfWeek converts a calendar date to ISO weekday numbering,
// 1=Monday .. 7=Sunday.
func ISODayOfWeek(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 { // time.Sunday
		return DaySunday
	}
	return wd
}
