package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func weekdayTemplate(t *testing.T) *ScheduleTemplate {
	t.Helper()

	days := map[int]DayWindow{}
	for d := DayMonday; d <= DayFriday; d++ {
		days[d] = DayWindow{Available: true, Start: "08:00", End: "17:00"}
	}
	days[DaySaturday] = DayWindow{Available: false}

	tpl, err := NewScheduleTemplate(days, []time.Time{
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return tpl
}

func TestNewScheduleTemplate(t *testing.T) {
	t.Run("start must be before end", func(t *testing.T) {
		_, err := NewScheduleTemplate(map[int]DayWindow{
			DayMonday: {Available: true, Start: "17:00", End: "08:00"},
		}, nil)
		assert.Error(t, err)
	})

	t.Run("equal start and end rejected", func(t *testing.T) {
		_, err := NewScheduleTemplate(map[int]DayWindow{
			DayMonday: {Available: true, Start: "09:00", End: "09:00"},
		}, nil)
		assert.Error(t, err)
	})

	t.Run("day out of range rejected", func(t *testing.T) {
		_, err := NewScheduleTemplate(map[int]DayWindow{
			0: {Available: false},
		}, nil)
		assert.Error(t, err)

		_, err = NewScheduleTemplate(map[int]DayWindow{
			8: {Available: false},
		}, nil)
		assert.Error(t, err)
	})

	t.Run("unavailable day skips window validation", func(t *testing.T) {
		_, err := NewScheduleTemplate(map[int]DayWindow{
			DaySunday: {Available: false, Start: "", End: ""},
		}, nil)
		assert.NoError(t, err)
	})
}

func TestScheduleTemplateIsAvailable(t *testing.T) {
	tpl := weekdayTemplate(t)

	assert.True(t, tpl.IsAvailable(DayMonday))
	assert.True(t, tpl.IsAvailable(DayFriday))
	assert.False(t, tpl.IsAvailable(DaySaturday))
	// Sunday was never defined: absent days are unavailable.
	assert.False(t, tpl.IsAvailable(DaySunday))
	assert.False(t, tpl.IsAvailable(0))
	assert.False(t, tpl.IsAvailable(8))
}

func TestScheduleTemplateBusinessHours(t *testing.T) {
	tpl := weekdayTemplate(t)

	start, end, ok := tpl.BusinessHours(DayWednesday)
	require.True(t, ok)
	assert.Equal(t, types.TimeString("08:00"), start)
	assert.Equal(t, types.TimeString("17:00"), end)

	_, _, ok = tpl.BusinessHours(DaySunday)
	assert.False(t, ok)
}

func TestScheduleTemplateIsBlocked(t *testing.T) {
	tpl := weekdayTemplate(t)

	assert.True(t, tpl.IsBlocked(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, tpl.IsBlocked(time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)))

	// Blocking compares calendar dates, not instants.
	assert.True(t, tpl.IsBlocked(time.Date(2026, 9, 15, 23, 59, 0, 0, time.UTC)))
}

func TestScheduleTemplateWindows(t *testing.T) {
	tpl := weekdayTemplate(t)

	windows := tpl.Windows()
	require.Len(t, windows, 7)
	assert.True(t, windows[DayTuesday].Available)
	assert.False(t, windows[DaySunday].Available)
}

func TestISODayOfWeek(t *testing.T) {
	// 2026-09-14 is a Monday.
	assert.Equal(t, DayMonday, ISODayOfWeek(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, DaySaturday, ISODayOfWeek(time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, DaySunday, ISODayOfWeek(time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)))
}

func TestAppointmentCountsAgainstAvailability(t *testing.T) {
	appt := &Appointment{Status: StatusPending}
	assert.True(t, appt.CountsAgainstAvailability())

	appt.Status = StatusConfirmed
	assert.True(t, appt.CountsAgainstAvailability())

	appt.Status = StatusDeclined
	assert.False(t, appt.CountsAgainstAvailability())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusConfirmed))
	assert.True(t, ValidStatus(StatusDeclined))
	assert.False(t, ValidStatus("cancelled"))
	assert.False(t, ValidStatus(""))
}

func TestSlotEnd(t *testing.T) {
	end, err := Slot{StartTime: "16:30", DurationMinutes: 30}.End()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("17:00"), end)

	_, err = Slot{StartTime: "23:45", DurationMinutes: 30}.End()
	assert.ErrorIs(t, err, types.ErrTimeOutOfRange)
}
