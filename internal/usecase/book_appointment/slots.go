package book_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// generateTimeSlots генерирует сетку допустимых времён начала на день
// в часовом поясе услуги: от начала рабочего окна с шагом
// domain.SlotStepMinutes, пока встреча целиком помещается в окно
func generateTimeSlots(
	template *domain.ScheduleTemplate,
	requestDate time.Time,
	durationMinutes int,
) []types.TimeString {
	dayOfWeek := domain.ISODayOfWeek(requestDate)

	start, end, ok := template.BusinessHours(dayOfWeek)
	if !ok {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0)
	current := start

	for current.IsBefore(end) {
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(end) {
			break
		}

		slots = append(slots, current)

		next, err := current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots
}

// containsSlot проверяет, что время начала входит в сетку слотов
func containsSlot(slots []types.TimeString, startTime types.TimeString) bool {
	for _, slot := range slots {
		if slot.Equal(startTime) {
			return true
		}
	}
	return false
}

// isSlotTaken проверяет, занят ли слот активной записью.
// Сравнение времён начала идет в часовом поясе услуги.
func isSlotTaken(appointments []*domain.Appointment, startTime types.TimeString) bool {
	for _, appt := range appointments {
		if appt.CountsAgainstAvailability() && appt.StartTime.Equal(startTime) {
			return true
		}
	}
	return false
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
