package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// generateTimeSlots генерирует список всех возможных временных слотов на день
// в часовом поясе услуги. Слоты идут от начала рабочего окна с фиксированным
// шагом domain.SlotStepMinutes; слот попадает в список, только если встреча
// целиком помещается до конца окна.
func generateTimeSlots(
	template *domain.ScheduleTemplate,
	requestDate time.Time,
	durationMinutes int,
) ([]types.TimeString, error) {
	dayOfWeek := domain.ISODayOfWeek(requestDate)

	start, end, ok := template.BusinessHours(dayOfWeek)
	if !ok {
		return []types.TimeString{}, nil
	}

	slots := make([]types.TimeString, 0)
	current := start

	for current.IsBefore(end) {
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// Встреча пересекла бы полночь — дальше слотов нет
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

	return slots, nil
}

// excludeBookedSlots убирает слоты, время начала которых совпадает с
// активной записью. Сравнение идет в часовом поясе услуги — в нем же
// хранятся записи.
func excludeBookedSlots(slots []types.TimeString, appointments []*domain.Appointment) []types.TimeString {
	if len(appointments) == 0 {
		return slots
	}

	taken := make(map[types.TimeString]struct{}, len(appointments))
	for _, appt := range appointments {
		if appt.CountsAgainstAvailability() {
			taken[appt.StartTime] = struct{}{}
		}
	}

	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if _, booked := taken[slot]; !booked {
			available = append(available, slot)
		}
	}

	return available
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
