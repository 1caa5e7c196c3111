package get_available_dates

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// generateTimeSlots генерирует сетку времён начала на день в часовом поясе
// услуги: от начала рабочего окна с шагом domain.SlotStepMinutes, пока
// встреча целиком помещается в окно
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

// hasFreeSlot проверяет, остался ли в сетке хотя бы один слот, не занятый
// активной записью. taken — времена начала занятых слотов на эту дату.
func hasFreeSlot(slots []types.TimeString, taken map[types.TimeString]struct{}) bool {
	for _, slot := range slots {
		if _, booked := taken[slot]; !booked {
			return true
		}
	}
	return false
}
