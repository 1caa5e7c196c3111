package googlecalendar

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// StubClient детерминированная заглушка календаря. Используется в режиме
// calendar.mode = "stub": генерирует стабильные идентификаторы событий и
// ссылки на конференции без обращения к внешнему API.
type StubClient struct {
	log Logger
}

// NewStubClient создает заглушку календаря
func NewStubClient(log Logger) *StubClient {
	return &StubClient{log: log}
}

// CreateEvent возвращает детерминированное событие, построенное из данных
// встречи. Один и тот же appointment всегда даёт один и тот же результат.
func (c *StubClient) CreateEvent(ctx context.Context, appt *domain.Appointment, svc *domain.Service) (*CalendarEvent, error) {
	event := &CalendarEvent{
		EventID:     fmt.Sprintf("stub-event-%d", appt.ID),
		MeetingLink: stubMeetingLink(appt.ID),
	}

	c.log.Info("googlecalendar: stub event %s created for appointment %d (%s %s)",
		event.EventID, appt.ID, appt.Date.Format(domain.DateFormat), appt.StartTime)

	return event, nil
}

// DeleteEvent заглушка удаления события
func (c *StubClient) DeleteEvent(ctx context.Context, eventID string) error {
	c.log.Info("googlecalendar: stub event %s deleted", eventID)
	return nil
}

// stubMeetingLink строит ссылку в формате Google Meet: три группы
// латинских букв, выведенные из идентификатора встречи
func stubMeetingLink(appointmentID int64) string {
	letters := "abcdefghijklmnopqrstuvwxyz"
	seed := uint64(appointmentID)*2654435761 + 12345

	code := make([]byte, 0, 12)
	for _, n := range []int{3, 4, 3} {
		if len(code) > 0 {
			code = append(code, '-')
		}
		for i := 0; i < n; i++ {
			code = append(code, letters[seed%26])
			seed = seed/26 + seed*31
		}
	}

	return fmt.Sprintf("https://meet.google.com/%s", string(code))
}
