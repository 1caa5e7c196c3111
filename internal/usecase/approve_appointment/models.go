package approve_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на подтверждение записи
type Request struct {
	AppointmentID int64 // ID записи
}

// Response модель ответа с подтвержденной записью
type Response struct {
	ID              int64            // ID записи
	ServiceID       int64            // ID услуги
	CustomerName    string           // Имя клиента
	CustomerEmail   string           // Email клиента
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала в часовом поясе услуги
	DurationMinutes int              // Длительность в минутах
	Timezone        string           // Часовой пояс записи
	Status          string           // Статус записи (confirmed)
	CalendarEventID *string          // ID события в календаре, если создано
	MeetingLink     *string          // Ссылка на конференцию, если создана

	// CalendarWarning выставляется, когда запись подтверждена,
	// но событие в календаре создать не удалось
	CalendarWarning bool
	// NotificationWarning выставляется, когда письмо клиенту не отправлено
	NotificationWarning bool
}
