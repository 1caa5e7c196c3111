package decline_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на отклонение записи
type Request struct {
	AppointmentID int64 // ID записи
}

// Response модель ответа с отклоненной записью
type Response struct {
	ID              int64            // ID записи
	ServiceID       int64            // ID услуги
	CustomerName    string           // Имя клиента
	CustomerEmail   string           // Email клиента
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала в часовом поясе услуги
	DurationMinutes int              // Длительность в минутах
	Timezone        string           // Часовой пояс записи
	Status          string           // Статус записи (declined)

	// CalendarWarning выставляется, когда событие календаря не удалось удалить
	CalendarWarning bool
	// NotificationWarning выставляется, когда письмо клиенту не отправлено
	NotificationWarning bool
}
