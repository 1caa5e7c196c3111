package book_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ServiceID       int64            // ID услуги
	CustomerName    string           // Имя клиента
	CustomerEmail   string           // Email клиента
	CustomerPhone   *string          // Телефон клиента (опционально)
	CustomerMessage *string          // Сообщение клиента (опционально)
	Date            time.Time        // Дата записи (без времени)
	StartTime       types.TimeString // Время начала в часовом поясе клиента
	Timezone        string           // Часовой пояс клиента
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID записи
	ServiceID       int64            // ID услуги
	ServiceName     string           // Название услуги
	CustomerName    string           // Имя клиента
	CustomerEmail   string           // Email клиента
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала в часовом поясе клиента
	ServiceTime     types.TimeString // Время начала в часовом поясе услуги
	DurationMinutes int              // Длительность в минутах
	Timezone        string           // Часовой пояс клиента
	Status          string           // Статус записи (pending)
	CreatedAt       time.Time        // Время создания

	// NotificationWarning выставляется, когда запись создана, но хотя бы
	// одно письмо отправить не удалось
	NotificationWarning bool
}
