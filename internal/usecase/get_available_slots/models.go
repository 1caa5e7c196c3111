package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата для получения слотов (без времени)
	Timezone  string    // Часовой пояс, в котором клиент хочет видеть слоты
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата, на которую запрашивались слоты
	Timezone  string    // Часовой пояс слотов в ответе
	Slots     []Slot    // Доступные слоты, отсортированы по времени начала
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала в часовом поясе запроса
	ServiceTime     types.TimeString // Время начала в часовом поясе услуги
	DurationMinutes int              // Длительность слота в минутах
}
