package get_available_dates

import "time"

// Request модель запроса календаря на месяц
type Request struct {
	ServiceID int64     // ID услуги
	Month     time.Time // Первый день запрашиваемого месяца
	Timezone  string    // Часовой пояс клиента
}

// Response модель ответа с календарем на месяц
type Response struct {
	ServiceID int64      // ID услуги
	Month     time.Time  // Первый день месяца
	Timezone  string     // Часовой пояс запроса
	Dates     []DateInfo // По одной записи на каждый день месяца
}

// DateInfo сведения о доступности одного дня
type DateInfo struct {
	Date      time.Time // Дата
	DayOfWeek int       // День недели ISO: 1 = понедельник .. 7 = воскресенье
	Available bool      // Есть ли хотя бы один свободный слот в этот день
	IsPast    bool      // День уже прошел; прошедшие дни не оцениваются
}
