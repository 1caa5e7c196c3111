package googlecalendar

import "errors"

var (
	// ErrCreateEvent возвращается, когда событие не удалось создать.
	// Подтверждение встречи при этом не откатывается — запись сохраняется
	// без ссылки на конференцию, а вызывающая сторона выставляет warning.
	ErrCreateEvent = errors.New("googlecalendar: failed to create event")

	// ErrDeleteEvent возвращается, когда событие не удалось удалить
	ErrDeleteEvent = errors.New("googlecalendar: failed to delete event")
)
