package book_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("book_appointment: service not found")

	// ErrInvalidTimezone возвращается при неизвестном часовом поясе
	ErrInvalidTimezone = errors.New("book_appointment: invalid timezone")

	// ErrInvalidDate возвращается при попытке записаться на прошедшую дату
	ErrInvalidDate = errors.New("book_appointment: invalid appointment date")

	// ErrSlotUnavailable возвращается, когда запрошенный слот нельзя занять:
	// он уже занят другой записью или больше не входит в актуальную выдачу
	// доступных слотов. На один слот может победить ровно одна запись.
	// Ошибки ниже уточняют причину и заворачивают ErrSlotUnavailable.
	ErrSlotUnavailable = errors.New("book_appointment: slot is not available")

	// ErrDateBlocked возвращается, когда дата заблокирована администратором
	ErrDateBlocked = fmt.Errorf("%w: date is blocked", ErrSlotUnavailable)

	// ErrDayUnavailable возвращается, когда у услуги нет рабочего окна в этот день недели
	ErrDayUnavailable = fmt.Errorf("%w: no working hours on this day", ErrSlotUnavailable)

	// ErrInvalidTimeSlot возвращается, когда время начала не совпадает ни с одним
	// слотом из сетки рабочего окна
	ErrInvalidTimeSlot = fmt.Errorf("%w: start time is not in the slot grid", ErrSlotUnavailable)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
