package approve_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("approve_appointment: appointment not found")

	// ErrAlreadyDeclined возвращается при попытке подтвердить отклоненную запись
	ErrAlreadyDeclined = errors.New("approve_appointment: appointment is already declined")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approve_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_appointment: internal error")
)
