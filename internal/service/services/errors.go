package services

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("services: service not found")

	// ErrServiceReferenced возвращается при попытке удалить услугу,
	// на которую существуют записи
	ErrServiceReferenced = errors.New("services: service has appointments")

	// ErrInvalidTimezone возвращается при неизвестном часовом поясе услуги
	ErrInvalidTimezone = errors.New("services: invalid timezone")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("services: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("services: internal error")
)
