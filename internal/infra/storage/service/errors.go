package service

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service.repository: service not found")

	// ErrServiceReferenced возвращается при попытке удалить услугу,
	// на которую ссылаются существующие встречи
	ErrServiceReferenced = errors.New("service.repository: service is referenced by appointments")

	// ErrInvalidTemplate возвращается, когда сохраненное расписание
	// нарушает инварианты (start >= end для доступного дня)
	ErrInvalidTemplate = errors.New("service.repository: invalid schedule template")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("service.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("service.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("service.repository: failed to scan row")
)
