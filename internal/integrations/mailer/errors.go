package mailer

import "errors"

var (
	// ErrSendFailed возвращается, когда SMTP-сервер не принял письмо.
	// Ошибки отправки никогда не превращаются в ошибку бронирования —
	// вызывающая сторона логирует их и выставляет warning-флаг.
	ErrSendFailed = errors.New("mailer: failed to send email")
)
