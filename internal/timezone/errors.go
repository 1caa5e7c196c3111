package timezone

import "errors"

var (
	// ErrInvalidTimezone возвращается при неизвестном имени зоны
	ErrInvalidTimezone = errors.New("timezone: unknown timezone")
)
