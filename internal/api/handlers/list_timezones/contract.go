package list_timezones

import "github.com/m04kA/SMC-AppointmentService/internal/timezone"

type TimezoneConverter interface {
	Zones() []timezone.Zone
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
