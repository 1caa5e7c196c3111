package blocked_dates

import (
	"context"
	"time"
)

type ScheduleService interface {
	ListBlockedDates(ctx context.Context, serviceID int64) ([]string, error)
	BlockDate(ctx context.Context, serviceID int64, date time.Time) error
	UnblockDate(ctx context.Context, serviceID int64, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
