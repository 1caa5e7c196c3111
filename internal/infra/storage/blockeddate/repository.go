package blockeddate

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий заблокированных дат.
// Уникальность пары (service_id, blocked_date) обеспечивается
// ограничением в схеме.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByService получает все заблокированные даты услуги
func (r *Repository) ListByService(ctx context.Context, serviceID int64) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("blocked_date").
		From("blocked_dates").
		Where(squirrel.Eq{"service_id": serviceID}).
		OrderBy("blocked_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByService - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryDates(ctx, executor, query, args)
}

// ListByServiceBetween получает заблокированные даты услуги в диапазоне
// [rangeStart, rangeEnd] включительно
func (r *Repository) ListByServiceBetween(ctx context.Context, serviceID int64, rangeStart, rangeEnd time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("blocked_date").
		From("blocked_dates").
		Where(squirrel.Eq{"service_id": serviceID}).
		Where(squirrel.GtOrEq{"blocked_date": rangeStart}).
		Where(squirrel.LtOrEq{"blocked_date": rangeEnd}).
		OrderBy("blocked_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByServiceBetween - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryDates(ctx, executor, query, args)
}

// Add блокирует дату для услуги. Повторная блокировка — ErrAlreadyBlocked.
func (r *Repository) Add(ctx context.Context, serviceID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("service_id", "blocked_date").
		Values(serviceID, date).
		Suffix("ON CONFLICT (service_id, blocked_date) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Add - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Add - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAlreadyBlocked
	}

	return nil
}

// Remove снимает блокировку даты
func (r *Repository) Remove(ctx context.Context, serviceID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"service_id": serviceID}).
		Where(squirrel.Eq{"blocked_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Remove - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrNotBlocked
	}

	return nil
}

func (r *Repository) queryDates(ctx context.Context, executor DBExecutor, query string, args []interface{}) ([]time.Time, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: queryDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%w: queryDates - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: queryDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}
