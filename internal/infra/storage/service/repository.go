package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Repository репозиторий услуг. Услуга загружается целиком: строка services,
// семь строк service_hours и заблокированные даты собираются в
// domain.Service с готовым ScheduleTemplate.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу вместе с недельным расписанием и блокировками
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"description",
		"color",
		"timezone",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Name,
		&svc.DurationMinutes,
		&svc.Description,
		&svc.Color,
		&svc.Timezone,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	template, err := r.loadTemplate(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	svc.Template = template

	return &svc, nil
}

// List получает все услуги с расписаниями, отсортированные по ID
func (r *Repository) List(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("services").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: List - scan id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	services := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		svc, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}

	return services, nil
}

// Create создает услугу вместе с семью строками недельного расписания
func (r *Repository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("name", "duration_minutes", "description", "color", "timezone").
		Values(svc.Name, svc.DurationMinutes, svc.Description, svc.Color, svc.Timezone).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&svc.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	if err := r.saveHours(ctx, executor, svc.ID, svc.Template); err != nil {
		return nil, err
	}

	return svc, nil
}

// Update обновляет услугу и перезаписывает её недельное расписание
func (r *Repository) Update(ctx context.Context, svc *domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("name", svc.Name).
		Set("duration_minutes", svc.DurationMinutes).
		Set("description", svc.Description).
		Set("color", svc.Color).
		Set("timezone", svc.Timezone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": svc.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return r.saveHours(ctx, executor, svc.ID, svc.Template)
}

// Delete удаляет услугу. Удаление услуги с существующими встречами
// отклоняется (ErrServiceReferenced) — каскадного удаления нет,
// внешний ключ в схеме объявлен как ON DELETE RESTRICT.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isForeignKeyViolation(err) {
		return ErrServiceReferenced
	}
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// loadTemplate собирает ScheduleTemplate из service_hours и blocked_dates
func (r *Repository) loadTemplate(ctx context.Context, executor DBExecutor, serviceID int64) (*domain.ScheduleTemplate, error) {
	query, args, err := psqlbuilder.Select("day_of_week", "available", "start_time", "end_time").
		From("service_hours").
		Where(squirrel.Eq{"service_id": serviceID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadTemplate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadTemplate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make(map[int]domain.DayWindow, 7)
	for rows.Next() {
		var day int
		var window domain.DayWindow
		if err := rows.Scan(&day, &window.Available, &window.Start, &window.End); err != nil {
			return nil, fmt.Errorf("%w: loadTemplate - scan day: %v", ErrScanRow, err)
		}
		days[day] = window
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadTemplate - rows error: %v", ErrScanRow, err)
	}

	blocked, err := r.loadBlockedDates(ctx, executor, serviceID)
	if err != nil {
		return nil, err
	}

	template, err := domain.NewScheduleTemplate(days, blocked)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	return template, nil
}

func (r *Repository) loadBlockedDates(ctx context.Context, executor DBExecutor, serviceID int64) ([]time.Time, error) {
	query, args, err := psqlbuilder.Select("blocked_date").
		From("blocked_dates").
		Where(squirrel.Eq{"service_id": serviceID}).
		OrderBy("blocked_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadBlockedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadBlockedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%w: loadBlockedDates - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadBlockedDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// saveHours перезаписывает недельное расписание услуги (upsert по дню недели)
func (r *Repository) saveHours(ctx context.Context, executor DBExecutor, serviceID int64, template *domain.ScheduleTemplate) error {
	if template == nil {
		return nil
	}

	for day, window := range template.Windows() {
		start := window.Start
		end := window.End
		// Для недоступного дня храним дефолтное окно, чтобы строка оставалась валидной
		if start.IsZero() {
			start = types.TimeString(domain.DefaultDayStart)
		}
		if end.IsZero() {
			end = types.TimeString(domain.DefaultDayEnd)
		}

		query, args, err := psqlbuilder.Insert("service_hours").
			Columns("service_id", "day_of_week", "available", "start_time", "end_time").
			Values(serviceID, day, window.Available, start, end).
			Suffix("ON CONFLICT (service_id, day_of_week) DO UPDATE SET available = EXCLUDED.available, start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time").
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: saveHours - build upsert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: saveHours - execute upsert: %v", ErrExecQuery, err)
		}
	}

	return nil
}

// isForeignKeyViolation проверяет код ошибки PostgreSQL 23503
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return false
}
