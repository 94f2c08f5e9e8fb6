package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	"github.com/m04kA/SPA-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SPA-AppointmentService/pkg/psqlbuilder"
)

// Repository persists the weekly schedule template: business hours and
// break blocks keyed by weekday.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a schedule repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetHoursByWeekday returns the hours record for the weekday, or nil when
// none is configured. The calendar treats a missing record as closed.
func (r *Repository) GetHoursByWeekday(ctx context.Context, weekday domain.Weekday) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "weekday", "open_time", "close_time", "is_closed").
		From("business_hours").
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetHoursByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var hours domain.BusinessHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.ID,
		&hours.Weekday,
		&hours.OpenTime,
		&hours.CloseTime,
		&hours.IsClosed,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHoursByWeekday - scan hours: %v", ErrScanRow, err)
	}

	return &hours, nil
}

// ListBreaksByWeekday returns the break blocks configured for the weekday.
func (r *Repository) ListBreaksByWeekday(ctx context.Context, weekday domain.Weekday) ([]*domain.BreakBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "weekday", "start_time", "end_time", "label").
		From("break_blocks").
		Where(squirrel.Eq{"weekday": int(weekday)}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBreaksByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBreaks(ctx, executor, query, args, "ListBreaksByWeekday")
}

// ListHours returns all configured weekday hour records, Monday first.
func (r *Repository) ListHours(ctx context.Context) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "weekday", "open_time", "close_time", "is_closed").
		From("business_hours").
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.BusinessHours, 0, 7)
	for rows.Next() {
		var h domain.BusinessHours
		if err := rows.Scan(&h.ID, &h.Weekday, &h.OpenTime, &h.CloseTime, &h.IsClosed); err != nil {
			return nil, fmt.Errorf("%w: ListHours - scan hours: %v", ErrScanRow, err)
		}
		hours = append(hours, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// ListBreaks returns all break blocks, ordered by weekday and start time.
func (r *Repository) ListBreaks(ctx context.Context) ([]*domain.BreakBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "weekday", "start_time", "end_time", "label").
		From("break_blocks").
		OrderBy("weekday ASC, start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBreaks - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBreaks(ctx, executor, query, args, "ListBreaks")
}

// UpsertHours creates or replaces the hours record for a weekday.
// business_hours has a unique index on weekday, so ON CONFLICT keeps the
// one-record-per-weekday invariant.
func (r *Repository) UpsertHours(ctx context.Context, hours *domain.BusinessHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_hours").
		Columns("weekday", "open_time", "close_time", "is_closed").
		Values(int(hours.Weekday), hours.OpenTime, hours.CloseTime, hours.IsClosed).
		Suffix(`ON CONFLICT (weekday) DO UPDATE
			SET open_time = EXCLUDED.open_time,
			    close_time = EXCLUDED.close_time,
			    is_closed = EXCLUDED.is_closed`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertHours - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// ReplaceBreaks swaps the weekday's break blocks for the given set.
// Called inside a transaction so readers never see a half-replaced day.
func (r *Repository) ReplaceBreaks(ctx context.Context, weekday domain.Weekday, blocks []*domain.BreakBlock) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("break_blocks").
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceBreaks - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceBreaks - execute delete: %v", ErrExecQuery, err)
	}

	if len(blocks) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("break_blocks").
		Columns("weekday", "start_time", "end_time", "label")
	for _, b := range blocks {
		insertBuilder = insertBuilder.Values(int(weekday), b.StartTime, b.EndTime, b.Label)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceBreaks - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceBreaks - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) queryBreaks(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) ([]*domain.BreakBlock, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BreakBlock, 0)
	for rows.Next() {
		var b domain.BreakBlock
		if err := rows.Scan(&b.ID, &b.Weekday, &b.StartTime, &b.EndTime, &b.Label); err != nil {
			return nil, fmt.Errorf("%w: %s - scan break block: %v", ErrScanRow, op, err)
		}
		blocks = append(blocks, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return blocks, nil
}
