package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	"github.com/m04kA/SPA-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SPA-AppointmentService/pkg/psqlbuilder"
)

var paymentColumns = []string{
	"id",
	"created_by_user_id",
	"method",
	"amount",
	"concept",
	"appointment_id",
	"created_at",
}

// Repository persists the append-only cash journal. Entries are never
// updated or deleted.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a payment repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create appends a payment entry and returns it with generated fields.
func (r *Repository) Create(ctx context.Context, entry *domain.PaymentEntry) (*domain.PaymentEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payment_entries").
		Columns(
			"created_by_user_id",
			"method",
			"amount",
			"concept",
			"appointment_id",
		).
		Values(
			entry.CreatedByUserID,
			entry.Method,
			entry.Amount,
			entry.Concept,
			entry.AppointmentID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	return entry, nil
}

// ListByAppointment returns the entries linked to one appointment in
// insertion order.
func (r *Repository) ListByAppointment(ctx context.Context, appointmentID int64) ([]*domain.PaymentEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payment_entries").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.PaymentEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByAppointment - scan entry: %v", ErrScanRow, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// SumByAppointment returns the total amount received for an appointment.
// Zero when no entries exist. Inside a managed transaction the linked
// entries are locked so the confirmation deposit check reads a stable sum.
func (r *Repository) SumByAppointment(ctx context.Context, appointmentID int64) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("payment_entries").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: SumByAppointment - build select query: %v", ErrBuildQuery, err)
	}

	var total float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: SumByAppointment - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*domain.PaymentEntry, error) {
	var entry domain.PaymentEntry
	var createdAt sql.NullTime

	err := row.Scan(
		&entry.ID,
		&entry.CreatedByUserID,
		&entry.Method,
		&entry.Amount,
		&entry.Concept,
		&entry.AppointmentID,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	entry.CreatedAt = createdAt.Time
	return &entry, nil
}
