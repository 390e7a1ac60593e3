package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/timekeeping-backend-go/internal/domain/timerecord"
	"github.com/worklane/timekeeping-backend-go/internal/pkg/database"
)

type timeRecordRepository struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) timerecord.TimeRecordRepository {
	return &timeRecordRepository{db: db}
}

// GetByEmployeeAndDate implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, status,
			   working_hours, forgot_checkout, created_at, updated_at
		FROM time_records
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var rec timerecord.TimeRecord
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.Status,
		&rec.WorkingHours, &rec.ForgotCheckout, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No record for that workday yet
		}
		return nil, fmt.Errorf("failed to get time record by employee and date: %w", err)
	}

	return &rec, nil
}

// GetLatestOpenBefore implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) GetLatestOpenBefore(ctx context.Context, employeeID string, before time.Time) (*timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, status,
			   working_hours, forgot_checkout, created_at, updated_at
		FROM time_records
		WHERE employee_id = $1
		  AND date < $2
		  AND status = $3
		ORDER BY date DESC
		LIMIT 1
	`

	var rec timerecord.TimeRecord
	err := q.QueryRow(ctx, query, employeeID, before, timerecord.StatusCheckedIn).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.Status,
		&rec.WorkingHours, &rec.ForgotCheckout, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Every earlier record is closed
		}
		return nil, fmt.Errorf("failed to get latest open record: %w", err)
	}

	return &rec, nil
}

// Upsert implements timerecord.TimeRecordRepository.
// The unique (employee_id, date) constraint is what guarantees at most one
// record per workday; concurrent writers converge on the same row.
func (r *timeRecordRepository) Upsert(ctx context.Context, rec timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_records (
			employee_id, date, check_in, check_out, status, working_hours, forgot_checkout
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			status = EXCLUDED.status,
			working_hours = EXCLUDED.working_hours,
			forgot_checkout = EXCLUDED.forgot_checkout,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.Date,
		rec.CheckIn,
		rec.CheckOut,
		rec.Status,
		rec.WorkingHours,
		rec.ForgotCheckout,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return timerecord.TimeRecord{}, fmt.Errorf("failed to upsert time record: %w", err)
	}

	return rec, nil
}

// ListByEmployeeAndMonth implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.date, t.check_in, t.check_out, t.status,
			   t.working_hours, t.forgot_checkout, t.created_at, t.updated_at,
			   e.full_name AS employee_name,
			   e.employee_code AS employee_code
		FROM time_records t
		LEFT JOIN employees e ON e.id = t.employee_id
		WHERE t.employee_id = $1
		  AND EXTRACT(YEAR FROM t.date) = $2
		  AND EXTRACT(MONTH FROM t.date) = $3
		ORDER BY t.date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list time records by employee and month: %w", err)
	}
	defer rows.Close()

	return scanTimeRecords(rows)
}

// ListByMonth implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.date, t.check_in, t.check_out, t.status,
			   t.working_hours, t.forgot_checkout, t.created_at, t.updated_at,
			   e.full_name AS employee_name,
			   e.employee_code AS employee_code
		FROM time_records t
		LEFT JOIN employees e ON e.id = t.employee_id
		WHERE EXTRACT(YEAR FROM t.date) = $1
		  AND EXTRACT(MONTH FROM t.date) = $2
		ORDER BY e.employee_code ASC, t.date ASC
	`

	rows, err := q.Query(ctx, query, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list time records by month: %w", err)
	}
	defer rows.Close()

	return scanTimeRecords(rows)
}

func scanTimeRecords(rows pgx.Rows) ([]timerecord.TimeRecord, error) {
	var records []timerecord.TimeRecord
	for rows.Next() {
		var rec timerecord.TimeRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.Status,
			&rec.WorkingHours, &rec.ForgotCheckout, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.EmployeeCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time records: %w", err)
	}
	return records, nil
}
