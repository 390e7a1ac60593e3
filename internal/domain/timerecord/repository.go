package timerecord

import (
	"context"
	"time"
)

// TimeRecordRepository defines data access for attendance records.
// The (employee_id, date) pair is unique; Upsert is the only write path,
// which makes the store the enforcement point for one-record-per-day.
type TimeRecordRepository interface {
	// GetByEmployeeAndDate returns the record for that workday, or nil when
	// none exists yet.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*TimeRecord, error)

	// GetLatestOpenBefore returns the most recent record still CHECKED_IN
	// dated before the given day, or nil when every earlier record is closed.
	GetLatestOpenBefore(ctx context.Context, employeeID string, before time.Time) (*TimeRecord, error)

	// Upsert inserts or updates the record keyed by (employee_id, date).
	Upsert(ctx context.Context, record TimeRecord) (TimeRecord, error)

	// ListByEmployeeAndMonth returns one employee's records for a calendar
	// month, newest first.
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]TimeRecord, error)

	// ListByMonth returns all employees' records for a calendar month.
	ListByMonth(ctx context.Context, year int, month time.Month) ([]TimeRecord, error)
}
