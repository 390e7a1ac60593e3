package timerecord

import (
	"context"
)

// TimeRecordService defines business logic for the check-in/check-out cycle
type TimeRecordService interface {
	// Toggle is the single mutating entry point behind the check-in/out
	// button. It first reconciles any check-in left open on an earlier day
	// (a stale CHECKED_IN becomes FORGOT_CHECKOUT, however long ago), then
	// checks the caller in or out for today.
	Toggle(ctx context.Context) (ToggleResponse, error)

	// CurrentStatus returns today's record, or a synthetic CHECKED_OUT
	// response when no record exists yet. It never reconciles: a missed
	// checkout from a previous day stays visible as CHECKED_IN until the
	// employee's next Toggle. That staleness window is part of the contract.
	CurrentStatus(ctx context.Context) (StatusResponse, error)

	// MonthlyRecords returns the caller's records for one calendar month,
	// newest first.
	MonthlyRecords(ctx context.Context, req MonthlyRecordsRequest) ([]TimeRecordResponse, error)
}
