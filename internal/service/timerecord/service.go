package timerecord

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/worklane/timekeeping-backend-go/internal/domain/employee"
	"github.com/worklane/timekeeping-backend-go/internal/domain/timerecord"
	"github.com/worklane/timekeeping-backend-go/internal/pkg/database"
	"github.com/worklane/timekeeping-backend-go/internal/repository/postgresql"
)

type TimeRecordServiceImpl struct {
	db *database.DB
	timerecord.TimeRecordRepository
	employee.EmployeeRepository
	displayLocation *time.Location
}

func NewTimeRecordService(
	db *database.DB,
	timeRecordRepo timerecord.TimeRecordRepository,
	employeeRepo employee.EmployeeRepository,
	displayLocation *time.Location,
) timerecord.TimeRecordService {
	if displayLocation == nil {
		displayLocation = time.UTC
	}
	return &TimeRecordServiceImpl{
		db:                   db,
		TimeRecordRepository: timeRecordRepo,
		EmployeeRepository:   employeeRepo,
		displayLocation:      displayLocation,
	}
}

// employeeIDFromContext resolves the employee identity from JWT claims.
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", employee.ErrEmployeeNotFound
	}

	return employeeID, nil
}

// resolveEmployeeID extracts the employee identity from the claims and
// verifies the profile still exists; a token can outlive its roster entry.
func (s *TimeRecordServiceImpl) resolveEmployeeID(ctx context.Context) (string, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return "", err
	}
	return employeeID, nil
}

// workday truncates an absolute timestamp to its calendar day.
func workday(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Toggle implements timerecord.TimeRecordService.
//
// Reconciliation and the transition each run in their own transaction.
// Reconciliation commits first so a closed-out forgotten day survives even
// when the toggle itself fails; within each transaction the unique
// (employee_id, date) key makes concurrent writers converge on one row.
func (s *TimeRecordServiceImpl) Toggle(ctx context.Context) (timerecord.ToggleResponse, error) {
	employeeID, err := s.resolveEmployeeID(ctx)
	if err != nil {
		return timerecord.ToggleResponse{}, err
	}

	nowUTC := time.Now().UTC()
	today := workday(nowUTC)

	if err := s.reconcileOpenRecord(ctx, employeeID, today); err != nil {
		return timerecord.ToggleResponse{}, err
	}

	var todayRecord timerecord.TimeRecord
	var action timerecord.Action

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.TimeRecordRepository.GetByEmployeeAndDate(txCtx, employeeID, today)
		if err != nil {
			return fmt.Errorf("failed to get today's record: %w", err)
		}
		if existing != nil {
			todayRecord = *existing
		} else {
			todayRecord = timerecord.New(employeeID, today)
		}

		action, err = todayRecord.ApplyToggle(nowUTC)
		if err != nil {
			return err
		}

		todayRecord, err = s.TimeRecordRepository.Upsert(txCtx, todayRecord)
		if err != nil {
			return fmt.Errorf("failed to save today's record: %w", err)
		}
		return nil
	})
	if err != nil {
		return timerecord.ToggleResponse{}, err
	}

	return timerecord.ToggleResponse{
		Action:  action,
		Message: s.toggleMessage(action, nowUTC, todayRecord.WorkingHours),
		Record:  s.mapRecordToResponse(todayRecord),
	}, nil
}

// reconcileOpenRecord closes out a check-in the employee never finished on
// an earlier day. This toggle is the first signal that a new day has begun
// for the employee, so the stale record is resolved here instead of by a
// background sweep, however many days ago it was left open. MarkForgotten
// is a no-op on anything but CHECKED_IN, so re-running it is safe.
func (s *TimeRecordServiceImpl) reconcileOpenRecord(ctx context.Context, employeeID string, today time.Time) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		openRecord, err := s.TimeRecordRepository.GetLatestOpenBefore(txCtx, employeeID, today)
		if err != nil {
			return fmt.Errorf("failed to get open record: %w", err)
		}
		if openRecord != nil && openRecord.MarkForgotten() {
			if _, err := s.TimeRecordRepository.Upsert(txCtx, *openRecord); err != nil {
				return fmt.Errorf("failed to save reconciled record: %w", err)
			}
		}
		return nil
	})
}

// CurrentStatus implements timerecord.TimeRecordService.
// Read-only by contract: no reconciliation happens here, so a stale
// CHECKED_IN from a missed day stays visible until the next Toggle.
func (s *TimeRecordServiceImpl) CurrentStatus(ctx context.Context) (timerecord.StatusResponse, error) {
	employeeID, err := s.resolveEmployeeID(ctx)
	if err != nil {
		return timerecord.StatusResponse{}, err
	}

	today := workday(time.Now().UTC())

	record, err := s.TimeRecordRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return timerecord.StatusResponse{}, fmt.Errorf("failed to get today's record: %w", err)
	}

	if record == nil {
		return timerecord.StatusResponse{
			Status: timerecord.StatusCheckedOut,
			Record: nil,
		}, nil
	}

	resp := s.mapRecordToResponse(*record)
	return timerecord.StatusResponse{
		Status: record.Status,
		Record: &resp,
	}, nil
}

// MonthlyRecords implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) MonthlyRecords(ctx context.Context, req timerecord.MonthlyRecordsRequest) ([]timerecord.TimeRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employeeID, err := s.resolveEmployeeID(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.TimeRecordRepository.ListByEmployeeAndMonth(ctx, employeeID, req.Year, time.Month(req.Month))
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly records: %w", err)
	}

	responses := make([]timerecord.TimeRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, s.mapRecordToResponse(rec))
	}

	return responses, nil
}

func (s *TimeRecordServiceImpl) toggleMessage(action timerecord.Action, now time.Time, workingHours float64) string {
	clock := now.In(s.displayLocation).Format("15:04:05")
	if action == timerecord.ActionCheckedOut {
		return fmt.Sprintf("Checked out at %s - worked %.2f hours", clock, workingHours)
	}
	return fmt.Sprintf("Checked in at %s", clock)
}

// timePtrToDisplayString formats an absolute timestamp in the display
// timezone. Stored values stay UTC; this is presentation only.
func (s *TimeRecordServiceImpl) timePtrToDisplayString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(s.displayLocation).Format("2006-01-02 15:04:05")
	return &formatted
}

func (s *TimeRecordServiceImpl) mapRecordToResponse(rec timerecord.TimeRecord) timerecord.TimeRecordResponse {
	return timerecord.TimeRecordResponse{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		EmployeeName:   rec.EmployeeName,
		EmployeeCode:   rec.EmployeeCode,
		Date:           rec.Date.Format("2006-01-02"),
		CheckInTime:    s.timePtrToDisplayString(rec.CheckIn),
		CheckOutTime:   s.timePtrToDisplayString(rec.CheckOut),
		Status:         rec.Status,
		WorkingHours:   rec.WorkingHours,
		ForgotCheckout: rec.ForgotCheckout,
		CreatedAt:      rec.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      rec.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
