package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane/timekeeping-backend-go/internal/domain/employee"
	"github.com/worklane/timekeeping-backend-go/internal/domain/report"
	"github.com/worklane/timekeeping-backend-go/internal/domain/timerecord"
	"github.com/xuri/excelize/v2"
)

// stubTimeRecordRepository serves canned records and counts month listings.
type stubTimeRecordRepository struct {
	records          []timerecord.TimeRecord
	listByMonthCalls int
}

func (s *stubTimeRecordRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timerecord.TimeRecord, error) {
	return nil, nil
}

func (s *stubTimeRecordRepository) GetLatestOpenBefore(ctx context.Context, employeeID string, before time.Time) (*timerecord.TimeRecord, error) {
	return nil, nil
}

func (s *stubTimeRecordRepository) Upsert(ctx context.Context, rec timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	return rec, nil
}

func (s *stubTimeRecordRepository) ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]timerecord.TimeRecord, error) {
	return nil, nil
}

func (s *stubTimeRecordRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]timerecord.TimeRecord, error) {
	s.listByMonthCalls++
	return s.records, nil
}

type stubEmployeeRepository struct {
	employees       []employee.Employee
	listActiveCalls int
}

func (s *stubEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepository) GetByEmployeeCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	s.listActiveCalls++
	return s.employees, nil
}

func (s *stubEmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func TestReportService_WriteMonthlyExcel_FetchesMonthOnce(t *testing.T) {
	ctx := context.Background()

	code := "EMP001"
	rec := workedDay("emp-1", 1, 8.0, false)
	rec.EmployeeCode = &code

	timeRecordRepo := &stubTimeRecordRepository{records: []timerecord.TimeRecord{rec}}
	employeeRepo := &stubEmployeeRepository{employees: []employee.Employee{
		{
			ID:           "emp-1",
			EmployeeCode: code,
			FullName:     "Nguyễn Văn An",
			Department:   employee.DepartmentEngineering,
			Position:     "Backend Developer",
			IsActive:     true,
		},
	}}

	svc := NewReportService(timeRecordRepo, employeeRepo, time.UTC)

	var buf bytes.Buffer
	filename, err := svc.WriteMonthlyExcel(ctx, report.MonthlyReportRequest{Year: 2024, Month: 3}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "attendance_report_2024_03.xlsx", filename)

	// Summary and detail sheets share the same month listing.
	assert.Equal(t, 1, timeRecordRepo.listByMonthCalls)
	assert.Equal(t, 1, employeeRepo.listActiveCalls)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{summarySheet, detailSheet}, f.GetSheetList())

	detailCode, err := f.GetCellValue(detailSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, code, detailCode)
}

func TestReportService_WriteMonthlyExcel_InvalidMonth(t *testing.T) {
	ctx := context.Background()

	timeRecordRepo := &stubTimeRecordRepository{}
	employeeRepo := &stubEmployeeRepository{}
	svc := NewReportService(timeRecordRepo, employeeRepo, time.UTC)

	var buf bytes.Buffer
	_, err := svc.WriteMonthlyExcel(ctx, report.MonthlyReportRequest{Year: 2024, Month: 13}, &buf)
	assert.Error(t, err)
	assert.Equal(t, 0, timeRecordRepo.listByMonthCalls)
}
