package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/worklane/timekeeping-backend-go/internal/domain/employee"
	"github.com/worklane/timekeeping-backend-go/internal/domain/report"
	"github.com/worklane/timekeeping-backend-go/internal/domain/timerecord"
)

type ReportServiceImpl struct {
	timeRecordRepo  timerecord.TimeRecordRepository
	employeeRepo    employee.EmployeeRepository
	displayLocation *time.Location
}

func NewReportService(
	timeRecordRepo timerecord.TimeRecordRepository,
	employeeRepo employee.EmployeeRepository,
	displayLocation *time.Location,
) report.ReportService {
	if displayLocation == nil {
		displayLocation = time.UTC
	}
	return &ReportServiceImpl{
		timeRecordRepo:  timeRecordRepo,
		employeeRepo:    employeeRepo,
		displayLocation: displayLocation,
	}
}

// MonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) MonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	_, monthlyReport, err := s.fetchAndAssemble(ctx, req)
	return monthlyReport, err
}

// fetchAndAssemble loads the month's data once and builds the summary view
// from it. The raw records come back too so the Excel export can render its
// detail sheet without hitting the store a second time.
func (s *ReportServiceImpl) fetchAndAssemble(ctx context.Context, req report.MonthlyReportRequest) ([]timerecord.TimeRecord, report.MonthlyReport, error) {
	month := time.Month(req.Month)

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, report.MonthlyReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.timeRecordRepo.ListByMonth(ctx, req.Year, month)
	if err != nil {
		return nil, report.MonthlyReport{}, fmt.Errorf("failed to list time records: %w", err)
	}

	summaries := SummarizeAll(records, req.Year, month)

	rows := make([]report.MonthlySummary, 0, len(employees))
	for _, emp := range employees {
		summary, ok := summaries[emp.ID]
		if !ok {
			// No records this month: everything zero except the calendar.
			summary = Summarize(nil, req.Year, month)
		}
		rows = append(rows, report.MonthlySummary{
			EmployeeID:   emp.ID,
			EmployeeCode: emp.EmployeeCode,
			EmployeeName: emp.FullName,
			Department:   emp.Department.DisplayName(),
			Position:     emp.Position,
			Summary:      summary,
		})
	}

	periodStart := time.Date(req.Year, month, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	return records, report.MonthlyReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: periodStart.Format("2006-01-02"),
		PeriodEnd:   periodEnd.Format("2006-01-02"),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Summaries:   rows,
	}, nil
}

// WriteMonthlyExcel implements report.ReportService.
func (s *ReportServiceImpl) WriteMonthlyExcel(ctx context.Context, req report.MonthlyReportRequest, w io.Writer) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	records, monthlyReport, err := s.fetchAndAssemble(ctx, req)
	if err != nil {
		return "", err
	}

	detailRows := make([]report.RecordRow, 0, len(records))
	for _, rec := range records {
		detailRows = append(detailRows, s.mapRecordToRow(rec))
	}

	f := buildMonthlyWorkbook(monthlyReport, detailRows)
	defer f.Close()

	if err := f.Write(w); err != nil {
		return "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance_report_%04d_%02d.xlsx", req.Year, req.Month)
	return filename, nil
}

func (s *ReportServiceImpl) mapRecordToRow(rec timerecord.TimeRecord) report.RecordRow {
	row := report.RecordRow{
		Date:         rec.Date.Format("2006-01-02"),
		WorkingHours: rec.WorkingHours,
		Status:       string(rec.Status),
	}
	if rec.EmployeeCode != nil {
		row.EmployeeCode = *rec.EmployeeCode
	}
	if rec.CheckIn != nil {
		row.CheckIn = rec.CheckIn.In(s.displayLocation).Format("15:04:05")
	}
	if rec.CheckOut != nil {
		row.CheckOut = rec.CheckOut.In(s.displayLocation).Format("15:04:05")
	}
	if rec.ForgotCheckout {
		row.Note = "Checkout missing, closed automatically"
	}
	return row
}
