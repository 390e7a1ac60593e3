package report

import (
	"context"
	"io"
)

// ReportService defines the admin reporting views over time records
type ReportService interface {
	// MonthlyReport aggregates every active employee's records for the
	// requested month into per-employee summaries.
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// WriteMonthlyExcel renders the monthly report as an .xlsx workbook to w
	// and returns the suggested download filename.
	WriteMonthlyExcel(ctx context.Context, req MonthlyReportRequest, w io.Writer) (string, error)
}
