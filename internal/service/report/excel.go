package report

import (
	"fmt"

	"github.com/worklane/timekeeping-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	detailSheet  = "Records"
)

var summaryHeaders = []string{
	"Employee ID", "Full Name", "Department", "Position",
	"Working Days", "Working Hours", "Forgot Checkout",
	"Days Off", "Avg Hours/Day", "Status",
}

var detailHeaders = []string{
	"Employee ID", "Date", "Check In", "Check Out", "Hours", "State", "Note",
}

// buildMonthlyWorkbook renders the monthly report into an xlsx workbook:
// one summary row per employee plus a per-record detail sheet.
func buildMonthlyWorkbook(monthlyReport report.MonthlyReport, detailRows []report.RecordRow) *excelize.File {
	f := excelize.NewFile()

	index, _ := f.NewSheet(summarySheet)
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	title := fmt.Sprintf("Attendance Report %02d-%d", monthlyReport.PeriodMonth, monthlyReport.PeriodYear)
	f.SetCellValue(summarySheet, "A1", title)
	f.MergeCell(summarySheet, "A1", "J1")
	f.SetCellStyle(summarySheet, "A1", "J1", headerStyle)
	f.SetRowHeight(summarySheet, 1, 25)

	for col, header := range summaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 3)
		f.SetCellValue(summarySheet, cell, header)
	}
	f.SetCellStyle(summarySheet, "A3", "J3", headerStyle)

	row := 4
	for _, summary := range monthlyReport.Summaries {
		values := []interface{}{
			summary.EmployeeCode,
			summary.EmployeeName,
			summary.Department,
			summary.Position,
			summary.TotalWorkingDays,
			summary.TotalWorkingHours,
			summary.DaysForgotCheckout,
			summary.DaysOff,
			summary.AverageHoursPerDay,
			summary.StatusLabel,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(summarySheet, cell, value)
		}
		row++
	}

	f.SetColWidth(summarySheet, "A", "A", 14)
	f.SetColWidth(summarySheet, "B", "D", 24)
	f.SetColWidth(summarySheet, "E", "J", 16)

	f.NewSheet(detailSheet)
	for col, header := range detailHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(detailSheet, cell, header)
	}
	f.SetCellStyle(detailSheet, "A1", "G1", headerStyle)

	row = 2
	for _, record := range detailRows {
		values := []interface{}{
			record.EmployeeCode,
			record.Date,
			record.CheckIn,
			record.CheckOut,
			record.WorkingHours,
			record.Status,
			record.Note,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(detailSheet, cell, value)
		}
		row++
	}

	f.SetColWidth(detailSheet, "A", "G", 16)

	f.DeleteSheet("Sheet1")
	return f
}
