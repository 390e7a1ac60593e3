package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane/timekeeping-backend-go/internal/domain/report"
)

func TestBuildMonthlyWorkbook(t *testing.T) {
	monthlyReport := report.MonthlyReport{
		PeriodMonth: 3,
		PeriodYear:  2024,
		Summaries: []report.MonthlySummary{
			{
				EmployeeID:   "emp-1",
				EmployeeCode: "EMP001",
				EmployeeName: "Nguyễn Văn An",
				Department:   "Engineering",
				Position:     "Senior Full Stack Developer",
				Summary: report.Summary{
					TotalWorkingDays:   20,
					TotalWorkingHours:  160.0,
					DaysForgotCheckout: 1,
					DaysInMonth:        31,
					DaysOff:            11,
					AverageHoursPerDay: 8.0,
					StatusLabel:        report.StatusLabelActive,
				},
			},
		},
	}
	detailRows := []report.RecordRow{
		{
			EmployeeCode: "EMP001",
			Date:         "2024-03-01",
			CheckIn:      "08:00:00",
			CheckOut:     "17:30:00",
			WorkingHours: 9.5,
			Status:       "CHECKED_OUT",
		},
		{
			EmployeeCode: "EMP001",
			Date:         "2024-03-04",
			CheckIn:      "08:00:00",
			WorkingHours: 0,
			Status:       "FORGOT_CHECKOUT",
			Note:         "Checkout missing, closed automatically",
		},
	}

	f := buildMonthlyWorkbook(monthlyReport, detailRows)
	defer f.Close()

	// Default sheet is replaced by the two named sheets.
	assert.ElementsMatch(t, []string{summarySheet, detailSheet}, f.GetSheetList())

	title, err := f.GetCellValue(summarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Attendance Report 03-2024", title)

	header, err := f.GetCellValue(summarySheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Employee ID", header)

	code, err := f.GetCellValue(summarySheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "EMP001", code)

	status, err := f.GetCellValue(summarySheet, "J4")
	require.NoError(t, err)
	assert.Equal(t, report.StatusLabelActive, status)

	note, err := f.GetCellValue(detailSheet, "G3")
	require.NoError(t, err)
	assert.Equal(t, "Checkout missing, closed automatically", note)
}
