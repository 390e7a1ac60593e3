package report

import (
	"time"

	"github.com/worklane/timekeeping-backend-go/internal/domain/report"
	"github.com/worklane/timekeeping-backend-go/internal/domain/timerecord"
)

// Classification thresholds for the monthly status label.
const (
	needsAttentionForgotDays = 5
	lowHoursThreshold        = 40.0
)

// daysInMonth returns the number of calendar days in (year, month) under
// Gregorian rules; day 0 of the following month is the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Summarize reduces one employee's records for a calendar month into the
// aggregate figures. The records are expected to be pre-filtered to that
// month; filtering is the store's concern.
//
// A working day is any day with a recorded check-in, so a record stuck in
// CHECKED_IN or FORGOT_CHECKOUT still counts. That mirrors the check-in
// button being the only attendance signal the system collects.
func Summarize(records []timerecord.TimeRecord, year int, month time.Month) report.Summary {
	var summary report.Summary
	summary.DaysInMonth = daysInMonth(year, month)

	var totalHours float64
	for _, rec := range records {
		if rec.CheckIn != nil {
			summary.TotalWorkingDays++
		}
		if rec.ForgotCheckout {
			summary.DaysForgotCheckout++
		}
		totalHours += rec.WorkingHours
	}

	summary.TotalWorkingHours = timerecord.RoundHours(totalHours)
	summary.DaysOff = summary.DaysInMonth - summary.TotalWorkingDays

	if summary.TotalWorkingDays > 0 {
		summary.AverageHoursPerDay = timerecord.RoundHours(totalHours / float64(summary.TotalWorkingDays))
	}

	summary.StatusLabel = classify(summary)
	return summary
}

// classify picks the status label. First match wins.
func classify(s report.Summary) string {
	switch {
	case s.DaysForgotCheckout > needsAttentionForgotDays:
		return report.StatusLabelNeedsAttention
	case s.TotalWorkingHours < lowHoursThreshold:
		return report.StatusLabelLowHours
	default:
		return report.StatusLabelActive
	}
}

// SummarizeAll fans Summarize out over every employee ID present in
// records. Pure function, no shared state between employees.
func SummarizeAll(records []timerecord.TimeRecord, year int, month time.Month) map[string]report.Summary {
	grouped := make(map[string][]timerecord.TimeRecord)
	for _, rec := range records {
		grouped[rec.EmployeeID] = append(grouped[rec.EmployeeID], rec)
	}

	summaries := make(map[string]report.Summary, len(grouped))
	for employeeID, recs := range grouped {
		summaries[employeeID] = Summarize(recs, year, month)
	}
	return summaries
}
