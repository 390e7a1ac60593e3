package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/worklane/timekeeping-backend-go/internal/domain/report"
	"github.com/worklane/timekeeping-backend-go/internal/domain/timerecord"
)

// workedDay builds a completed record of `hours` working hours on the given
// day of March 2024.
func workedDay(employeeID string, dayOfMonth int, hours float64, forgot bool) timerecord.TimeRecord {
	checkIn := time.Date(2024, time.March, dayOfMonth, 8, 0, 0, 0, time.UTC)
	rec := timerecord.TimeRecord{
		EmployeeID:   employeeID,
		Date:         time.Date(2024, time.March, dayOfMonth, 0, 0, 0, 0, time.UTC),
		CheckIn:      &checkIn,
		Status:       timerecord.StatusCheckedOut,
		WorkingHours: hours,
	}
	if forgot {
		rec.Status = timerecord.StatusForgotCheckout
		rec.ForgotCheckout = true
		rec.WorkingHours = 0
	}
	return rec
}

func TestSummarize_TypicalMonth(t *testing.T) {
	var records []timerecord.TimeRecord
	for d := 1; d <= 17; d++ {
		records = append(records, workedDay("emp-1", d, 8.0, false))
	}
	for d := 18; d <= 20; d++ {
		records = append(records, workedDay("emp-1", d, 8.0, true))
	}

	s := Summarize(records, 2024, time.March)

	assert.Equal(t, 20, s.TotalWorkingDays)
	assert.Equal(t, 136.0, s.TotalWorkingHours)
	assert.Equal(t, 3, s.DaysForgotCheckout)
	assert.Equal(t, 31, s.DaysInMonth)
	assert.Equal(t, 11, s.DaysOff)
	assert.Equal(t, 6.8, s.AverageHoursPerDay)
	assert.Equal(t, report.StatusLabelActive, s.StatusLabel)
}

func TestSummarize_NoRecords(t *testing.T) {
	s := Summarize(nil, 2024, time.March)

	assert.Equal(t, 0, s.TotalWorkingDays)
	assert.Equal(t, 0.0, s.TotalWorkingHours)
	assert.Equal(t, 31, s.DaysOff)
	assert.Equal(t, 0.0, s.AverageHoursPerDay)
	assert.Equal(t, report.StatusLabelLowHours, s.StatusLabel)
}

func TestSummarize_StatusLabelPriority(t *testing.T) {
	// Six forgotten checkouts with barely any hours: Needs Attention wins
	// over Low Hours.
	var records []timerecord.TimeRecord
	for d := 1; d <= 6; d++ {
		records = append(records, workedDay("emp-1", d, 0, true))
	}
	s := Summarize(records, 2024, time.March)
	assert.Equal(t, report.StatusLabelNeedsAttention, s.StatusLabel)

	// Exactly five forgotten days is still below the threshold.
	s = Summarize(records[:5], 2024, time.March)
	assert.Equal(t, report.StatusLabelLowHours, s.StatusLabel)
}

func TestSummarize_LowHoursBoundary(t *testing.T) {
	// 39.99 hours is Low Hours, 40.00 is not.
	low := []timerecord.TimeRecord{workedDay("emp-1", 1, 39.99, false)}
	assert.Equal(t, report.StatusLabelLowHours, Summarize(low, 2024, time.March).StatusLabel)

	exact := []timerecord.TimeRecord{workedDay("emp-1", 1, 40.0, false)}
	assert.Equal(t, report.StatusLabelActive, Summarize(exact, 2024, time.March).StatusLabel)
}

func TestSummarize_AverageRounding(t *testing.T) {
	records := []timerecord.TimeRecord{
		workedDay("emp-1", 1, 8.0, false),
		workedDay("emp-1", 2, 8.0, false),
		workedDay("emp-1", 3, 9.0, false),
	}
	s := Summarize(records, 2024, time.March)

	// 25 / 3 = 8.3333...
	assert.Equal(t, 8.33, s.AverageHoursPerDay)
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.March, 31},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d-%s", tt.year, tt.month), func(t *testing.T) {
			assert.Equal(t, tt.want, daysInMonth(tt.year, tt.month))
		})
	}
}

func TestSummarize_DaysOffInvariant(t *testing.T) {
	for _, workedDays := range []int{0, 1, 15, 29} {
		var records []timerecord.TimeRecord
		for d := 1; d <= workedDays; d++ {
			records = append(records, workedDay("emp-1", d, 8.0, false))
		}
		s := Summarize(records, 2024, time.February)
		assert.Equal(t, s.DaysInMonth, s.TotalWorkingDays+s.DaysOff)
	}
}

func TestSummarizeAll_GroupsByEmployee(t *testing.T) {
	records := []timerecord.TimeRecord{
		workedDay("emp-1", 1, 8.0, false),
		workedDay("emp-2", 1, 4.0, false),
		workedDay("emp-1", 2, 8.0, false),
	}

	summaries := SummarizeAll(records, 2024, time.March)

	assert.Len(t, summaries, 2)
	assert.Equal(t, 2, summaries["emp-1"].TotalWorkingDays)
	assert.Equal(t, 16.0, summaries["emp-1"].TotalWorkingHours)
	assert.Equal(t, 1, summaries["emp-2"].TotalWorkingDays)
	assert.Equal(t, 4.0, summaries["emp-2"].TotalWorkingHours)
}
