package report

import (
	"fmt"
	"time"

	"github.com/worklane/timekeeping-backend-go/internal/pkg/validator"
)

// Status labels for the monthly summary classification, evaluated in
// priority order: Needs Attention, then Low Hours, then Active.
const (
	StatusLabelNeedsAttention = "Needs Attention"
	StatusLabelLowHours       = "Low Hours"
	StatusLabelActive         = "Active"
)

type MonthlyReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Summary holds the aggregate figures for one employee over one month.
// It is recomputed on demand from the time records and never persisted.
type Summary struct {
	TotalWorkingDays   int     `json:"total_working_days"`
	TotalWorkingHours  float64 `json:"total_working_hours"`
	DaysForgotCheckout int     `json:"days_forgot_checkout"`
	DaysInMonth        int     `json:"days_in_month"`
	DaysOff            int     `json:"days_off"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
	StatusLabel        string  `json:"status_label"`
}

type MonthlySummary struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	Position     string `json:"position"`

	Summary
}

type MonthlyReport struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	Summaries []MonthlySummary `json:"summaries"`
}

// RecordRow is one per-record line on the detail sheet of the Excel export.
type RecordRow struct {
	EmployeeCode string
	Date         string
	CheckIn      string
	CheckOut     string
	WorkingHours float64
	Status       string
	Note         string
}
