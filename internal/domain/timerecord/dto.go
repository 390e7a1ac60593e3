package timerecord

import (
	"fmt"
	"time"

	"github.com/worklane/timekeeping-backend-go/internal/pkg/validator"
)

type TimeRecordResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	EmployeeCode   *string `json:"employee_code,omitempty"`
	Date           string  `json:"date"`
	CheckInTime    *string `json:"check_in_time"`
	CheckOutTime   *string `json:"check_out_time"`
	Status         Status  `json:"status"`
	WorkingHours   float64 `json:"working_hours"`
	ForgotCheckout bool    `json:"forgot_checkout"`
	CreatedAt      string  `json:"created_at,omitempty"`
	UpdatedAt      string  `json:"updated_at,omitempty"`
}

type ToggleResponse struct {
	Action  Action             `json:"action"`
	Message string             `json:"message"`
	Record  TimeRecordResponse `json:"record"`
}

type StatusResponse struct {
	Status Status              `json:"status"`
	Record *TimeRecordResponse `json:"record"`
}

type MonthlyRecordsRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *MonthlyRecordsRequest) Validate() error {
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
