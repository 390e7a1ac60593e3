package timerecord

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusCheckedOut     Status = "CHECKED_OUT"
	StatusCheckedIn      Status = "CHECKED_IN"
	StatusForgotCheckout Status = "FORGOT_CHECKOUT"
)

type Action string

const (
	ActionCheckedIn  Action = "checked_in"
	ActionCheckedOut Action = "checked_out"
)

// TimeRecord is the single attendance record for one employee on one
// calendar day. Timestamps are absolute UTC; Date identifies the workday.
type TimeRecord struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	CheckIn        *time.Time
	CheckOut       *time.Time
	Status         Status
	WorkingHours   float64
	ForgotCheckout bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO / Join
	EmployeeName *string
	EmployeeCode *string
}

// New returns a fresh record for (employeeID, day) in the initial state.
func New(employeeID string, day time.Time) TimeRecord {
	return TimeRecord{
		EmployeeID: employeeID,
		Date:       day,
		Status:     StatusCheckedOut,
	}
}

// RoundHours rounds a duration expressed in hours to 2 decimal places.
// Every working-hours figure in the system goes through this one helper.
func RoundHours(hours float64) float64 {
	return decimal.NewFromFloat(hours).Round(2).InexactFloat64()
}

// RecalculateWorkingHours derives WorkingHours from the two timestamps.
// It is 0.0 unless both check-in and check-out are present.
func (r *TimeRecord) RecalculateWorkingHours() float64 {
	if r.CheckIn != nil && r.CheckOut != nil {
		r.WorkingHours = RoundHours(r.CheckOut.Sub(*r.CheckIn).Hours())
	} else {
		r.WorkingHours = 0.0
	}
	return r.WorkingHours
}

// MarkForgotten transitions a record that was left CHECKED_IN to
// FORGOT_CHECKOUT and sets the sticky flag. Any other status is a no-op,
// which keeps reconciliation idempotent.
func (r *TimeRecord) MarkForgotten() bool {
	if r.Status != StatusCheckedIn {
		return false
	}
	r.Status = StatusForgotCheckout
	r.ForgotCheckout = true
	return true
}

// ApplyToggle advances today's record one step: CHECKED_OUT checks in,
// CHECKED_IN checks out. A record in any other state at toggle time means
// the stored data is inconsistent and the call fails with ErrInvalidState.
func (r *TimeRecord) ApplyToggle(now time.Time) (Action, error) {
	switch r.Status {
	case StatusCheckedOut:
		checkIn := now
		r.CheckIn = &checkIn
		// A same-day re-check-in starts a new session; CHECKED_IN never
		// carries a checkout timestamp.
		r.CheckOut = nil
		r.WorkingHours = 0.0
		r.Status = StatusCheckedIn
		return ActionCheckedIn, nil
	case StatusCheckedIn:
		checkOut := now
		r.CheckOut = &checkOut
		r.Status = StatusCheckedOut
		r.RecalculateWorkingHours()
		return ActionCheckedOut, nil
	default:
		return "", ErrInvalidState
	}
}
