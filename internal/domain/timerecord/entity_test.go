package timerecord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNew_InitialState(t *testing.T) {
	rec := New("emp-1", day(2024, time.March, 1))

	assert.Equal(t, StatusCheckedOut, rec.Status)
	assert.Nil(t, rec.CheckIn)
	assert.Nil(t, rec.CheckOut)
	assert.Equal(t, 0.0, rec.WorkingHours)
	assert.False(t, rec.ForgotCheckout)
}

func TestApplyToggle_CheckInThenOut(t *testing.T) {
	rec := New("emp-1", day(2024, time.March, 1))

	checkIn := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	action, err := rec.ApplyToggle(checkIn)
	require.NoError(t, err)
	assert.Equal(t, ActionCheckedIn, action)
	assert.Equal(t, StatusCheckedIn, rec.Status)
	require.NotNil(t, rec.CheckIn)
	assert.Equal(t, checkIn, *rec.CheckIn)
	assert.Nil(t, rec.CheckOut)

	checkOut := time.Date(2024, time.March, 1, 17, 30, 0, 0, time.UTC)
	action, err = rec.ApplyToggle(checkOut)
	require.NoError(t, err)
	assert.Equal(t, ActionCheckedOut, action)
	assert.Equal(t, StatusCheckedOut, rec.Status)
	require.NotNil(t, rec.CheckOut)
	assert.Equal(t, 9.5, rec.WorkingHours)
}

func TestApplyToggle_SameDayRecheckInStartsNewSession(t *testing.T) {
	rec := New("emp-1", day(2024, time.March, 1))

	_, err := rec.ApplyToggle(time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = rec.ApplyToggle(time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 4.0, rec.WorkingHours)

	// Third toggle of the day: back to CHECKED_IN with a clean slate.
	action, err := rec.ApplyToggle(time.Date(2024, time.March, 1, 13, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, ActionCheckedIn, action)
	assert.Equal(t, StatusCheckedIn, rec.Status)
	assert.Nil(t, rec.CheckOut)
	assert.Equal(t, 0.0, rec.WorkingHours)
}

func TestApplyToggle_ForgotCheckoutIsInvalid(t *testing.T) {
	rec := New("emp-1", day(2024, time.March, 1))
	rec.Status = StatusForgotCheckout

	_, err := rec.ApplyToggle(time.Now().UTC())
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestMarkForgotten(t *testing.T) {
	rec := New("emp-1", day(2024, time.March, 1))

	// CHECKED_OUT: nothing to reconcile.
	assert.False(t, rec.MarkForgotten())
	assert.Equal(t, StatusCheckedOut, rec.Status)

	_, err := rec.ApplyToggle(time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, rec.MarkForgotten())
	assert.Equal(t, StatusForgotCheckout, rec.Status)
	assert.True(t, rec.ForgotCheckout)

	// Idempotent: a second pass changes nothing.
	assert.False(t, rec.MarkForgotten())
	assert.Equal(t, StatusForgotCheckout, rec.Status)
}

func TestRecalculateWorkingHours_PartialRecord(t *testing.T) {
	rec := New("emp-1", day(2024, time.March, 1))
	checkIn := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	rec.CheckIn = &checkIn

	assert.Equal(t, 0.0, rec.RecalculateWorkingHours())

	checkOut := checkIn.Add(7*time.Hour + 45*time.Minute)
	rec.CheckOut = &checkOut
	assert.Equal(t, 7.75, rec.RecalculateWorkingHours())
}

func TestRoundHours(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  float64
	}{
		{"exact", 8.0, 8.0},
		{"round down", 8.333333, 8.33},
		{"round up", 8.336666, 8.34},
		{"half rounds up", 8.125, 8.13},
		{"zero", 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundHours(tt.hours))
		})
	}
}
