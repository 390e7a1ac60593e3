package timerecord

import "errors"

// Time record domain errors
var (
	ErrRecordNotFound = errors.New("time record not found")
	ErrInvalidState   = errors.New("time record is in an invalid state")
)
