package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee profile not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
)
