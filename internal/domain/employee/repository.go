package employee

import "context"

type EmployeeRepository interface {
	// GetByID retrieves an employee by primary key
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByUserID resolves the employee profile behind an authenticated user
	GetByUserID(ctx context.Context, userID string) (Employee, error)

	// GetByEmployeeCode retrieves an employee by business code (e.g. EMP001)
	GetByEmployeeCode(ctx context.Context, code string) (Employee, error)

	// ListActive returns all active employees ordered by employee code
	ListActive(ctx context.Context) ([]Employee, error)

	// Create inserts a new employee profile
	Create(ctx context.Context, emp Employee) (Employee, error)
}
