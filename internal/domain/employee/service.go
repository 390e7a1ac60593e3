package employee

import "context"

// EmployeeService defines business logic for roster management
type EmployeeService interface {
	// GetMyProfile returns the employee profile of the authenticated user
	GetMyProfile(ctx context.Context) (EmployeeResponse, error)

	// List returns all active employees (admin view)
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Create adds an employee together with their login account (admin)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// SeedDefaultRoster inserts the default demo roster, skipping employee
	// codes that already exist. Returns the number of employees created.
	SeedDefaultRoster(ctx context.Context) (int, error)
}
