package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/worklane/timekeeping-backend-go/internal/domain/employee"
	"github.com/worklane/timekeeping-backend-go/internal/domain/user"
	"github.com/worklane/timekeeping-backend-go/internal/fixtures"
	"github.com/worklane/timekeeping-backend-go/internal/pkg/database"
	"github.com/worklane/timekeeping-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	userRepository user.UserRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		UserRepository:     userRepository,
	}
}

// GetMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetMyProfile(ctx context.Context) (employee.EmployeeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByEmployeeCode(ctx, req.EmployeeCode); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}

	if _, err := s.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return employee.EmployeeResponse{}, user.ErrUserEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		hash := string(passwordHash)
		newUser, err := s.UserRepository.Create(txCtx, user.User{
			Email:        req.Email,
			PasswordHash: &hash,
			Role:         user.RoleEmployee,
		})
		if err != nil {
			return err
		}

		created, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			UserID:       &newUser.ID,
			EmployeeCode: req.EmployeeCode,
			FullName:     req.FullName,
			Department:   employee.Department(req.Department),
			Position:     req.Position,
			HireDate:     time.Now().UTC(),
			IsActive:     true,
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// SeedDefaultRoster implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SeedDefaultRoster(ctx context.Context) (int, error) {
	// One hash shared by all seeded accounts, bcrypt is too slow to run
	// fifteen times for a demo seed.
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(fixtures.DefaultSeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash seed password: %w", err)
	}
	hash := string(passwordHash)

	createdCount := 0
	for _, seed := range fixtures.DefaultRoster() {
		if _, err := s.EmployeeRepository.GetByEmployeeCode(ctx, seed.EmployeeCode); err == nil {
			continue
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return createdCount, fmt.Errorf("failed to check employee code: %w", err)
		}

		seed := seed
		err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)

			newUser, err := s.UserRepository.Create(txCtx, user.User{
				Email:        seed.Email,
				PasswordHash: &hash,
				Role:         user.RoleEmployee,
			})
			if err != nil {
				return err
			}

			_, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
				UserID:       &newUser.ID,
				EmployeeCode: seed.EmployeeCode,
				FullName:     seed.FullName,
				Department:   seed.Department,
				Position:     seed.Position,
				HireDate:     time.Now().UTC(),
				IsActive:     true,
			})
			return err
		})
		if err != nil {
			return createdCount, fmt.Errorf("failed to seed %s: %w", seed.EmployeeCode, err)
		}
		createdCount++
	}

	return createdCount, nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		FullName:     emp.FullName,
		Department:   emp.Department.DisplayName(),
		Position:     emp.Position,
		HireDate:     emp.HireDate.Format("2006-01-02"),
		IsActive:     emp.IsActive,
	}
}
