package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/worklane/timekeeping-backend-go/internal/domain/employee"
	"github.com/worklane/timekeeping-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	GetMyProfile(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	SeedDefaultRoster(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// GetMyProfile implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.employeeService.GetMyProfile(r.Context())
	if err != nil {
		slog.Error("GetMyProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "employee_code", created.EmployeeCode)
	response.Created(w, "Employee created successfully", created)
}

// SeedDefaultRoster implements EmployeeHandler.
func (h *EmployeeHandlerImpl) SeedDefaultRoster(w http.ResponseWriter, r *http.Request) {
	createdCount, err := h.employeeService.SeedDefaultRoster(r.Context())
	if err != nil {
		slog.Error("SeedDefaultRoster service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Default roster seeded", "created", createdCount)
	response.Created(w, "Default roster seeded", map[string]int{"created": createdCount})
}
