package employee

import (
	"time"
)

type Employee struct {
	ID           string
	UserID       *string
	EmployeeCode string
	FullName     string
	Department   Department
	Position     string
	HireDate     time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Department string

const (
	DepartmentEngineering Department = "ENGINEERING"
	DepartmentQA          Department = "QA"
	DepartmentDevOps      Department = "DEVOPS"
	DepartmentProduct     Department = "PRODUCT"
	DepartmentDesign      Department = "DESIGN"
	DepartmentMarketing   Department = "MARKETING"
	DepartmentHR          Department = "HR"
	DepartmentSales       Department = "SALES"
)

var departmentDisplayNames = map[Department]string{
	DepartmentEngineering: "Engineering",
	DepartmentQA:          "Quality Assurance",
	DepartmentDevOps:      "DevOps",
	DepartmentProduct:     "Product Management",
	DepartmentDesign:      "UI/UX Design",
	DepartmentMarketing:   "Marketing",
	DepartmentHR:          "Human Resources",
	DepartmentSales:       "Sales",
}

// DisplayName returns the human-readable department name used in reports.
func (d Department) DisplayName() string {
	if name, ok := departmentDisplayNames[d]; ok {
		return name
	}
	return string(d)
}

// IsValid reports whether d is one of the known departments.
func (d Department) IsValid() bool {
	_, ok := departmentDisplayNames[d]
	return ok
}
