package fixtures

import (
	"fmt"

	"github.com/worklane/timekeeping-backend-go/internal/domain/employee"
)

// DefaultSeedPassword is the login password for every seeded demo account.
const DefaultSeedPassword = "password123"

// SeedEmployee is one roster entry for the demo seed.
type SeedEmployee struct {
	EmployeeCode string
	FullName     string
	Department   employee.Department
	Position     string
	Email        string
}

// DefaultRoster returns the 15-person demo roster. Codes run EMP001..EMP015
// and emails follow empNNN@company.com.
func DefaultRoster() []SeedEmployee {
	people := []struct {
		name string
		dept employee.Department
		pos  string
	}{
		{"Nguyễn Văn An", employee.DepartmentEngineering, "Senior Full Stack Developer"},
		{"Trần Thị Bình", employee.DepartmentQA, "QA Team Lead"},
		{"Lê Hoàng Cường", employee.DepartmentDevOps, "DevOps Engineer"},
		{"Phạm Thị Dung", employee.DepartmentProduct, "Product Manager"},
		{"Hoàng Văn Em", employee.DepartmentEngineering, "Frontend Developer"},
		{"Ngô Thị Phương", employee.DepartmentDesign, "UI/UX Designer"},
		{"Vũ Văn Giang", employee.DepartmentEngineering, "Backend Developer"},
		{"Đỗ Thị Hương", employee.DepartmentQA, "QA Engineer"},
		{"Bùi Văn Inh", employee.DepartmentDevOps, "System Administrator"},
		{"Lý Thị Kim", employee.DepartmentMarketing, "Digital Marketing Specialist"},
		{"Trương Văn Long", employee.DepartmentEngineering, "Mobile Developer"},
		{"Phan Thị Mai", employee.DepartmentHR, "HR Manager"},
		{"Đinh Văn Nam", employee.DepartmentSales, "Sales Manager"},
		{"Lâm Thị Oanh", employee.DepartmentEngineering, "Data Engineer"},
		{"Tạ Văn Phước", employee.DepartmentProduct, "Technical Product Manager"},
	}

	roster := make([]SeedEmployee, 0, len(people))
	for i, p := range people {
		roster = append(roster, SeedEmployee{
			EmployeeCode: fmt.Sprintf("EMP%03d", i+1),
			FullName:     p.name,
			Department:   p.dept,
			Position:     p.pos,
			Email:        fmt.Sprintf("emp%03d@company.com", i+1),
		})
	}
	return roster
}
