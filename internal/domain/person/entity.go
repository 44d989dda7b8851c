package person

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// DefaultDepartment is the bucket for people created without a department.
const DefaultDepartment = "General"

type Person struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeCode string
	Department   string
	CreatedAt    time.Time
}

// IsManager checks if the person can access organization-wide views.
func (p *Person) IsManager() bool {
	return p.Role == RoleManager
}
