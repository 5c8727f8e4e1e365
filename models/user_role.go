package models

type UserRole string

const (
	AdminRole    UserRole = "ADMIN_ROLE"
	HRRole       UserRole = "HR_ROLE"
	EmployeeRole UserRole = "EMPLOYEE_ROLE"
)

var roleHumanName = map[UserRole]string{
	AdminRole:    "Administrator",
	HRRole:       "HR officer",
	EmployeeRole: "Employee",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == AdminRole
}

const SystemUser = "System"
