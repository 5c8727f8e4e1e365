package dbmodels

import (
	"fmt"
	"hrms-backend/models"
	"time"
)

type Employee struct {
	BaseModel
	StaffNumber    string  `gorm:"type:varchar(30);uniqueIndex"`
	FirstName      string  `gorm:"type:varchar(150)"`
	LastName       string  `gorm:"type:varchar(150)"`
	UserID         *string `gorm:"type:varchar(36)"`
	User           *User
	SupervisorID   *string   `gorm:"type:varchar(36)"`
	Supervisor     *Employee `gorm:"foreignKey:SupervisorID"`
	DepartmentID   *string   `gorm:"type:varchar(36)"`
	Department     *OrgUnit  `gorm:"foreignKey:DepartmentID"`
	DirectorateID  *string   `gorm:"type:varchar(36)"`
	Directorate    *OrgUnit  `gorm:"foreignKey:DirectorateID"`
	DivisionID     *string   `gorm:"type:varchar(36)"`
	Division       *OrgUnit  `gorm:"foreignKey:DivisionID"`
	WorkLocationID *string   `gorm:"type:varchar(36)"`
	WorkLocation   *OrgUnit  `gorm:"foreignKey:WorkLocationID"`
	JobTitle       string    `gorm:"type:varchar(150)"`
	Grade          string    `gorm:"type:varchar(30)"`
	HireDate       time.Time
	Status         models.EmploymentStatus `gorm:"type:varchar(20)"`
	AnnualLeaveDue int
}

func (r Employee) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
