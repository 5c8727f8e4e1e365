package dbmodels

import (
	"hrms-backend/models"
	"time"
)

type LeaveType struct {
	BaseModel
	Code        string `gorm:"type:varchar(30);uniqueIndex"`
	Name        string `gorm:"type:varchar(150)"`
	DaysPerYear int
	IsPaid      bool
}

type LeaveRequest struct {
	BaseModel
	EmployeeID  string `gorm:"type:varchar(36);index"`
	Employee    *Employee
	LeaveTypeID string `gorm:"type:varchar(36)"`
	LeaveType   *LeaveType
	StartDate   time.Time
	EndDate     time.Time
	Days        int
	Reason      string
	Status      models.LeaveStatus `gorm:"type:varchar(20);index"`
}
