package dbmodels

import (
	"hrms-backend/models"
	"time"
)

type LoanAccount struct {
	BaseModel
	EmployeeID        string `gorm:"type:varchar(36);index"`
	Employee          *Employee
	LoanType          string  `gorm:"type:varchar(50)"`
	Principal         float64 `gorm:"type:numeric(14,2)"`
	AnnualRatePercent float64 `gorm:"type:numeric(6,3)"`
	TermMonths        int
	Purpose           string
	Status            models.LoanStatus `gorm:"type:varchar(20);index"`
	DisbursedAt       *time.Time
	Schedule          []LoanScheduleEntry `gorm:"foreignKey:LoanID"`
}

type LoanScheduleEntry struct {
	BaseModel
	LoanID    string `gorm:"type:varchar(36);index:idx_schedule_loan_seq,unique"`
	Sequence  int    `gorm:"index:idx_schedule_loan_seq,unique"`
	DueDate   time.Time
	Payment   float64 `gorm:"type:numeric(14,2)"`
	Interest  float64 `gorm:"type:numeric(14,2)"`
	Principal float64 `gorm:"type:numeric(14,2)"`
	Balance   float64 `gorm:"type:numeric(14,2)"`
}
