package dbmodels

import "hrms-backend/models"

type PayrollRun struct {
	BaseModel
	PeriodYear  int    `gorm:"index:idx_payroll_period,unique"`
	PeriodMonth int    `gorm:"index:idx_payroll_period,unique"`
	Description string `gorm:"type:varchar(255)"`
	OwnerID     string `gorm:"type:varchar(36)"`
	Owner       *Employee `gorm:"foreignKey:OwnerID"`
	GrossTotal  float64   `gorm:"type:numeric(16,2)"`
	NetTotal    float64   `gorm:"type:numeric(16,2)"`
	Status      models.PayrollStatus `gorm:"type:varchar(20);index"`
}
