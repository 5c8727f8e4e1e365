package dbmodels

import (
	"hrms-backend/models"
	"time"
)

type JobOffer struct {
	BaseModel
	CandidateName   string `gorm:"type:varchar(255)"`
	CandidateEmail  string `gorm:"type:varchar(255)"`
	JobTitle        string `gorm:"type:varchar(150)"`
	Grade           string `gorm:"type:varchar(30)"`
	AnnualSalary    float64 `gorm:"type:numeric(14,2)"`
	StartDate       time.Time
	HiringManagerID string    `gorm:"type:varchar(36)"`
	HiringManager   *Employee `gorm:"foreignKey:HiringManagerID"`
	Status          models.OfferStatus `gorm:"type:varchar(20);index"`
}
