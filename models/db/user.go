package dbmodels

import (
	"fmt"
	"hrms-backend/models"
	"time"
)

type User struct {
	BaseModel
	Password    string `gorm:"type:varchar(128)"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	IsActive    bool
	PhoneNumber string          `gorm:"type:varchar(15)"`
	Role        models.UserRole `gorm:"type:varchar(50)"`
	LastLogin   time.Time
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
