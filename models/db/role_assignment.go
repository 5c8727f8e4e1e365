package dbmodels

import "hrms-backend/models"

// RoleAssignment grants a leadership role to a user, optionally scoped to one division.
type RoleAssignment struct {
	BaseModel
	RoleCode string `gorm:"type:varchar(50);index"`
	UserID   string `gorm:"type:varchar(36)"`
	User     *User
	Scope    models.RoleScope `gorm:"type:varchar(20)"`
	DivisionID *string        `gorm:"type:varchar(36)"`
	Division   *OrgUnit       `gorm:"foreignKey:DivisionID"`
	IsActive   bool
}
