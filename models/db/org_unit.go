package dbmodels

import "hrms-backend/models"

type OrgUnit struct {
	BaseModel
	Code     string             `gorm:"type:varchar(50);uniqueIndex"`
	Name     string             `gorm:"type:varchar(255)"`
	UnitType models.OrgUnitType `gorm:"type:varchar(30)"`
	ParentID *string            `gorm:"type:varchar(36)"`
	Parent   *OrgUnit           `gorm:"foreignKey:ParentID"`
	HeadID   *string            `gorm:"type:varchar(36)"`
	Head     *Employee          `gorm:"foreignKey:HeadID"`
}
