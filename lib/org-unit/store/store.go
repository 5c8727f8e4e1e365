package orgunitstore

import (
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.OrgUnit) (id string, err error)
	GetByID(id string) (rec *dbmodels.OrgUnit, err error)
	GetByCode(code string) (rec *dbmodels.OrgUnit, err error)
	Update(id string, updMap map[string]interface{}) error
	List() (list []dbmodels.OrgUnit, err error)
	ListByType(unitType models.OrgUnitType) (list []dbmodels.OrgUnit, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.OrgUnit) (id string, err error) {
	err = i.db.
		Omit("Parent", "Head").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.OrgUnit, error) {
	rec := dbmodels.OrgUnit{}
	err := i.db.
		Where("id = ?", id).
		Preload("Parent").
		Preload("Head").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByCode(code string) (*dbmodels.OrgUnit, error) {
	rec := dbmodels.OrgUnit{}
	err := i.db.
		Where("code = ?", code).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.OrgUnit{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List() (list []dbmodels.OrgUnit, err error) {
	list = []dbmodels.OrgUnit{}
	err = i.db.
		Order("code ASC").
		Preload("Head").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByType(unitType models.OrgUnitType) (list []dbmodels.OrgUnit, err error) {
	list = []dbmodels.OrgUnit{}
	err = i.db.
		Where("unit_type = ?", unitType).
		Order("code ASC").
		Preload("Head").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
