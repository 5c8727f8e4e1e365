package recruitmentstore

import (
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.JobOffer) (id string, err error)
	GetByID(id string) (rec *dbmodels.JobOffer, err error)
	Update(id string, updMap map[string]interface{}) error
	List() (list []dbmodels.JobOffer, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobOffer) (id string, err error) {
	err = i.db.
		Omit("HiringManager").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.JobOffer, error) {
	rec := dbmodels.JobOffer{}
	err := i.db.
		Where("id = ?", id).
		Preload("HiringManager").
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
		Model(&dbmodels.JobOffer{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List() (list []dbmodels.JobOffer, err error) {
	list = []dbmodels.JobOffer{}
	err = i.db.
		Order("created_at DESC").
		Preload("HiringManager").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
