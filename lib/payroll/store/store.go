package payrollstore

import (
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.PayrollRun) (id string, err error)
	GetByID(id string) (rec *dbmodels.PayrollRun, err error)
	GetByPeriod(year, month int) (rec *dbmodels.PayrollRun, err error)
	Update(id string, updMap map[string]interface{}) error
	List() (list []dbmodels.PayrollRun, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PayrollRun) (id string, err error) {
	err = i.db.
		Omit("Owner").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.PayrollRun, error) {
	rec := dbmodels.PayrollRun{}
	err := i.db.
		Where("id = ?", id).
		Preload("Owner").
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

func (i impl) GetByPeriod(year, month int) (*dbmodels.PayrollRun, error) {
	rec := dbmodels.PayrollRun{}
	err := i.db.
		Where("period_year = ?", year).
		Where("period_month = ?", month).
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
		Model(&dbmodels.PayrollRun{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List() (list []dbmodels.PayrollRun, err error) {
	list = []dbmodels.PayrollRun{}
	err = i.db.
		Order("period_year DESC, period_month DESC").
		Preload("Owner").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
