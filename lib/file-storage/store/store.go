package filestoragestore

import (
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.EmployeeDocument) (id string, err error)
	GetByID(id string) (rec *dbmodels.EmployeeDocument, err error)
	Delete(id string) error
	ListByEmployee(employeeID string) (list []dbmodels.EmployeeDocument, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EmployeeDocument) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.EmployeeDocument, error) {
	rec := dbmodels.EmployeeDocument{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.EmployeeDocument{}).
		Error
}

func (i impl) ListByEmployee(employeeID string) (list []dbmodels.EmployeeDocument, err error) {
	list = []dbmodels.EmployeeDocument{}
	err = i.db.
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
