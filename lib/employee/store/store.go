package employeestore

import (
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(id string) (rec *dbmodels.Employee, err error)
	// GetForResolution loads the employee with every link the approver
	// resolver walks: supervisor, unit heads and the work location.
	GetForResolution(id string) (rec *dbmodels.Employee, err error)
	GetByUser(userID string) (rec *dbmodels.Employee, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List() (list []dbmodels.Employee, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	err = i.db.
		Omit("User", "Supervisor", "Department", "Directorate", "Division", "WorkLocation").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("id = ?", id).
		Preload("Supervisor").
		Preload("Department").
		Preload("Division").
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

func (i impl) GetForResolution(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("id = ?", id).
		Preload("Supervisor").
		Preload("Department.Head").
		Preload("Directorate.Head").
		Preload("Division.Head").
		Preload("WorkLocation.Head").
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

func (i impl) GetByUser(userID string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("user_id = ?", userID).
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
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Employee{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List() (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Order("staff_number ASC").
		Preload("Supervisor").
		Preload("Department").
		Preload("Division").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
