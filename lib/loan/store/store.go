package loanstore

import (
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.LoanAccount) (id string, err error)
	GetByID(id string) (rec *dbmodels.LoanAccount, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByEmployee(employeeID string) (list []dbmodels.LoanAccount, err error)
	List() (list []dbmodels.LoanAccount, err error)
	ReplaceSchedule(loanID string, entries []dbmodels.LoanScheduleEntry) error
	ListSchedule(loanID string) (list []dbmodels.LoanScheduleEntry, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.LoanAccount) (id string, err error) {
	err = i.db.
		Omit("Employee", "Schedule").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.LoanAccount, error) {
	rec := dbmodels.LoanAccount{}
	err := i.db.
		Where("id = ?", id).
		Preload("Employee").
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
		Model(&dbmodels.LoanAccount{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByEmployee(employeeID string) (list []dbmodels.LoanAccount, err error) {
	list = []dbmodels.LoanAccount{}
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

func (i impl) List() (list []dbmodels.LoanAccount, err error) {
	list = []dbmodels.LoanAccount{}
	err = i.db.
		Order("created_at DESC").
		Preload("Employee").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ReplaceSchedule(loanID string, entries []dbmodels.LoanScheduleEntry) error {
	err := i.db.
		Where("loan_id = ?", loanID).
		Delete(&dbmodels.LoanScheduleEntry{}).
		Error
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	for idx := range entries {
		entries[idx].LoanID = loanID
	}
	err = i.db.
		Create(&entries).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListSchedule(loanID string) (list []dbmodels.LoanScheduleEntry, err error) {
	list = []dbmodels.LoanScheduleEntry{}
	err = i.db.
		Where("loan_id = ?", loanID).
		Order("sequence ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
