package leavestore

import (
	"time"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	CreateType(rec dbmodels.LeaveType) (id string, err error)
	GetTypeByID(id string) (rec *dbmodels.LeaveType, err error)
	GetTypeByCode(code string) (rec *dbmodels.LeaveType, err error)
	ListTypes() (list []dbmodels.LeaveType, err error)

	Create(rec dbmodels.LeaveRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.LeaveRequest, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByEmployee(employeeID string) (list []dbmodels.LeaveRequest, err error)
	List() (list []dbmodels.LeaveRequest, err error)
	// SumApprovedDays totals approved leave days of the given type starting
	// within the given year.
	SumApprovedDays(employeeID, leaveTypeID string, year int) (days int, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateType(rec dbmodels.LeaveType) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetTypeByID(id string) (*dbmodels.LeaveType, error) {
	rec := dbmodels.LeaveType{}
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

func (i impl) GetTypeByCode(code string) (*dbmodels.LeaveType, error) {
	rec := dbmodels.LeaveType{}
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

func (i impl) ListTypes() (list []dbmodels.LeaveType, err error) {
	list = []dbmodels.LeaveType{}
	err = i.db.
		Order("code ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Create(rec dbmodels.LeaveRequest) (id string, err error) {
	err = i.db.
		Omit("Employee", "LeaveType").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.LeaveRequest, error) {
	rec := dbmodels.LeaveRequest{}
	err := i.db.
		Where("id = ?", id).
		Preload("Employee").
		Preload("LeaveType").
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
		Model(&dbmodels.LeaveRequest{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByEmployee(employeeID string) (list []dbmodels.LeaveRequest, err error) {
	list = []dbmodels.LeaveRequest{}
	err = i.db.
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Preload("LeaveType").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) List() (list []dbmodels.LeaveRequest, err error) {
	list = []dbmodels.LeaveRequest{}
	err = i.db.
		Order("created_at DESC").
		Preload("Employee").
		Preload("LeaveType").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SumApprovedDays(employeeID, leaveTypeID string, year int) (int, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	var days *int
	err := i.db.
		Model(&dbmodels.LeaveRequest{}).
		Select("SUM(days)").
		Where("employee_id = ?", employeeID).
		Where("leave_type_id = ?", leaveTypeID).
		Where("status = ?", models.LeaveApproved).
		Where("start_date >= ? AND start_date < ?", from, to).
		Scan(&days).
		Error
	if err != nil {
		return 0, err
	}
	if days == nil {
		return 0, nil
	}
	return *days, nil
}
