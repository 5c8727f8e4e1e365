package workflowdefinitionstore

import (
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.WorkflowDefinition) (id string, err error)
	GetByID(id string) (rec *dbmodels.WorkflowDefinition, err error)
	GetByCode(code string, version int) (rec *dbmodels.WorkflowDefinition, err error)
	// GetActiveByCode returns the active definition with the highest version.
	GetActiveByCode(code string) (rec *dbmodels.WorkflowDefinition, err error)
	List() (list []dbmodels.WorkflowDefinition, err error)
	ListStates(workflowID string) (list []dbmodels.WorkflowState, err error)
	CreateState(rec dbmodels.WorkflowState) (id string, err error)
	CreateLevel(rec dbmodels.ApprovalLevel) (id string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WorkflowDefinition) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.WorkflowDefinition, error) {
	rec := dbmodels.WorkflowDefinition{}
	err := i.db.
		Where("id = ?", id).
		Preload("Levels", func(db *gorm.DB) *gorm.DB {
			return db.Order("level ASC")
		}).
		Preload("States").
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

func (i impl) GetByCode(code string, version int) (*dbmodels.WorkflowDefinition, error) {
	rec := dbmodels.WorkflowDefinition{}
	err := i.db.
		Where("code = ?", code).
		Where("version = ?", version).
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

func (i impl) GetActiveByCode(code string) (*dbmodels.WorkflowDefinition, error) {
	rec := dbmodels.WorkflowDefinition{}
	err := i.db.
		Where("code = ?", code).
		Where("is_active = ?", true).
		Order("version DESC").
		Preload("Levels", func(db *gorm.DB) *gorm.DB {
			return db.Order("level ASC")
		}).
		Preload("States").
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

func (i impl) List() (list []dbmodels.WorkflowDefinition, err error) {
	list = []dbmodels.WorkflowDefinition{}
	err = i.db.
		Order("code ASC, version DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListStates(workflowID string) (list []dbmodels.WorkflowState, err error) {
	list = []dbmodels.WorkflowState{}
	err = i.db.
		Where("workflow_id = ?", workflowID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreateState(rec dbmodels.WorkflowState) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateLevel(rec dbmodels.ApprovalLevel) (id string, err error) {
	err = i.db.
		Omit("ApproverUser").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}
