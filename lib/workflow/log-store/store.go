package workflowlogstore

import (
	dbmodels "hrms-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.WorkflowTransitionLog) (id string, err error)
	ListByInstance(instanceID string) (list []dbmodels.WorkflowTransitionLog, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WorkflowTransitionLog) (id string, err error) {
	err = i.db.
		Omit("Actor").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByInstance(instanceID string) (list []dbmodels.WorkflowTransitionLog, err error) {
	list = []dbmodels.WorkflowTransitionLog{}
	err = i.db.
		Where("instance_id = ?", instanceID).
		Order("created_at ASC").
		Preload("Actor").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
