package workflowinstancestore

import (
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.WorkflowInstance) (id string, err error)
	GetByID(id string) (rec *dbmodels.WorkflowInstance, err error)
	GetActiveByObject(workflowID, objectType, objectID string) (rec *dbmodels.WorkflowInstance, err error)
	GetActiveByObjectAny(objectType, objectID string) (rec *dbmodels.WorkflowInstance, err error)
	GetLatestByObject(objectType, objectID string) (rec *dbmodels.WorkflowInstance, err error)
	Update(id string, updMap map[string]interface{}) error
	CountByStatus(status models.InstanceStatus) (count int64, err error)
	StatsByWorkflow() (rows []WorkflowStatRow, err error)
}

type WorkflowStatRow struct {
	WorkflowCode string
	Status       models.InstanceStatus
	Count        int64
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WorkflowInstance) (id string, err error) {
	err = i.db.
		Omit("Workflow", "StartedBy").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.WorkflowInstance, error) {
	rec := dbmodels.WorkflowInstance{}
	err := i.db.
		Where("id = ?", id).
		Preload("Workflow").
		Preload("StartedBy").
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

func (i impl) GetActiveByObject(workflowID, objectType, objectID string) (*dbmodels.WorkflowInstance, error) {
	rec := dbmodels.WorkflowInstance{}
	err := i.db.
		Where("workflow_id = ?", workflowID).
		Where("object_type = ?", objectType).
		Where("object_id = ?", objectID).
		Where("status = ?", models.InstanceActive).
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

func (i impl) GetActiveByObjectAny(objectType, objectID string) (*dbmodels.WorkflowInstance, error) {
	rec := dbmodels.WorkflowInstance{}
	err := i.db.
		Where("object_type = ?", objectType).
		Where("object_id = ?", objectID).
		Where("status = ?", models.InstanceActive).
		Preload("Workflow").
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

func (i impl) GetLatestByObject(objectType, objectID string) (*dbmodels.WorkflowInstance, error) {
	rec := dbmodels.WorkflowInstance{}
	err := i.db.
		Where("object_type = ?", objectType).
		Where("object_id = ?", objectID).
		Order("created_at DESC").
		Preload("Workflow").
		Preload("StartedBy").
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
		Model(&dbmodels.WorkflowInstance{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) CountByStatus(status models.InstanceStatus) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.WorkflowInstance{}).
		Where("status = ?", status).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) StatsByWorkflow() (rows []WorkflowStatRow, err error) {
	rows = []WorkflowStatRow{}
	err = i.db.
		Model(&dbmodels.WorkflowInstance{}).
		Select("workflow_definitions.code AS workflow_code, workflow_instances.status AS status, count(*) AS count").
		Joins("JOIN workflow_definitions ON workflow_definitions.id = workflow_instances.workflow_id").
		Group("workflow_definitions.code, workflow_instances.status").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
