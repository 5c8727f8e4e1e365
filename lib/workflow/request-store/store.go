package workflowrequeststore

import (
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.ApprovalRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.ApprovalRequest, err error)
	// UpdateWhereStatus applies updMap only when the request still has the
	// expected status and reports whether a row was changed. A zero result
	// means a concurrent actor transitioned the request first.
	UpdateWhereStatus(id string, expected models.RequestStatus, updMap map[string]interface{}) (updated bool, err error)
	ListByInstance(instanceID string) (list []dbmodels.ApprovalRequest, err error)
	SkipPendingByInstance(instanceID, comment string) error
	ListPendingForUser(userID string, delegatorIDs []string, roleCodes []string) (list []dbmodels.ApprovalRequest, err error)
	ListPendingOlderThanHours(hours int) (list []dbmodels.ApprovalRequest, err error)
	ListPendingUnassigned() (list []dbmodels.ApprovalRequest, err error)
	CountPending() (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApprovalRequest) (id string, err error) {
	err = i.db.
		Omit("Instance", "AssignedTo", "RespondedBy").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ApprovalRequest, error) {
	rec := dbmodels.ApprovalRequest{}
	err := i.db.
		Where("id = ?", id).
		Preload("Instance").
		Preload("Instance.Workflow").
		Preload("AssignedTo").
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

func (i impl) UpdateWhereStatus(id string, expected models.RequestStatus, updMap map[string]interface{}) (updated bool, err error) {
	tx := i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Where("id = ?", id).
		Where("status = ?", expected).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) ListByInstance(instanceID string) (list []dbmodels.ApprovalRequest, err error) {
	list = []dbmodels.ApprovalRequest{}
	err = i.db.
		Where("instance_id = ?", instanceID).
		Order("level_number ASC, created_at ASC").
		Preload("AssignedTo").
		Preload("RespondedBy").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SkipPendingByInstance(instanceID, comment string) error {
	err := i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Where("instance_id = ?", instanceID).
		Where("status = ?", models.RequestPending).
		Updates(map[string]interface{}{
			"status":   models.RequestSkipped,
			"comments": comment,
		}).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListPendingForUser(userID string, delegatorIDs []string, roleCodes []string) (list []dbmodels.ApprovalRequest, err error) {
	list = []dbmodels.ApprovalRequest{}
	assignment := i.db.
		Where("approval_requests.assigned_to_id = ?", userID)
	if len(delegatorIDs) > 0 {
		assignment = assignment.Or("approval_requests.assigned_to_id IN ?", delegatorIDs)
	}
	if len(roleCodes) > 0 {
		assignment = assignment.Or("approval_requests.assigned_to_id IS NULL AND approval_requests.assigned_role IN ?", roleCodes)
	}
	err = i.db.
		Joins("JOIN workflow_instances ON workflow_instances.id = approval_requests.instance_id").
		Where("approval_requests.status = ?", models.RequestPending).
		Where("workflow_instances.status = ?", models.InstanceActive).
		Where(assignment).
		Order("approval_requests.created_at ASC").
		Preload("Instance").
		Preload("Instance.Workflow").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPendingOlderThanHours(hours int) (list []dbmodels.ApprovalRequest, err error) {
	list = []dbmodels.ApprovalRequest{}
	err = i.db.
		Joins("JOIN workflow_instances ON workflow_instances.id = approval_requests.instance_id").
		Where("approval_requests.status = ?", models.RequestPending).
		Where("workflow_instances.status = ?", models.InstanceActive).
		Where("approval_requests.created_at < now() - make_interval(hours => ?)", hours).
		Preload("AssignedTo").
		Preload("Instance").
		Preload("Instance.Workflow").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPendingUnassigned() (list []dbmodels.ApprovalRequest, err error) {
	list = []dbmodels.ApprovalRequest{}
	err = i.db.
		Joins("JOIN workflow_instances ON workflow_instances.id = approval_requests.instance_id").
		Where("approval_requests.status = ?", models.RequestPending).
		Where("workflow_instances.status = ?", models.InstanceActive).
		Where("approval_requests.assigned_to_id IS NULL").
		Where("approval_requests.assigned_role = ''").
		Preload("Instance").
		Preload("Instance.Workflow").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountPending() (count int64, err error) {
	err = i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Where("status = ?", models.RequestPending).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
