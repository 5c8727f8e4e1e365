package workflowdelegationstore

import (
	"time"

	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.ApprovalDelegation) (id string, err error)
	GetByID(id string) (rec *dbmodels.ApprovalDelegation, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByDelegator(delegatorID string) (list []dbmodels.ApprovalDelegation, err error)
	// ListActiveForDelegate returns delegations that route the delegators'
	// pending approvals to the given user on the given day.
	ListActiveForDelegate(delegateID string, day time.Time) (list []dbmodels.ApprovalDelegation, err error)
	// FindActive reports an active delegation from delegator to delegate on the given day.
	FindActive(delegatorID, delegateID string, day time.Time) (rec *dbmodels.ApprovalDelegation, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApprovalDelegation) (id string, err error) {
	err = i.db.
		Omit("Delegator", "Delegate").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ApprovalDelegation, error) {
	rec := dbmodels.ApprovalDelegation{}
	err := i.db.
		Where("id = ?", id).
		Preload("Delegator").
		Preload("Delegate").
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
		Model(&dbmodels.ApprovalDelegation{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByDelegator(delegatorID string) (list []dbmodels.ApprovalDelegation, err error) {
	list = []dbmodels.ApprovalDelegation{}
	err = i.db.
		Where("delegator_id = ?", delegatorID).
		Order("created_at DESC").
		Preload("Delegate").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListActiveForDelegate(delegateID string, day time.Time) (list []dbmodels.ApprovalDelegation, err error) {
	list = []dbmodels.ApprovalDelegation{}
	err = i.db.
		Where("delegate_id = ?", delegateID).
		Where("is_active = ?", true).
		Where("start_date <= ?", day).
		Where("end_date >= ?", day).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) FindActive(delegatorID, delegateID string, day time.Time) (*dbmodels.ApprovalDelegation, error) {
	rec := dbmodels.ApprovalDelegation{}
	err := i.db.
		Where("delegator_id = ?", delegatorID).
		Where("delegate_id = ?", delegateID).
		Where("is_active = ?", true).
		Where("start_date <= ?", day).
		Where("end_date >= ?", day).
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
