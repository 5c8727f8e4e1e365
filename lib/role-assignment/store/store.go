package roleassignmentstore

import (
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.RoleAssignment) (id string, err error)
	GetByID(id string) (rec *dbmodels.RoleAssignment, err error)
	Update(id string, updMap map[string]interface{}) error
	// FindScoped returns the oldest active assignment of the role scoped to
	// the given division.
	FindScoped(roleCode, divisionID string) (rec *dbmodels.RoleAssignment, err error)
	// FindGlobal returns the oldest active global assignment of the role.
	FindGlobal(roleCode string) (rec *dbmodels.RoleAssignment, err error)
	// FindAny returns the oldest active assignment of the role regardless of scope.
	FindAny(roleCode string) (rec *dbmodels.RoleAssignment, err error)
	ListByRole(roleCode string) (list []dbmodels.RoleAssignment, err error)
	ListRoleCodesForUser(userID string) (codes []string, err error)
	List() (list []dbmodels.RoleAssignment, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RoleAssignment) (id string, err error) {
	err = i.db.
		Omit("User", "Division").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.RoleAssignment, error) {
	rec := dbmodels.RoleAssignment{}
	err := i.db.
		Where("id = ?", id).
		Preload("User").
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.RoleAssignment{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) FindScoped(roleCode, divisionID string) (*dbmodels.RoleAssignment, error) {
	rec := dbmodels.RoleAssignment{}
	err := i.db.
		Where("role_code = ?", roleCode).
		Where("is_active = ?", true).
		Where("scope = ?", models.ScopeDivision).
		Where("division_id = ?", divisionID).
		Order("created_at ASC").
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

func (i impl) FindGlobal(roleCode string) (*dbmodels.RoleAssignment, error) {
	rec := dbmodels.RoleAssignment{}
	err := i.db.
		Where("role_code = ?", roleCode).
		Where("is_active = ?", true).
		Where("scope = ?", models.ScopeGlobal).
		Order("created_at ASC").
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

func (i impl) FindAny(roleCode string) (*dbmodels.RoleAssignment, error) {
	rec := dbmodels.RoleAssignment{}
	err := i.db.
		Where("role_code = ?", roleCode).
		Where("is_active = ?", true).
		Order("created_at ASC").
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

func (i impl) ListByRole(roleCode string) (list []dbmodels.RoleAssignment, err error) {
	list = []dbmodels.RoleAssignment{}
	err = i.db.
		Where("role_code = ?", roleCode).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Preload("User").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListRoleCodesForUser(userID string) (codes []string, err error) {
	codes = []string{}
	err = i.db.
		Model(&dbmodels.RoleAssignment{}).
		Where("user_id = ?", userID).
		Where("is_active = ?", true).
		Distinct().
		Pluck("role_code", &codes).
		Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

func (i impl) List() (list []dbmodels.RoleAssignment, err error) {
	list = []dbmodels.RoleAssignment{}
	err = i.db.
		Order("created_at ASC").
		Preload("User").
		Preload("Division").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
