package roleassignment

import (
	"hrms-backend/db"
	roleassignmentstore "hrms-backend/lib/role-assignment/store"
	orgapimodels "hrms-backend/models/api/org"
	dbmodels "hrms-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(data orgapimodels.RoleAssignmentData) (id string, hMsg string, err error)
	Deactivate(id string) (hMsg string, err error)
	List() (list []orgapimodels.RoleAssignmentView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB)
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return &handler{
		store: roleassignmentstore.NewInstance(tx),
	}
}

type handler struct {
	store roleassignmentstore.Provider
}

func (h handler) Create(data orgapimodels.RoleAssignmentData) (string, string, error) {
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	rec := dbmodels.RoleAssignment{
		RoleCode: data.RoleCode,
		UserID:   data.UserID,
		Scope:    data.Scope,
		IsActive: true,
	}
	if data.DivisionID != "" {
		divisionID := data.DivisionID
		rec.DivisionID = &divisionID
	}
	id, err := h.store.Create(rec)
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

func (h handler) Deactivate(id string) (string, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "Role assignment not found", nil
	}
	return "", h.store.Update(id, map[string]interface{}{
		"is_active": false,
	})
}

func (h handler) List() ([]orgapimodels.RoleAssignmentView, error) {
	recs, err := h.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]orgapimodels.RoleAssignmentView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, orgapimodels.RoleAssignmentConvert(rec))
	}
	return list, nil
}
