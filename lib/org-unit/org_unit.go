package orgunit

import (
	"hrms-backend/db"
	orgunitstore "hrms-backend/lib/org-unit/store"
	orgapimodels "hrms-backend/models/api/org"
	dbmodels "hrms-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(data orgapimodels.OrgUnitData) (id string, hMsg string, err error)
	Update(id string, data orgapimodels.OrgUnitData) (hMsg string, err error)
	GetByID(id string) (view *orgapimodels.OrgUnitView, err error)
	List() (list []orgapimodels.OrgUnitView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB)
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return &handler{
		store: orgunitstore.NewInstance(tx),
	}
}

type handler struct {
	store orgunitstore.Provider
}

func (h handler) Create(data orgapimodels.OrgUnitData) (string, string, error) {
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	existing, err := h.store.GetByCode(data.Code)
	if err != nil {
		return "", "", err
	}
	if existing != nil {
		return "", "An org unit with this code already exists", nil
	}
	rec := dbmodels.OrgUnit{
		Code:     data.Code,
		Name:     data.Name,
		UnitType: data.UnitType,
	}
	if data.ParentID != "" {
		parent, err := h.store.GetByID(data.ParentID)
		if err != nil {
			return "", "", err
		}
		if parent == nil {
			return "", "Parent org unit not found", nil
		}
		rec.ParentID = &data.ParentID
	}
	if data.HeadID != "" {
		rec.HeadID = &data.HeadID
	}
	id, err := h.store.Create(rec)
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

func (h handler) Update(id string, data orgapimodels.OrgUnitData) (string, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "Org unit not found", nil
	}
	updMap := map[string]interface{}{}
	if data.Name != "" {
		updMap["name"] = data.Name
	}
	if data.UnitType != "" {
		updMap["unit_type"] = data.UnitType
	}
	if data.ParentID != "" {
		if data.ParentID == id {
			return "An org unit can not be its own parent", nil
		}
		updMap["parent_id"] = data.ParentID
	}
	if data.HeadID != "" {
		updMap["head_id"] = data.HeadID
	}
	return "", h.store.Update(id, updMap)
}

func (h handler) GetByID(id string) (*orgapimodels.OrgUnitView, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := orgapimodels.OrgUnitConvert(*rec)
	return &view, nil
}

func (h handler) List() ([]orgapimodels.OrgUnitView, error) {
	recs, err := h.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]orgapimodels.OrgUnitView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, orgapimodels.OrgUnitConvert(rec))
	}
	return list, nil
}
