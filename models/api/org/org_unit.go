package orgapimodels

import (
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
)

type OrgUnitData struct {
	Code     string             `json:"code"`
	Name     string             `json:"name"`
	UnitType models.OrgUnitType `json:"unit_type"`
	ParentID string             `json:"parent_id"`
	HeadID   string             `json:"head_id"`
}

func (r OrgUnitData) Validate() error {
	if r.Code == "" {
		return errors.New("unit code is required")
	}
	if r.Name == "" {
		return errors.New("unit name is required")
	}
	if r.UnitType == "" {
		return errors.New("unit type is required")
	}
	return nil
}

type OrgUnitView struct {
	OrgUnitData
	ID         string `json:"id"`
	TypeHuman  string `json:"type_human"`
	ParentName string `json:"parent_name,omitempty"`
	HeadName   string `json:"head_name,omitempty"`
}

func OrgUnitConvert(rec dbmodels.OrgUnit) OrgUnitView {
	view := OrgUnitView{
		OrgUnitData: OrgUnitData{
			Code:     rec.Code,
			Name:     rec.Name,
			UnitType: rec.UnitType,
		},
		ID:        rec.ID,
		TypeHuman: rec.UnitType.ToHuman(),
	}
	if rec.ParentID != nil {
		view.ParentID = *rec.ParentID
	}
	if rec.Parent != nil {
		view.ParentName = rec.Parent.Name
	}
	if rec.HeadID != nil {
		view.HeadID = *rec.HeadID
	}
	if rec.Head != nil {
		view.HeadName = rec.Head.GetFullName()
	}
	return view
}
