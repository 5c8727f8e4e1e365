package payrollapimodels

import (
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
)

type PayrollRunData struct {
	PeriodYear  int     `json:"period_year"`
	PeriodMonth int     `json:"period_month"`
	Description string  `json:"description"`
	OwnerID     string  `json:"owner_id"`
	GrossTotal  float64 `json:"gross_total"`
	NetTotal    float64 `json:"net_total"`
}

func (r PayrollRunData) Validate() error {
	if r.PeriodYear < 2000 {
		return errors.New("period year is invalid")
	}
	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		return errors.New("period month must be between 1 and 12")
	}
	if r.OwnerID == "" {
		return errors.New("owner employee id is required")
	}
	return nil
}

type PayrollRunView struct {
	PayrollRunData
	ID        string               `json:"id"`
	OwnerName string               `json:"owner_name,omitempty"`
	Status    models.PayrollStatus `json:"status"`
}

func PayrollRunConvert(rec dbmodels.PayrollRun) PayrollRunView {
	view := PayrollRunView{
		PayrollRunData: PayrollRunData{
			PeriodYear:  rec.PeriodYear,
			PeriodMonth: rec.PeriodMonth,
			Description: rec.Description,
			OwnerID:     rec.OwnerID,
			GrossTotal:  rec.GrossTotal,
			NetTotal:    rec.NetTotal,
		},
		ID:     rec.ID,
		Status: rec.Status,
	}
	if rec.Owner != nil {
		view.OwnerName = rec.Owner.GetFullName()
	}
	return view
}
