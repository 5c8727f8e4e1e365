package recruitmentapimodels

import (
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type JobOfferData struct {
	CandidateName   string    `json:"candidate_name"`
	CandidateEmail  string    `json:"candidate_email"`
	JobTitle        string    `json:"job_title"`
	Grade           string    `json:"grade"`
	AnnualSalary    float64   `json:"annual_salary"`
	StartDate       time.Time `json:"start_date"`
	HiringManagerID string    `json:"hiring_manager_id"`
}

func (r JobOfferData) Validate() error {
	if r.CandidateName == "" {
		return errors.New("candidate name is required")
	}
	if r.JobTitle == "" {
		return errors.New("job title is required")
	}
	if r.AnnualSalary <= 0 {
		return errors.New("annual salary must be positive")
	}
	if r.HiringManagerID == "" {
		return errors.New("hiring manager id is required")
	}
	return nil
}

type JobOfferView struct {
	JobOfferData
	ID                string             `json:"id"`
	HiringManagerName string             `json:"hiring_manager_name,omitempty"`
	Status            models.OfferStatus `json:"status"`
}

func JobOfferConvert(rec dbmodels.JobOffer) JobOfferView {
	view := JobOfferView{
		JobOfferData: JobOfferData{
			CandidateName:   rec.CandidateName,
			CandidateEmail:  rec.CandidateEmail,
			JobTitle:        rec.JobTitle,
			Grade:           rec.Grade,
			AnnualSalary:    rec.AnnualSalary,
			StartDate:       rec.StartDate,
			HiringManagerID: rec.HiringManagerID,
		},
		ID:     rec.ID,
		Status: rec.Status,
	}
	if rec.HiringManager != nil {
		view.HiringManagerName = rec.HiringManager.GetFullName()
	}
	return view
}
