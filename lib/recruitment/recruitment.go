// Package recruitment manages job offers. A submitted offer runs through
// the JOB_OFFER_APPROVAL workflow; an approved offer can be rendered as a
// printable letter and sent to the candidate.
package recruitment

import (
	"fmt"

	"hrms-backend/db"
	pdfexport "hrms-backend/lib/export/pdf"
	recruitmentstore "hrms-backend/lib/recruitment/store"
	workflowengine "hrms-backend/lib/workflow/engine"
	workflowregistry "hrms-backend/lib/workflow/registry"
	workflowresolver "hrms-backend/lib/workflow/resolver"
	"hrms-backend/models"
	recruitmentapimodels "hrms-backend/models/api/recruitment"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ObjectType is the workflow registry key for job offers.
const ObjectType = "JOB_OFFER"

// hiringManagerLookup names the dynamic approver lookup used by the first
// level of the offer workflow. The offer exposes its hiring manager as the
// subject employee, so the lookup only has to return that employee's user.
const hiringManagerLookup = "job_offer_hiring_manager"

type Provider interface {
	Create(data recruitmentapimodels.JobOfferData) (id string, hMsg string, err error)
	GetByID(id string) (view *recruitmentapimodels.JobOfferView, err error)
	List() (list []recruitmentapimodels.JobOfferView, err error)
	Submit(id, actorUserID string) (hMsg string, err error)
	// RecordDecision captures the candidate's answer to an approved offer.
	RecordDecision(id string, accepted bool) (hMsg string, err error)
	// OfferLetter renders an approved offer as a PDF.
	OfferLetter(id string) (content []byte, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB)
	workflowregistry.Register(ObjectType, source{store: recruitmentstore.NewInstance(db.DB)})
	workflowresolver.RegisterLookup(hiringManagerLookup, func(employee *dbmodels.Employee) (*string, error) {
		if employee == nil {
			return nil, nil
		}
		return employee.UserID, nil
	})
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return &handler{
		store:  recruitmentstore.NewInstance(tx),
		engine: func() workflowengine.Provider { return workflowengine.Instance },
	}
}

type handler struct {
	store  recruitmentstore.Provider
	engine func() workflowengine.Provider
}

func (h handler) Create(data recruitmentapimodels.JobOfferData) (string, string, error) {
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	id, err := h.store.Create(dbmodels.JobOffer{
		CandidateName:   data.CandidateName,
		CandidateEmail:  data.CandidateEmail,
		JobTitle:        data.JobTitle,
		Grade:           data.Grade,
		AnnualSalary:    data.AnnualSalary,
		StartDate:       data.StartDate,
		HiringManagerID: data.HiringManagerID,
		Status:          models.OfferDraft,
	})
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

func (h handler) GetByID(id string) (*recruitmentapimodels.JobOfferView, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := recruitmentapimodels.JobOfferConvert(*rec)
	return &view, nil
}

func (h handler) List() ([]recruitmentapimodels.JobOfferView, error) {
	recs, err := h.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]recruitmentapimodels.JobOfferView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, recruitmentapimodels.JobOfferConvert(rec))
	}
	return list, nil
}

func (h handler) Submit(id, actorUserID string) (string, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "Job offer not found", nil
	}
	if !rec.Status.AllowSubmit() {
		return fmt.Sprintf("A job offer in status %s can not be submitted", rec.Status), nil
	}
	_, err = h.engine().StartApproval(ObjectType, rec.ID, models.WorkflowJobOfferApproval, actorUserID)
	if err != nil {
		if workflowengine.IsEngineError(err) {
			return err.Error(), nil
		}
		return "", err
	}
	return "", h.store.Update(id, map[string]interface{}{
		"status": models.OfferSubmitted,
	})
}

func (h handler) RecordDecision(id string, accepted bool) (string, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "Job offer not found", nil
	}
	if rec.Status != models.OfferApproved {
		return "Only an approved offer can be accepted or declined", nil
	}
	status := models.OfferAccepted
	if !accepted {
		status = models.OfferDeclined
	}
	return "", h.store.Update(id, map[string]interface{}{
		"status": status,
	})
}

func (h handler) OfferLetter(id string) ([]byte, string, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "Job offer not found", nil
	}
	switch rec.Status {
	case models.OfferApproved, models.OfferAccepted:
	default:
		return nil, "The offer letter is only available once the offer is approved", nil
	}
	content, err := pdfexport.OfferLetter(*rec)
	if err != nil {
		return nil, "", err
	}
	return content, "", nil
}

type source struct {
	store recruitmentstore.Provider
}

func (s source) GetInfo(objectID string) (workflowregistry.ObjectInfo, error) {
	rec, err := s.store.GetByID(objectID)
	if err != nil {
		return workflowregistry.ObjectInfo{}, err
	}
	if rec == nil {
		return workflowregistry.ObjectInfo{}, errors.Errorf("job offer %s not found", objectID)
	}
	return workflowregistry.ObjectInfo{
		Title: fmt.Sprintf("Job offer for %s (%s)", rec.CandidateName, rec.JobTitle),
		// The hiring manager stands in as the subject for approver resolution.
		EmployeeID: rec.HiringManagerID,
	}, nil
}

func (s source) OnApproved(objectID string) error {
	return s.store.Update(objectID, map[string]interface{}{
		"status": models.OfferApproved,
	})
}

func (s source) OnRejected(objectID string) error {
	return s.store.Update(objectID, map[string]interface{}{
		"status": models.OfferRejected,
	})
}
