// Package loan manages staff loan accounts. A submitted loan runs through
// the LOAN_APPROVAL workflow; disbursement of an approved loan generates the
// amortization schedule.
package loan

import (
	"fmt"
	"time"

	"hrms-backend/db"
	loanstore "hrms-backend/lib/loan/store"
	workflowengine "hrms-backend/lib/workflow/engine"
	workflowregistry "hrms-backend/lib/workflow/registry"
	"hrms-backend/models"
	loanapimodels "hrms-backend/models/api/loan"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ObjectType is the workflow registry key for loan accounts.
const ObjectType = "LOAN_ACCOUNT"

type Provider interface {
	Create(data loanapimodels.LoanData) (id string, hMsg string, err error)
	GetByID(id string) (view *loanapimodels.LoanView, err error)
	ListByEmployee(employeeID string) (list []loanapimodels.LoanView, err error)
	List() (list []loanapimodels.LoanView, err error)
	Submit(id, actorUserID string) (hMsg string, err error)
	// Disburse pays out an approved loan and builds its schedule.
	Disburse(id string) (hMsg string, err error)
	GetSchedule(id string) (list []loanapimodels.ScheduleEntryView, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB)
	workflowregistry.Register(ObjectType, source{store: loanstore.NewInstance(db.DB)})
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return &handler{
		store:  loanstore.NewInstance(tx),
		engine: func() workflowengine.Provider { return workflowengine.Instance },
	}
}

type handler struct {
	store  loanstore.Provider
	engine func() workflowengine.Provider
}

func (h handler) Create(data loanapimodels.LoanData) (string, string, error) {
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	id, err := h.store.Create(dbmodels.LoanAccount{
		EmployeeID:        data.EmployeeID,
		LoanType:          data.LoanType,
		Principal:         data.Principal,
		AnnualRatePercent: data.AnnualRatePercent,
		TermMonths:        data.TermMonths,
		Purpose:           data.Purpose,
		Status:            models.LoanDraft,
	})
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

func (h handler) GetByID(id string) (*loanapimodels.LoanView, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := loanapimodels.LoanConvert(*rec)
	return &view, nil
}

func (h handler) ListByEmployee(employeeID string) ([]loanapimodels.LoanView, error) {
	recs, err := h.store.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return convertAll(recs), nil
}

func (h handler) List() ([]loanapimodels.LoanView, error) {
	recs, err := h.store.List()
	if err != nil {
		return nil, err
	}
	return convertAll(recs), nil
}

func (h handler) Submit(id, actorUserID string) (string, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "Loan not found", nil
	}
	if !rec.Status.AllowSubmit() {
		return fmt.Sprintf("A loan in status %s can not be submitted", rec.Status), nil
	}
	_, err = h.engine().StartApproval(ObjectType, rec.ID, models.WorkflowLoanApproval, actorUserID)
	if err != nil {
		if workflowengine.IsEngineError(err) {
			return err.Error(), nil
		}
		return "", err
	}
	return "", h.store.Update(id, map[string]interface{}{
		"status": models.LoanSubmitted,
	})
}

func (h handler) Disburse(id string) (string, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "Loan not found", nil
	}
	if !rec.Status.AllowDisburse() {
		return fmt.Sprintf("A loan in status %s can not be disbursed", rec.Status), nil
	}
	now := time.Now()
	schedule := BuildSchedule(rec.Principal, rec.AnnualRatePercent, rec.TermMonths, now)
	if err := h.store.ReplaceSchedule(rec.ID, schedule); err != nil {
		return "", err
	}
	return "", h.store.Update(id, map[string]interface{}{
		"status":       models.LoanDisbursed,
		"disbursed_at": now,
	})
}

func (h handler) GetSchedule(id string) ([]loanapimodels.ScheduleEntryView, string, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "Loan not found", nil
	}
	entries, err := h.store.ListSchedule(id)
	if err != nil {
		return nil, "", err
	}
	list := make([]loanapimodels.ScheduleEntryView, 0, len(entries))
	for _, entry := range entries {
		list = append(list, loanapimodels.ScheduleEntryConvert(entry))
	}
	return list, "", nil
}

func convertAll(recs []dbmodels.LoanAccount) []loanapimodels.LoanView {
	list := make([]loanapimodels.LoanView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, loanapimodels.LoanConvert(rec))
	}
	return list
}

type source struct {
	store loanstore.Provider
}

func (s source) GetInfo(objectID string) (workflowregistry.ObjectInfo, error) {
	rec, err := s.store.GetByID(objectID)
	if err != nil {
		return workflowregistry.ObjectInfo{}, err
	}
	if rec == nil {
		return workflowregistry.ObjectInfo{}, errors.Errorf("loan %s not found", objectID)
	}
	title := fmt.Sprintf("Staff loan of %.2f over %d months", rec.Principal, rec.TermMonths)
	if rec.Employee != nil {
		title = fmt.Sprintf("Staff loan of %.2f for %s", rec.Principal, rec.Employee.GetFullName())
	}
	return workflowregistry.ObjectInfo{
		Title:      title,
		EmployeeID: rec.EmployeeID,
	}, nil
}

func (s source) OnApproved(objectID string) error {
	return s.store.Update(objectID, map[string]interface{}{
		"status": models.LoanApproved,
	})
}

func (s source) OnRejected(objectID string) error {
	return s.store.Update(objectID, map[string]interface{}{
		"status": models.LoanRejected,
	})
}
