// Package payroll manages monthly payroll runs and routes them through the
// PAYROLL_APPROVAL workflow before payout.
package payroll

import (
	"fmt"

	"hrms-backend/db"
	payrollstore "hrms-backend/lib/payroll/store"
	workflowengine "hrms-backend/lib/workflow/engine"
	workflowregistry "hrms-backend/lib/workflow/registry"
	"hrms-backend/models"
	payrollapimodels "hrms-backend/models/api/payroll"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ObjectType is the workflow registry key for payroll runs.
const ObjectType = "PAYROLL_RUN"

type Provider interface {
	Create(data payrollapimodels.PayrollRunData) (id string, hMsg string, err error)
	GetByID(id string) (view *payrollapimodels.PayrollRunView, err error)
	List() (list []payrollapimodels.PayrollRunView, err error)
	Submit(id, actorUserID string) (hMsg string, err error)
	// MarkPaid closes an approved run after payment execution.
	MarkPaid(id string) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB)
	workflowregistry.Register(ObjectType, source{store: payrollstore.NewInstance(db.DB)})
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return &handler{
		store:  payrollstore.NewInstance(tx),
		engine: func() workflowengine.Provider { return workflowengine.Instance },
	}
}

type handler struct {
	store  payrollstore.Provider
	engine func() workflowengine.Provider
}

func (h handler) Create(data payrollapimodels.PayrollRunData) (string, string, error) {
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	existing, err := h.store.GetByPeriod(data.PeriodYear, data.PeriodMonth)
	if err != nil {
		return "", "", err
	}
	if existing != nil {
		return "", fmt.Sprintf("A payroll run for %d-%02d already exists", data.PeriodYear, data.PeriodMonth), nil
	}
	id, err := h.store.Create(dbmodels.PayrollRun{
		PeriodYear:  data.PeriodYear,
		PeriodMonth: data.PeriodMonth,
		Description: data.Description,
		OwnerID:     data.OwnerID,
		GrossTotal:  data.GrossTotal,
		NetTotal:    data.NetTotal,
		Status:      models.PayrollDraft,
	})
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

func (h handler) GetByID(id string) (*payrollapimodels.PayrollRunView, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := payrollapimodels.PayrollRunConvert(*rec)
	return &view, nil
}

func (h handler) List() ([]payrollapimodels.PayrollRunView, error) {
	recs, err := h.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]payrollapimodels.PayrollRunView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, payrollapimodels.PayrollRunConvert(rec))
	}
	return list, nil
}

func (h handler) Submit(id, actorUserID string) (string, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "Payroll run not found", nil
	}
	if !rec.Status.AllowSubmit() {
		return fmt.Sprintf("A payroll run in status %s can not be submitted", rec.Status), nil
	}
	if rec.NetTotal <= 0 {
		return "A payroll run with a zero net total can not be submitted", nil
	}
	_, err = h.engine().StartApproval(ObjectType, rec.ID, models.WorkflowPayrollApproval, actorUserID)
	if err != nil {
		if workflowengine.IsEngineError(err) {
			return err.Error(), nil
		}
		return "", err
	}
	return "", h.store.Update(id, map[string]interface{}{
		"status": models.PayrollSubmitted,
	})
}

func (h handler) MarkPaid(id string) (string, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "Payroll run not found", nil
	}
	if rec.Status != models.PayrollApproved {
		return fmt.Sprintf("A payroll run in status %s can not be paid", rec.Status), nil
	}
	return "", h.store.Update(id, map[string]interface{}{
		"status": models.PayrollPaid,
	})
}

type source struct {
	store payrollstore.Provider
}

func (s source) GetInfo(objectID string) (workflowregistry.ObjectInfo, error) {
	rec, err := s.store.GetByID(objectID)
	if err != nil {
		return workflowregistry.ObjectInfo{}, err
	}
	if rec == nil {
		return workflowregistry.ObjectInfo{}, errors.Errorf("payroll run %s not found", objectID)
	}
	return workflowregistry.ObjectInfo{
		Title: fmt.Sprintf("Payroll run %d-%02d (net %.2f)", rec.PeriodYear, rec.PeriodMonth, rec.NetTotal),
		// Payroll approvals are role driven, not tied to a subject employee.
		EmployeeID: "",
	}, nil
}

func (s source) OnApproved(objectID string) error {
	return s.store.Update(objectID, map[string]interface{}{
		"status": models.PayrollApproved,
	})
}

func (s source) OnRejected(objectID string) error {
	return s.store.Update(objectID, map[string]interface{}{
		"status": models.PayrollRejected,
	})
}
