// Package leave manages leave types and requests. Submitted requests run
// through the LEAVE_APPROVAL workflow; the final decision lands back here
// via the workflow object registry.
package leave

import (
	"fmt"

	"hrms-backend/db"
	leavestore "hrms-backend/lib/leave/store"
	"hrms-backend/lib/utils/helpers"
	workflowengine "hrms-backend/lib/workflow/engine"
	workflowregistry "hrms-backend/lib/workflow/registry"
	"hrms-backend/models"
	leaveapimodels "hrms-backend/models/api/leave"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ObjectType is the workflow registry key for leave requests.
const ObjectType = "LEAVE_REQUEST"

type Provider interface {
	CreateType(data leaveapimodels.LeaveTypeData) (id string, hMsg string, err error)
	ListTypes() (list []leaveapimodels.LeaveTypeView, err error)

	Create(data leaveapimodels.LeaveRequestData) (id string, hMsg string, err error)
	GetByID(id string) (view *leaveapimodels.LeaveRequestView, err error)
	ListByEmployee(employeeID string) (list []leaveapimodels.LeaveRequestView, err error)
	List() (list []leaveapimodels.LeaveRequestView, err error)
	// Submit checks the balance and opens the approval workflow.
	Submit(id, actorUserID string) (hMsg string, err error)
	Cancel(id, actorUserID string) (hMsg string, err error)
	GetBalance(employeeID, leaveTypeID string, year int) (view *leaveapimodels.BalanceView, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB)
	workflowregistry.Register(ObjectType, source{store: leavestore.NewInstance(db.DB)})
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return &handler{
		store:  leavestore.NewInstance(tx),
		engine: func() workflowengine.Provider { return workflowengine.Instance },
	}
}

type handler struct {
	store leavestore.Provider
	// engine is resolved lazily so handler wiring order does not matter.
	engine func() workflowengine.Provider
}

func (h handler) CreateType(data leaveapimodels.LeaveTypeData) (string, string, error) {
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	existing, err := h.store.GetTypeByCode(data.Code)
	if err != nil {
		return "", "", err
	}
	if existing != nil {
		return "", "A leave type with this code already exists", nil
	}
	id, err := h.store.CreateType(dbmodels.LeaveType{
		Code:        data.Code,
		Name:        data.Name,
		DaysPerYear: data.DaysPerYear,
		IsPaid:      data.IsPaid,
	})
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

func (h handler) ListTypes() ([]leaveapimodels.LeaveTypeView, error) {
	recs, err := h.store.ListTypes()
	if err != nil {
		return nil, err
	}
	list := make([]leaveapimodels.LeaveTypeView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, leaveapimodels.LeaveTypeConvert(rec))
	}
	return list, nil
}

func (h handler) Create(data leaveapimodels.LeaveRequestData) (string, string, error) {
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	leaveType, err := h.store.GetTypeByID(data.LeaveTypeID)
	if err != nil {
		return "", "", err
	}
	if leaveType == nil {
		return "", "Leave type not found", nil
	}
	days := helpers.WorkingDaysBetween(data.StartDate, data.EndDate)
	if days == 0 {
		return "", "The requested period contains no working days", nil
	}
	id, err := h.store.Create(dbmodels.LeaveRequest{
		EmployeeID:  data.EmployeeID,
		LeaveTypeID: data.LeaveTypeID,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		Days:        days,
		Reason:      data.Reason,
		Status:      models.LeaveDraft,
	})
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

func (h handler) GetByID(id string) (*leaveapimodels.LeaveRequestView, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := leaveapimodels.LeaveRequestConvert(*rec)
	return &view, nil
}

func (h handler) ListByEmployee(employeeID string) ([]leaveapimodels.LeaveRequestView, error) {
	recs, err := h.store.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return convertAll(recs), nil
}

func (h handler) List() ([]leaveapimodels.LeaveRequestView, error) {
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
		return "Leave request not found", nil
	}
	if !rec.Status.AllowSubmit() {
		return fmt.Sprintf("A leave request in status %s can not be submitted", rec.Status), nil
	}

	balance, hMsg, err := h.GetBalance(rec.EmployeeID, rec.LeaveTypeID, rec.StartDate.Year())
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	if rec.Days > balance.Remaining {
		return fmt.Sprintf("Insufficient leave balance: %d days requested, %d remaining", rec.Days, balance.Remaining), nil
	}

	_, err = h.engine().StartApproval(ObjectType, rec.ID, models.WorkflowLeaveApproval, actorUserID)
	if err != nil {
		if workflowengine.IsEngineError(err) {
			return err.Error(), nil
		}
		return "", err
	}
	return "", h.store.Update(id, map[string]interface{}{
		"status": models.LeaveSubmitted,
	})
}

func (h handler) Cancel(id, actorUserID string) (string, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "Leave request not found", nil
	}
	if !rec.Status.AllowCancel() {
		return fmt.Sprintf("A leave request in status %s can not be cancelled", rec.Status), nil
	}
	if rec.Status == models.LeaveSubmitted {
		err = h.engine().Cancel(ObjectType, rec.ID, actorUserID, "Leave request cancelled by the employee", false)
		if err != nil {
			if workflowengine.IsEngineError(err) {
				return err.Error(), nil
			}
			return "", err
		}
	}
	return "", h.store.Update(id, map[string]interface{}{
		"status": models.LeaveCancelled,
	})
}

func (h handler) GetBalance(employeeID, leaveTypeID string, year int) (*leaveapimodels.BalanceView, string, error) {
	leaveType, err := h.store.GetTypeByID(leaveTypeID)
	if err != nil {
		return nil, "", err
	}
	if leaveType == nil {
		return nil, "Leave type not found", nil
	}
	used, err := h.store.SumApprovedDays(employeeID, leaveTypeID, year)
	if err != nil {
		return nil, "", err
	}
	return &leaveapimodels.BalanceView{
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		Year:        year,
		Entitled:    leaveType.DaysPerYear,
		Used:        used,
		Remaining:   leaveType.DaysPerYear - used,
	}, "", nil
}

func convertAll(recs []dbmodels.LeaveRequest) []leaveapimodels.LeaveRequestView {
	list := make([]leaveapimodels.LeaveRequestView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, leaveapimodels.LeaveRequestConvert(rec))
	}
	return list
}

// source exposes leave requests to the approval engine.
type source struct {
	store leavestore.Provider
}

func (s source) GetInfo(objectID string) (workflowregistry.ObjectInfo, error) {
	rec, err := s.store.GetByID(objectID)
	if err != nil {
		return workflowregistry.ObjectInfo{}, err
	}
	if rec == nil {
		return workflowregistry.ObjectInfo{}, errors.Errorf("leave request %s not found", objectID)
	}
	title := fmt.Sprintf("Leave request (%d days)", rec.Days)
	if rec.Employee != nil {
		title = fmt.Sprintf("Leave request of %s (%d days)", rec.Employee.GetFullName(), rec.Days)
	}
	return workflowregistry.ObjectInfo{
		Title:      title,
		EmployeeID: rec.EmployeeID,
	}, nil
}

func (s source) OnApproved(objectID string) error {
	return s.store.Update(objectID, map[string]interface{}{
		"status": models.LeaveApproved,
	})
}

func (s source) OnRejected(objectID string) error {
	return s.store.Update(objectID, map[string]interface{}{
		"status": models.LeaveRejected,
	})
}
