package employee

import (
	"fmt"

	"hrms-backend/db"
	employeestore "hrms-backend/lib/employee/store"
	workflowengine "hrms-backend/lib/workflow/engine"
	workflowregistry "hrms-backend/lib/workflow/registry"
	"hrms-backend/models"
	orgapimodels "hrms-backend/models/api/org"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ExitObjectType is the workflow registry key for employee exits.
const ExitObjectType = "EMPLOYEE_EXIT"

type Provider interface {
	Create(data orgapimodels.EmployeeData) (id string, hMsg string, err error)
	Update(id string, data orgapimodels.EmployeeData) (hMsg string, err error)
	GetByID(id string) (view *orgapimodels.EmployeeView, err error)
	GetByUser(userID string) (view *orgapimodels.EmployeeView, err error)
	List() (list []orgapimodels.EmployeeView, err error)
	// SubmitExit opens the exit approval for an active employee. The
	// employment status flips to EXITED when the approval completes.
	SubmitExit(id, actorUserID string) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB)
	workflowregistry.Register(ExitObjectType, exitSource{store: employeestore.NewInstance(db.DB)})
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return &handler{
		store:  employeestore.NewInstance(tx),
		engine: func() workflowengine.Provider { return workflowengine.Instance },
	}
}

type handler struct {
	store  employeestore.Provider
	engine func() workflowengine.Provider
}

func (h handler) Create(data orgapimodels.EmployeeData) (string, string, error) {
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	rec := dbmodels.Employee{
		StaffNumber:    data.StaffNumber,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		JobTitle:       data.JobTitle,
		Grade:          data.Grade,
		HireDate:       data.HireDate,
		Status:         models.EmploymentActive,
		AnnualLeaveDue: data.AnnualLeaveDue,
	}
	applyRefs(&rec, data)
	id, err := h.store.Create(rec)
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

func (h handler) Update(id string, data orgapimodels.EmployeeData) (string, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "Employee not found", nil
	}
	updMap := map[string]interface{}{}
	if data.FirstName != "" {
		updMap["first_name"] = data.FirstName
	}
	if data.LastName != "" {
		updMap["last_name"] = data.LastName
	}
	if data.JobTitle != "" {
		updMap["job_title"] = data.JobTitle
	}
	if data.Grade != "" {
		updMap["grade"] = data.Grade
	}
	if data.SupervisorID != "" {
		if data.SupervisorID == id {
			return "An employee can not be their own supervisor", nil
		}
		updMap["supervisor_id"] = data.SupervisorID
	}
	if data.DepartmentID != "" {
		updMap["department_id"] = data.DepartmentID
	}
	if data.DirectorateID != "" {
		updMap["directorate_id"] = data.DirectorateID
	}
	if data.DivisionID != "" {
		updMap["division_id"] = data.DivisionID
	}
	if data.WorkLocationID != "" {
		updMap["work_location_id"] = data.WorkLocationID
	}
	if data.AnnualLeaveDue > 0 {
		updMap["annual_leave_due"] = data.AnnualLeaveDue
	}
	return "", h.store.Update(id, updMap)
}

func (h handler) GetByID(id string) (*orgapimodels.EmployeeView, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := orgapimodels.EmployeeConvert(*rec)
	return &view, nil
}

func (h handler) GetByUser(userID string) (*orgapimodels.EmployeeView, error) {
	rec, err := h.store.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := orgapimodels.EmployeeConvert(*rec)
	return &view, nil
}

func (h handler) List() ([]orgapimodels.EmployeeView, error) {
	recs, err := h.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]orgapimodels.EmployeeView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, orgapimodels.EmployeeConvert(rec))
	}
	return list, nil
}

func (h handler) SubmitExit(id, actorUserID string) (string, error) {
	rec, err := h.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "Employee not found", nil
	}
	if rec.Status != models.EmploymentActive {
		return fmt.Sprintf("An exit can not be started for an employee in status %s", rec.Status), nil
	}
	_, err = h.engine().StartApproval(ExitObjectType, id, models.WorkflowExitApproval, actorUserID)
	if err != nil {
		if workflowengine.IsEngineError(err) {
			return err.Error(), nil
		}
		return "", err
	}
	return "", nil
}

type exitSource struct {
	store employeestore.Provider
}

func (s exitSource) GetInfo(objectID string) (workflowregistry.ObjectInfo, error) {
	rec, err := s.store.GetByID(objectID)
	if err != nil {
		return workflowregistry.ObjectInfo{}, err
	}
	if rec == nil {
		return workflowregistry.ObjectInfo{}, errors.Errorf("employee %s not found", objectID)
	}
	return workflowregistry.ObjectInfo{
		Title:      fmt.Sprintf("Exit of %s (%s)", rec.GetFullName(), rec.StaffNumber),
		EmployeeID: rec.ID,
	}, nil
}

func (s exitSource) OnApproved(objectID string) error {
	return s.store.Update(objectID, map[string]interface{}{
		"status": models.EmploymentExited,
	})
}

// OnRejected leaves the employee active; a rejected exit changes nothing.
func (s exitSource) OnRejected(objectID string) error {
	return nil
}

func applyRefs(rec *dbmodels.Employee, data orgapimodels.EmployeeData) {
	if data.UserID != "" {
		userID := data.UserID
		rec.UserID = &userID
	}
	if data.SupervisorID != "" {
		supervisorID := data.SupervisorID
		rec.SupervisorID = &supervisorID
	}
	if data.DepartmentID != "" {
		departmentID := data.DepartmentID
		rec.DepartmentID = &departmentID
	}
	if data.DirectorateID != "" {
		directorateID := data.DirectorateID
		rec.DirectorateID = &directorateID
	}
	if data.DivisionID != "" {
		divisionID := data.DivisionID
		rec.DivisionID = &divisionID
	}
	if data.WorkLocationID != "" {
		workLocationID := data.WorkLocationID
		rec.WorkLocationID = &workLocationID
	}
}
