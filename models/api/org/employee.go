package orgapimodels

import (
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type EmployeeData struct {
	StaffNumber    string    `json:"staff_number"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	UserID         string    `json:"user_id"`
	SupervisorID   string    `json:"supervisor_id"`
	DepartmentID   string    `json:"department_id"`
	DirectorateID  string    `json:"directorate_id"`
	DivisionID     string    `json:"division_id"`
	WorkLocationID string    `json:"work_location_id"`
	JobTitle       string    `json:"job_title"`
	Grade          string    `json:"grade"`
	HireDate       time.Time `json:"hire_date"`
	AnnualLeaveDue int       `json:"annual_leave_due"`
}

func (r EmployeeData) Validate() error {
	if r.StaffNumber == "" {
		return errors.New("staff number is required")
	}
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("employee name is required")
	}
	return nil
}

type EmployeeView struct {
	EmployeeData
	ID             string                  `json:"id"`
	FullName       string                  `json:"full_name"`
	Status         models.EmploymentStatus `json:"status"`
	SupervisorName string                  `json:"supervisor_name,omitempty"`
	DepartmentName string                  `json:"department_name,omitempty"`
	DivisionName   string                  `json:"division_name,omitempty"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	view := EmployeeView{
		EmployeeData: EmployeeData{
			StaffNumber:    rec.StaffNumber,
			FirstName:      rec.FirstName,
			LastName:       rec.LastName,
			JobTitle:       rec.JobTitle,
			Grade:          rec.Grade,
			HireDate:       rec.HireDate,
			AnnualLeaveDue: rec.AnnualLeaveDue,
		},
		ID:       rec.ID,
		FullName: rec.GetFullName(),
		Status:   rec.Status,
	}
	if rec.UserID != nil {
		view.UserID = *rec.UserID
	}
	if rec.SupervisorID != nil {
		view.SupervisorID = *rec.SupervisorID
	}
	if rec.Supervisor != nil {
		view.SupervisorName = rec.Supervisor.GetFullName()
	}
	if rec.DepartmentID != nil {
		view.DepartmentID = *rec.DepartmentID
	}
	if rec.Department != nil {
		view.DepartmentName = rec.Department.Name
	}
	if rec.DirectorateID != nil {
		view.DirectorateID = *rec.DirectorateID
	}
	if rec.DivisionID != nil {
		view.DivisionID = *rec.DivisionID
	}
	if rec.Division != nil {
		view.DivisionName = rec.Division.Name
	}
	if rec.WorkLocationID != nil {
		view.WorkLocationID = *rec.WorkLocationID
	}
	return view
}

type RoleAssignmentData struct {
	RoleCode   string           `json:"role_code"`
	UserID     string           `json:"user_id"`
	Scope      models.RoleScope `json:"scope"`
	DivisionID string           `json:"division_id"`
}

func (r RoleAssignmentData) Validate() error {
	if r.RoleCode == "" {
		return errors.New("role code is required")
	}
	if r.UserID == "" {
		return errors.New("user id is required")
	}
	if r.Scope == models.ScopeDivision && r.DivisionID == "" {
		return errors.New("division id is required for a division-scoped role")
	}
	return nil
}

type RoleAssignmentView struct {
	RoleAssignmentData
	ID       string `json:"id"`
	UserName string `json:"user_name,omitempty"`
	IsActive bool   `json:"is_active"`
}

func RoleAssignmentConvert(rec dbmodels.RoleAssignment) RoleAssignmentView {
	view := RoleAssignmentView{
		RoleAssignmentData: RoleAssignmentData{
			RoleCode: rec.RoleCode,
			UserID:   rec.UserID,
			Scope:    rec.Scope,
		},
		ID:       rec.ID,
		IsActive: rec.IsActive,
	}
	if rec.DivisionID != nil {
		view.DivisionID = *rec.DivisionID
	}
	if rec.User != nil {
		view.UserName = rec.User.GetFullName()
	}
	return view
}
