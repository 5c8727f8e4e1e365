package leaveapimodels

import (
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type LeaveTypeData struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	DaysPerYear int    `json:"days_per_year"`
	IsPaid      bool   `json:"is_paid"`
}

func (r LeaveTypeData) Validate() error {
	if r.Code == "" {
		return errors.New("leave type code is required")
	}
	if r.Name == "" {
		return errors.New("leave type name is required")
	}
	if r.DaysPerYear <= 0 {
		return errors.New("days per year must be positive")
	}
	return nil
}

type LeaveTypeView struct {
	LeaveTypeData
	ID string `json:"id"`
}

func LeaveTypeConvert(rec dbmodels.LeaveType) LeaveTypeView {
	return LeaveTypeView{
		LeaveTypeData: LeaveTypeData{
			Code:        rec.Code,
			Name:        rec.Name,
			DaysPerYear: rec.DaysPerYear,
			IsPaid:      rec.IsPaid,
		},
		ID: rec.ID,
	}
}

type LeaveRequestData struct {
	EmployeeID  string    `json:"employee_id"`
	LeaveTypeID string    `json:"leave_type_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Reason      string    `json:"reason"`
}

func (r LeaveRequestData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("employee id is required")
	}
	if r.LeaveTypeID == "" {
		return errors.New("leave type id is required")
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return errors.New("leave period is required")
	}
	if r.EndDate.Before(r.StartDate) {
		return errors.New("leave end date is before the start date")
	}
	return nil
}

type LeaveRequestView struct {
	LeaveRequestData
	ID            string             `json:"id"`
	EmployeeName  string             `json:"employee_name,omitempty"`
	LeaveTypeName string             `json:"leave_type_name,omitempty"`
	Days          int                `json:"days"`
	Status        models.LeaveStatus `json:"status"`
}

func LeaveRequestConvert(rec dbmodels.LeaveRequest) LeaveRequestView {
	view := LeaveRequestView{
		LeaveRequestData: LeaveRequestData{
			EmployeeID:  rec.EmployeeID,
			LeaveTypeID: rec.LeaveTypeID,
			StartDate:   rec.StartDate,
			EndDate:     rec.EndDate,
			Reason:      rec.Reason,
		},
		ID:     rec.ID,
		Days:   rec.Days,
		Status: rec.Status,
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.GetFullName()
	}
	if rec.LeaveType != nil {
		view.LeaveTypeName = rec.LeaveType.Name
	}
	return view
}

type BalanceView struct {
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	Year        int    `json:"year"`
	Entitled    int    `json:"entitled"`
	Used        int    `json:"used"`
	Remaining   int    `json:"remaining"`
}
