package loanapimodels

import (
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type LoanData struct {
	EmployeeID        string  `json:"employee_id"`
	LoanType          string  `json:"loan_type"`
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermMonths        int     `json:"term_months"`
	Purpose           string  `json:"purpose"`
}

func (r LoanData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("employee id is required")
	}
	if r.Principal <= 0 {
		return errors.New("principal must be positive")
	}
	if r.TermMonths <= 0 {
		return errors.New("term must be at least one month")
	}
	if r.AnnualRatePercent < 0 {
		return errors.New("rate must not be negative")
	}
	return nil
}

type LoanView struct {
	LoanData
	ID           string            `json:"id"`
	EmployeeName string            `json:"employee_name,omitempty"`
	Status       models.LoanStatus `json:"status"`
	DisbursedAt  *time.Time        `json:"disbursed_at,omitempty"`
}

func LoanConvert(rec dbmodels.LoanAccount) LoanView {
	view := LoanView{
		LoanData: LoanData{
			EmployeeID:        rec.EmployeeID,
			LoanType:          rec.LoanType,
			Principal:         rec.Principal,
			AnnualRatePercent: rec.AnnualRatePercent,
			TermMonths:        rec.TermMonths,
			Purpose:           rec.Purpose,
		},
		ID:          rec.ID,
		Status:      rec.Status,
		DisbursedAt: rec.DisbursedAt,
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.GetFullName()
	}
	return view
}

type ScheduleEntryView struct {
	Sequence  int       `json:"sequence"`
	DueDate   time.Time `json:"due_date"`
	Payment   float64   `json:"payment"`
	Interest  float64   `json:"interest"`
	Principal float64   `json:"principal"`
	Balance   float64   `json:"balance"`
}

func ScheduleEntryConvert(rec dbmodels.LoanScheduleEntry) ScheduleEntryView {
	return ScheduleEntryView{
		Sequence:  rec.Sequence,
		DueDate:   rec.DueDate,
		Payment:   rec.Payment,
		Interest:  rec.Interest,
		Principal: rec.Principal,
		Balance:   rec.Balance,
	}
}
