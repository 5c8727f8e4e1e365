package models

type PayrollStatus string

const (
	PayrollDraft     PayrollStatus = "DRAFT"
	PayrollSubmitted PayrollStatus = "SUBMITTED"
	PayrollApproved  PayrollStatus = "APPROVED"
	PayrollRejected  PayrollStatus = "REJECTED"
	PayrollPaid      PayrollStatus = "PAID"
)

func (s PayrollStatus) AllowSubmit() bool {
	return s == PayrollDraft || s == PayrollRejected
}
