package models

type LoanStatus string

const (
	LoanDraft     LoanStatus = "DRAFT"
	LoanSubmitted LoanStatus = "SUBMITTED"
	LoanApproved  LoanStatus = "APPROVED"
	LoanRejected  LoanStatus = "REJECTED"
	LoanDisbursed LoanStatus = "DISBURSED"
	LoanClosed    LoanStatus = "CLOSED"
)

func (s LoanStatus) AllowSubmit() bool {
	return s == LoanDraft || s == LoanRejected
}

func (s LoanStatus) AllowDisburse() bool {
	return s == LoanApproved
}
