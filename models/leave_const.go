package models

type LeaveStatus string

const (
	LeaveDraft     LeaveStatus = "DRAFT"
	LeaveSubmitted LeaveStatus = "SUBMITTED"
	LeaveApproved  LeaveStatus = "APPROVED"
	LeaveRejected  LeaveStatus = "REJECTED"
	LeaveCancelled LeaveStatus = "CANCELLED"
)

func (s LeaveStatus) AllowSubmit() bool {
	return s == LeaveDraft || s == LeaveRejected
}

func (s LeaveStatus) AllowCancel() bool {
	return s == LeaveDraft || s == LeaveSubmitted
}
