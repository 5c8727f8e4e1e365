package models

type WorkflowType string

const (
	WorkflowTypeApproval     WorkflowType = "APPROVAL"
	WorkflowTypeStateMachine WorkflowType = "STATE_MACHINE"
	WorkflowTypeSequential   WorkflowType = "SEQUENTIAL"
	WorkflowTypeParallel     WorkflowType = "PARALLEL"
)

type InstanceStatus string

const (
	InstanceActive    InstanceStatus = "ACTIVE"
	InstanceCompleted InstanceStatus = "COMPLETED"
	InstanceRejected  InstanceStatus = "REJECTED"
	InstanceCancelled InstanceStatus = "CANCELLED"
	InstanceSuspended InstanceStatus = "SUSPENDED"
)

func (s InstanceStatus) IsTerminal() bool {
	return s == InstanceCompleted || s == InstanceRejected || s == InstanceCancelled
}

type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestApproved  RequestStatus = "APPROVED"
	RequestRejected  RequestStatus = "REJECTED"
	RequestDelegated RequestStatus = "DELEGATED"
	RequestSkipped   RequestStatus = "SKIPPED"
	RequestExpired   RequestStatus = "EXPIRED"
)

type ApprovalAction string

const (
	ActionApprove  ApprovalAction = "APPROVE"
	ActionReject   ApprovalAction = "REJECT"
	ActionReturn   ApprovalAction = "RETURN"
	ActionDelegate ApprovalAction = "DELEGATE"
)

type ApproverType string

const (
	ApproverSupervisor       ApproverType = "SUPERVISOR"
	ApproverDepartmentHead   ApproverType = "DEPARTMENT_HEAD"
	ApproverDistrictHead     ApproverType = "DISTRICT_HEAD"
	ApproverRegionalDirector ApproverType = "REGIONAL_DIRECTOR"
	ApproverDirectorateHead  ApproverType = "DIRECTORATE_HEAD"
	ApproverDivisionHead     ApproverType = "DIVISION_HEAD"
	ApproverDCE              ApproverType = "DCE"
	ApproverCEO              ApproverType = "CEO"
	ApproverRole             ApproverType = "ROLE"
	ApproverUser             ApproverType = "USER"
	ApproverDynamic          ApproverType = "DYNAMIC"
)

type WorkflowStateCode string

const (
	StateStart     WorkflowStateCode = "START"
	StateApproval  WorkflowStateCode = "APPROVAL"
	StateEnd       WorkflowStateCode = "END"
	StateRejected  WorkflowStateCode = "REJECTED"
	StateCancelled WorkflowStateCode = "CANCELLED"
)

// StandardStateCodes are auto-created for a definition when missing.
var StandardStateCodes = []WorkflowStateCode{
	StateStart,
	StateApproval,
	StateEnd,
	StateRejected,
	StateCancelled,
}

type RoleScope string

const (
	ScopeGlobal   RoleScope = "GLOBAL"
	ScopeDivision RoleScope = "DIVISION"
)

// Workflow codes seeded on startup.
const (
	WorkflowLeaveApproval    = "LEAVE_APPROVAL"
	WorkflowLoanApproval     = "LOAN_APPROVAL"
	WorkflowPayrollApproval  = "PAYROLL_APPROVAL"
	WorkflowJobOfferApproval = "JOB_OFFER_APPROVAL"
	WorkflowExitApproval     = "EXIT_APPROVAL"
)
