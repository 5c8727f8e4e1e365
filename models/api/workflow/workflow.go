package workflowapimodels

import (
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type ActionData struct {
	Action   models.ApprovalAction `json:"action"`
	Comments string                `json:"comments"`
}

func (r ActionData) Validate() error {
	switch r.Action {
	case models.ActionApprove, models.ActionReject, models.ActionReturn, models.ActionDelegate:
		return nil
	case "":
		return errors.New("action is required")
	}
	return errors.Errorf("unknown action: %v", r.Action)
}

type DelegateData struct {
	ToUserID string `json:"to_user_id"`
	Reason   string `json:"reason"`
}

func (r DelegateData) Validate() error {
	if r.ToUserID == "" {
		return errors.New("delegate user id is required")
	}
	return nil
}

type DelegationData struct {
	DelegateID string    `json:"delegate_id"`
	WorkflowID string    `json:"workflow_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Reason     string    `json:"reason"`
}

func (r DelegationData) Validate() error {
	if r.DelegateID == "" {
		return errors.New("delegate user id is required")
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return errors.New("delegation period is required")
	}
	if r.EndDate.Before(r.StartDate) {
		return errors.New("delegation end date is before the start date")
	}
	return nil
}

type DelegationView struct {
	DelegationData
	ID            string `json:"id"`
	DelegatorID   string `json:"delegator_id"`
	DelegatorName string `json:"delegator_name,omitempty"`
	DelegateName  string `json:"delegate_name,omitempty"`
	IsActive      bool   `json:"is_active"`
}

func DelegationConvert(rec dbmodels.ApprovalDelegation) DelegationView {
	view := DelegationView{
		DelegationData: DelegationData{
			DelegateID: rec.DelegateID,
			StartDate:  rec.StartDate,
			EndDate:    rec.EndDate,
			Reason:     rec.Reason,
		},
		ID:          rec.ID,
		DelegatorID: rec.DelegatorID,
		IsActive:    rec.IsActive,
	}
	if rec.WorkflowID != nil {
		view.WorkflowID = *rec.WorkflowID
	}
	if rec.Delegator != nil {
		view.DelegatorName = rec.Delegator.GetFullName()
	}
	if rec.Delegate != nil {
		view.DelegateName = rec.Delegate.GetFullName()
	}
	return view
}

type PendingApprovalView struct {
	RequestID    string               `json:"request_id"`
	InstanceID   string               `json:"instance_id"`
	ObjectType   string               `json:"object_type"`
	ObjectID     string               `json:"object_id"`
	ObjectTitle  string               `json:"object_title,omitempty"`
	WorkflowCode string               `json:"workflow_code"`
	LevelNumber  int                  `json:"level_number"`
	LevelName    string               `json:"level_name"`
	AssignedRole string               `json:"assigned_role,omitempty"`
	Status       models.RequestStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}

type RequestView struct {
	ID           string               `json:"id"`
	LevelNumber  int                  `json:"level_number"`
	LevelName    string               `json:"level_name"`
	AssignedToID string               `json:"assigned_to_id,omitempty"`
	AssignedTo   string               `json:"assigned_to,omitempty"`
	AssignedRole string               `json:"assigned_role,omitempty"`
	Status       models.RequestStatus `json:"status"`
	Comments     string               `json:"comments,omitempty"`
	RespondedAt  *time.Time           `json:"responded_at,omitempty"`
	RespondedBy  string               `json:"responded_by,omitempty"`
}

func RequestConvert(rec dbmodels.ApprovalRequest) RequestView {
	view := RequestView{
		ID:           rec.ID,
		LevelNumber:  rec.LevelNumber,
		LevelName:    rec.LevelName,
		AssignedRole: rec.AssignedRole,
		Status:       rec.Status,
		Comments:     rec.Comments,
		RespondedAt:  rec.RespondedAt,
	}
	if rec.AssignedToID != nil {
		view.AssignedToID = *rec.AssignedToID
	}
	if rec.AssignedTo != nil {
		view.AssignedTo = rec.AssignedTo.GetFullName()
	}
	if rec.RespondedBy != nil {
		view.RespondedBy = rec.RespondedBy.GetFullName()
	}
	return view
}

type InstanceStatusView struct {
	InstanceID   string                   `json:"instance_id"`
	WorkflowCode string                   `json:"workflow_code"`
	ObjectType   string                   `json:"object_type"`
	ObjectID     string                   `json:"object_id"`
	CurrentState models.WorkflowStateCode `json:"current_state"`
	Status       models.InstanceStatus    `json:"status"`
	CurrentLevel int                      `json:"current_level"`
	StartedBy    string                   `json:"started_by,omitempty"`
	CompletedAt  *time.Time               `json:"completed_at,omitempty"`
	Requests     []RequestView            `json:"requests"`
}

type TransitionLogView struct {
	FromState   models.WorkflowStateCode `json:"from_state"`
	ToState     models.WorkflowStateCode `json:"to_state"`
	Actor       string                   `json:"actor,omitempty"`
	Comments    string                   `json:"comments,omitempty"`
	IsAutomatic bool                     `json:"is_automatic"`
	CreatedAt   time.Time                `json:"created_at"`
}

func TransitionLogConvert(rec dbmodels.WorkflowTransitionLog) TransitionLogView {
	view := TransitionLogView{
		FromState:   rec.FromState,
		ToState:     rec.ToState,
		Comments:    rec.Comments,
		IsAutomatic: rec.IsAutomatic,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.Actor != nil {
		view.Actor = rec.Actor.GetFullName()
	}
	return view
}

type StatsView struct {
	ActiveInstances    int64             `json:"active_instances"`
	CompletedInstances int64             `json:"completed_instances"`
	RejectedInstances  int64             `json:"rejected_instances"`
	CancelledInstances int64             `json:"cancelled_instances"`
	PendingRequests    int64             `json:"pending_requests"`
	ByWorkflow         []WorkflowStatRow `json:"by_workflow"`
}

type WorkflowStatRow struct {
	WorkflowCode string `json:"workflow_code"`
	Active       int64  `json:"active"`
	Completed    int64  `json:"completed"`
	Rejected     int64  `json:"rejected"`
}
