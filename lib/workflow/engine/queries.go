package workflowengine

import (
	"time"

	"hrms-backend/lib/utils/helpers"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

func (h *handler) GetPendingForUser(userID string) ([]dbmodels.ApprovalRequest, error) {
	today := helpers.TruncateToDay(time.Now())
	delegations, err := h.view.delegations.ListActiveForDelegate(userID, today)
	if err != nil {
		return nil, err
	}
	delegatorIDs := make([]string, 0, len(delegations))
	for _, delegation := range delegations {
		delegatorIDs = append(delegatorIDs, delegation.DelegatorID)
	}
	roleCodes, err := h.view.roles.ListRoleCodesForUser(userID)
	if err != nil {
		return nil, err
	}
	return h.view.requests.ListPendingForUser(userID, delegatorIDs, roleCodes)
}

func (h *handler) GetStatus(objectType, objectID string) (*dbmodels.WorkflowInstance, []dbmodels.ApprovalRequest, error) {
	inst, err := h.view.instances.GetLatestByObject(objectType, objectID)
	if err != nil {
		return nil, nil, err
	}
	if inst == nil {
		return nil, nil, nil
	}
	requests, err := h.view.requests.ListByInstance(inst.ID)
	if err != nil {
		return nil, nil, err
	}
	return inst, requests, nil
}

func (h *handler) GetHistory(instanceID string) ([]dbmodels.WorkflowTransitionLog, error) {
	return h.view.logs.ListByInstance(instanceID)
}

func (h *handler) GetStats() (*Stats, error) {
	active, err := h.view.instances.CountByStatus(models.InstanceActive)
	if err != nil {
		return nil, err
	}
	completed, err := h.view.instances.CountByStatus(models.InstanceCompleted)
	if err != nil {
		return nil, err
	}
	rejected, err := h.view.instances.CountByStatus(models.InstanceRejected)
	if err != nil {
		return nil, err
	}
	cancelled, err := h.view.instances.CountByStatus(models.InstanceCancelled)
	if err != nil {
		return nil, err
	}
	pending, err := h.view.requests.CountPending()
	if err != nil {
		return nil, err
	}
	byWorkflow, err := h.view.instances.StatsByWorkflow()
	if err != nil {
		return nil, err
	}
	return &Stats{
		ActiveInstances:    active,
		CompletedInstances: completed,
		RejectedInstances:  rejected,
		CancelledInstances: cancelled,
		PendingRequests:    pending,
		ByWorkflow:         byWorkflow,
	}, nil
}
