package workflowengine

import (
	dbmodels "hrms-backend/models/db"
)

func (h *handler) CreateDelegation(rec dbmodels.ApprovalDelegation) (string, error) {
	if rec.DelegatorID == rec.DelegateID {
		return "", newEngineError("you can not delegate approvals to yourself")
	}
	if rec.EndDate.Before(rec.StartDate) {
		return "", newEngineError("delegation end date is before the start date")
	}
	rec.IsActive = true
	return h.view.delegations.Create(rec)
}

func (h *handler) ListDelegations(delegatorUserID string) ([]dbmodels.ApprovalDelegation, error) {
	return h.view.delegations.ListByDelegator(delegatorUserID)
}

func (h *handler) RevokeDelegation(id, actorUserID string) error {
	rec, err := h.view.delegations.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return newEngineError("delegation not found")
	}
	if rec.DelegatorID != actorUserID {
		return newEngineError("only the delegator can revoke a delegation")
	}
	return h.view.delegations.Update(id, map[string]interface{}{
		"is_active": false,
	})
}
