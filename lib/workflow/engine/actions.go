package workflowengine

import (
	"time"

	"hrms-backend/lib/utils/helpers"
	workflowregistry "hrms-backend/lib/workflow/registry"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

func (h *handler) ProcessAction(requestID string, action models.ApprovalAction, actorUserID, comments string) error {
	if action == models.ActionDelegate {
		return newEngineError("delegation is a separate operation and can not be submitted as an action")
	}
	if action != models.ActionApprove && action != models.ActionReject && action != models.ActionReturn {
		return newEngineError("unknown approval action %s", action)
	}

	var effects []effect
	err := h.runTx(func(s stores) error {
		req, inst, err := loadPendingRequest(s, requestID)
		if err != nil {
			return err
		}
		allowed, err := mayAct(s, req, actorUserID)
		if err != nil {
			return err
		}
		if !allowed {
			return newEngineError("you are not allowed to act on this approval request")
		}

		src, err := workflowregistry.Get(inst.ObjectType)
		if err != nil {
			return err
		}
		info, err := src.GetInfo(inst.ObjectID)
		if err != nil {
			return err
		}

		newStatus := models.RequestApproved
		if action != models.ActionApprove {
			newStatus = models.RequestRejected
		}
		now := time.Now()
		updated, err := s.requests.UpdateWhereStatus(req.ID, models.RequestPending, map[string]interface{}{
			"status":          newStatus,
			"comments":        comments,
			"responded_at":    now,
			"responded_by_id": actorUserID,
		})
		if err != nil {
			return err
		}
		if !updated {
			return newEngineError("the approval request was already actioned")
		}

		switch action {
		case models.ActionApprove:
			return h.advance(s, req, inst, actorUserID, src, info, &effects)
		case models.ActionReject:
			return h.rejectInstance(s, inst, &actorUserID, comments, src, info, &effects)
		default:
			return h.returnToPrevious(s, req, inst, actorUserID, comments, src, info, &effects)
		}
	})
	if err != nil {
		return err
	}
	fire(effects)
	return nil
}

// advance moves the instance past an approved level: either a next request
// opens or the chain is exhausted and the instance completes.
func (h *handler) advance(
	s stores,
	req *dbmodels.ApprovalRequest,
	inst *dbmodels.WorkflowInstance,
	actorUserID string,
	src workflowregistry.Source,
	info workflowregistry.ObjectInfo,
	effects *[]effect,
) error {
	err := logTransition(s, inst.ID, models.StateApproval, models.StateApproval, &actorUserID,
		"Approved at "+req.LevelName, false)
	if err != nil {
		return err
	}
	def, err := s.definitions.GetByID(inst.WorkflowID)
	if err != nil {
		return err
	}
	if def == nil {
		return newEngineError("workflow definition of the instance no longer exists")
	}
	employee, err := loadEmployee(s, info)
	if err != nil {
		return err
	}
	created, err := h.createNextRequest(s, inst, def, employee, req.LevelNumber, &actorUserID, info, effects)
	if err != nil {
		return err
	}
	if !created {
		return h.completeInstance(s, inst, &actorUserID, "All approval levels passed", true, src, info, effects)
	}
	return nil
}

// returnToPrevious reopens the approval at the last level that was actually
// approved. With no approved level below, a return is a rejection.
func (h *handler) returnToPrevious(
	s stores,
	req *dbmodels.ApprovalRequest,
	inst *dbmodels.WorkflowInstance,
	actorUserID, comments string,
	src workflowregistry.Source,
	info workflowregistry.ObjectInfo,
	effects *[]effect,
) error {
	all, err := s.requests.ListByInstance(inst.ID)
	if err != nil {
		return err
	}
	var target *dbmodels.ApprovalRequest
	for idx := range all {
		prev := &all[idx]
		if prev.LevelNumber >= req.LevelNumber || prev.Status != models.RequestApproved {
			continue
		}
		if target == nil || prev.LevelNumber > target.LevelNumber {
			target = prev
		}
	}
	if target == nil {
		return h.rejectInstance(s, inst, &actorUserID, comments, src, info, effects)
	}

	def, err := s.definitions.GetByID(inst.WorkflowID)
	if err != nil {
		return err
	}
	if def == nil {
		return newEngineError("workflow definition of the instance no longer exists")
	}
	employee, err := loadEmployee(s, info)
	if err != nil {
		return err
	}

	// Re-resolve against current org data, falling back to whoever held the
	// level the first time around.
	assignee := target.AssignedToID
	role := target.AssignedRole
	levelName := target.LevelName
	for _, level := range def.Levels {
		if level.Level != target.LevelNumber {
			continue
		}
		levelName = level.Name
		resolved, err := s.resolver.Resolve(employee, level)
		if err != nil {
			return err
		}
		if resolved != nil {
			assignee = resolved
		}
		if fallback := fallbackRole(level); fallback != "" {
			role = fallback
		}
		break
	}

	newReq := dbmodels.ApprovalRequest{
		InstanceID:   inst.ID,
		LevelNumber:  target.LevelNumber,
		LevelName:    levelName,
		AssignedToID: assignee,
		AssignedRole: role,
		Status:       models.RequestPending,
	}
	if _, err := s.requests.Create(newReq); err != nil {
		return err
	}
	err = s.instances.Update(inst.ID, map[string]interface{}{
		"current_state": models.StateApproval,
		"current_level": target.LevelNumber,
	})
	if err != nil {
		return err
	}
	err = logTransition(s, inst.ID, models.StateApproval, models.StateApproval, &actorUserID,
		"Returned to "+levelName+": "+comments, false)
	if err != nil {
		return err
	}
	if assignee != nil {
		userID := *assignee
		title := info.Title
		*effects = append(*effects, func() {
			if notifier != nil {
				notifier.ApprovalAssigned(userID, title, levelName)
			}
		})
	}
	return nil
}

func (h *handler) Delegate(requestID, actorUserID, delegateUserID, reason string) error {
	if actorUserID == delegateUserID {
		return newEngineError("an approval can not be delegated to yourself")
	}

	var effects []effect
	err := h.runTx(func(s stores) error {
		req, inst, err := loadPendingRequest(s, requestID)
		if err != nil {
			return err
		}
		allowed, err := mayAct(s, req, actorUserID)
		if err != nil {
			return err
		}
		if !allowed {
			return newEngineError("only someone who can act on this request can delegate it")
		}

		src, err := workflowregistry.Get(inst.ObjectType)
		if err != nil {
			return err
		}
		info, err := src.GetInfo(inst.ObjectID)
		if err != nil {
			return err
		}

		now := time.Now()
		updated, err := s.requests.UpdateWhereStatus(req.ID, models.RequestPending, map[string]interface{}{
			"status":            models.RequestDelegated,
			"delegated_to_id":   delegateUserID,
			"delegation_reason": reason,
			"responded_at":      now,
			"responded_by_id":   actorUserID,
		})
		if err != nil {
			return err
		}
		if !updated {
			return newEngineError("the approval request was already actioned")
		}

		newReq := dbmodels.ApprovalRequest{
			InstanceID:   inst.ID,
			LevelNumber:  req.LevelNumber,
			LevelName:    req.LevelName,
			AssignedToID: &delegateUserID,
			AssignedRole: req.AssignedRole,
			Status:       models.RequestPending,
		}
		if _, err := s.requests.Create(newReq); err != nil {
			return err
		}
		err = logTransition(s, inst.ID, models.StateApproval, models.StateApproval, &actorUserID,
			"Delegated "+req.LevelName+": "+reason, false)
		if err != nil {
			return err
		}
		title := info.Title
		levelName := req.LevelName
		effects = append(effects, func() {
			if notifier != nil {
				notifier.ApprovalAssigned(delegateUserID, title, levelName)
			}
		})
		return nil
	})
	if err != nil {
		return err
	}
	fire(effects)
	return nil
}

func (h *handler) Cancel(objectType, objectID, actorUserID, reason string, force bool) error {
	return h.runTx(func(s stores) error {
		inst, err := s.instances.GetActiveByObjectAny(objectType, objectID)
		if err != nil {
			return err
		}
		if inst == nil {
			return newEngineError("no active approval exists for this object")
		}
		if !force && inst.StartedByID != actorUserID {
			return newEngineError("only the initiator can cancel this approval")
		}
		if err := s.requests.SkipPendingByInstance(inst.ID, "Approval cancelled"); err != nil {
			return err
		}
		now := time.Now()
		err = s.instances.Update(inst.ID, map[string]interface{}{
			"status":        models.InstanceCancelled,
			"current_state": models.StateCancelled,
			"completed_at":  now,
		})
		if err != nil {
			return err
		}
		return logTransition(s, inst.ID, inst.CurrentState, models.StateCancelled, &actorUserID, reason, false)
	})
}

func loadPendingRequest(s stores, requestID string) (*dbmodels.ApprovalRequest, *dbmodels.WorkflowInstance, error) {
	req, err := s.requests.GetByID(requestID)
	if err != nil {
		return nil, nil, err
	}
	if req == nil {
		return nil, nil, newEngineError("approval request not found")
	}
	if req.Status != models.RequestPending {
		return nil, nil, newEngineError("the approval request is no longer pending")
	}
	inst := req.Instance
	if inst == nil {
		inst, err = s.instances.GetByID(req.InstanceID)
		if err != nil {
			return nil, nil, err
		}
		if inst == nil {
			return nil, nil, newEngineError("approval instance not found")
		}
	}
	if inst.Status != models.InstanceActive {
		return nil, nil, newEngineError("the approval is not active")
	}
	return req, inst, nil
}

func mayAct(s stores, req *dbmodels.ApprovalRequest, actorUserID string) (bool, error) {
	if req.AssignedToID != nil {
		if *req.AssignedToID == actorUserID {
			return true, nil
		}
		delegation, err := s.delegations.FindActive(*req.AssignedToID, actorUserID, helpers.TruncateToDay(time.Now()))
		if err != nil {
			return false, err
		}
		if delegation != nil {
			return true, nil
		}
	} else if req.AssignedRole != "" {
		codes, err := s.roles.ListRoleCodesForUser(actorUserID)
		if err != nil {
			return false, err
		}
		for _, code := range codes {
			if code == req.AssignedRole {
				return true, nil
			}
		}
	}
	// Administrators can act on any pending request, including one that
	// resolved to no assignee and no role.
	user, err := s.users.GetByID(actorUserID)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role.IsAdmin(), nil
}
