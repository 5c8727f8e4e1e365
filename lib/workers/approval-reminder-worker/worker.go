// Package approvalreminderworker periodically re-notifies approvers who sit
// on a pending request and escalates requests nobody is assigned to.
package approvalreminderworker

import (
	"context"
	"fmt"
	"time"

	"hrms-backend/config"
	"hrms-backend/db"
	"hrms-backend/lib/notify"
	baseworker "hrms-backend/lib/utils/base-worker"
	workflowregistry "hrms-backend/lib/workflow/registry"
	workflowrequeststore "hrms-backend/lib/workflow/request-store"
	dbmodels "hrms-backend/models/db"
)

func Start(ctx context.Context) {
	worker := baseworker.NewInstance("approval-reminder-worker", 1*time.Minute, 1*time.Hour)
	requests := workflowrequeststore.NewInstance(db.DB)
	go worker.Run(ctx, func(ctx context.Context) {
		runOnce(worker, requests)
	})
}

func runOnce(worker *baseworker.BaseImpl, requests workflowrequeststore.Provider) {
	logger := worker.GetLogger()

	stale, err := requests.ListPendingOlderThanHours(config.Conf.Workflow.ReminderAfterHours)
	if err != nil {
		logger.WithError(err).Error("can not load stale approval requests")
		return
	}
	for _, req := range stale {
		if req.AssignedToID == nil {
			continue
		}
		notify.Instance.ApprovalAssigned(*req.AssignedToID, requestTitle(req), req.LevelName)
	}
	if len(stale) > 0 {
		logger.WithField("count", len(stale)).Info("approval reminders sent")
	}

	unassigned, err := requests.ListPendingUnassigned()
	if err != nil {
		logger.WithError(err).Error("can not load unassigned approval requests")
		return
	}
	for _, req := range unassigned {
		notify.Instance.EscalateToAdmins(
			"Approval request without an approver",
			fmt.Sprintf("%q is stuck at the %s level: no approver could be resolved. "+
				"Assign a delegation or fix the role assignments.",
				requestTitle(req), req.LevelName))
	}
}

func requestTitle(req dbmodels.ApprovalRequest) string {
	if req.Instance == nil {
		return "An approval request"
	}
	source, err := workflowregistry.Get(req.Instance.ObjectType)
	if err == nil {
		info, err := source.GetInfo(req.Instance.ObjectID)
		if err == nil && info.Title != "" {
			return info.Title
		}
	}
	if req.Instance.Workflow != nil {
		return req.Instance.Workflow.Name
	}
	return "An approval request"
}
