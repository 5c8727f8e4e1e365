// Package workflowpreload seeds the standard approval workflow definitions
// on startup. Existing definitions are never touched, so operators can
// publish new versions without them being overwritten.
package workflowpreload

import (
	"hrms-backend/db"
	workflowdefinitionstore "hrms-backend/lib/workflow/definition-store"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func SeedWorkflows() error {
	store := workflowdefinitionstore.NewInstance(db.DB)
	for _, def := range standardWorkflows() {
		existing, err := store.GetByCode(def.Code, def.Version)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if _, err := store.Create(def); err != nil {
			return err
		}
		log.WithField("code", def.Code).Info("workflow definition seeded")
	}
	return nil
}

func standardWorkflows() []dbmodels.WorkflowDefinition {
	return []dbmodels.WorkflowDefinition{
		definition(models.WorkflowLeaveApproval, "Leave Approval", []dbmodels.ApprovalLevel{
			{Level: 1, Name: "Supervisor", ApproverType: models.ApproverSupervisor},
			{Level: 2, Name: "Department Head", ApproverType: models.ApproverDepartmentHead, CanSkip: true, SkipIfSameAsPrevious: true},
			{Level: 3, Name: "HR Manager", ApproverType: models.ApproverRole, ApproverRole: models.RoleHRManager},
		}),
		definition(models.WorkflowLoanApproval, "Staff Loan Approval", []dbmodels.ApprovalLevel{
			{Level: 1, Name: "Supervisor", ApproverType: models.ApproverSupervisor},
			{Level: 2, Name: "Division Head", ApproverType: models.ApproverDivisionHead, CanSkip: true, SkipIfSameAsPrevious: true},
			{Level: 3, Name: "Finance Manager", ApproverType: models.ApproverRole, ApproverRole: models.RoleFinanceManager},
			{Level: 4, Name: "Deputy Commissioner", ApproverType: models.ApproverDCE, SkipIfSameAsPrevious: true},
		}),
		definition(models.WorkflowPayrollApproval, "Payroll Run Approval", []dbmodels.ApprovalLevel{
			{Level: 1, Name: "Finance Manager", ApproverType: models.ApproverRole, ApproverRole: models.RoleFinanceManager},
			{Level: 2, Name: "Deputy Commissioner", ApproverType: models.ApproverDCE},
			{Level: 3, Name: "Commissioner General", ApproverType: models.ApproverCEO},
		}),
		definition(models.WorkflowJobOfferApproval, "Job Offer Approval", []dbmodels.ApprovalLevel{
			{Level: 1, Name: "Hiring Manager", ApproverType: models.ApproverDynamic, ApproverField: "job_offer_hiring_manager"},
			{Level: 2, Name: "HR Manager", ApproverType: models.ApproverRole, ApproverRole: models.RoleHRManager},
			{Level: 3, Name: "Commissioner General", ApproverType: models.ApproverCEO, CanSkip: true},
		}),
		definition(models.WorkflowExitApproval, "Employee Exit Approval", []dbmodels.ApprovalLevel{
			{Level: 1, Name: "Supervisor", ApproverType: models.ApproverSupervisor},
			{Level: 2, Name: "HR Manager", ApproverType: models.ApproverRole, ApproverRole: models.RoleHRManager},
			{Level: 3, Name: "Division Head", ApproverType: models.ApproverDivisionHead, CanSkip: true},
		}),
	}
}

func definition(code, name string, levels []dbmodels.ApprovalLevel) dbmodels.WorkflowDefinition {
	states := make([]dbmodels.WorkflowState, 0, len(models.StandardStateCodes))
	stateNames := map[models.WorkflowStateCode]string{
		models.StateStart:     "Start",
		models.StateApproval:  "Under Approval",
		models.StateEnd:       "Completed",
		models.StateRejected:  "Rejected",
		models.StateCancelled: "Cancelled",
	}
	for _, stateCode := range models.StandardStateCodes {
		states = append(states, dbmodels.WorkflowState{
			Code: stateCode,
			Name: stateNames[stateCode],
		})
	}
	return dbmodels.WorkflowDefinition{
		Code:         code,
		Version:      1,
		Name:         name,
		WorkflowType: models.WorkflowTypeApproval,
		IsActive:     true,
		IsDefault:    true,
		States:       states,
		Levels:       levels,
	}
}
