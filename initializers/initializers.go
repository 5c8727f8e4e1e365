package initializers

import (
	"context"

	"hrms-backend/config"
	"hrms-backend/fiberlog"
	authhandler "hrms-backend/lib/auth"
	employeehandler "hrms-backend/lib/employee"
	filestorage "hrms-backend/lib/file-storage"
	financehandler "hrms-backend/lib/finance"
	leavehandler "hrms-backend/lib/leave"
	loanhandler "hrms-backend/lib/loan"
	"hrms-backend/lib/notify"
	orgunithandler "hrms-backend/lib/org-unit"
	payrollhandler "hrms-backend/lib/payroll"
	procurementhandler "hrms-backend/lib/procurement"
	recruitmenthandler "hrms-backend/lib/recruitment"
	roleassignmenthandler "hrms-backend/lib/role-assignment"
	approvalreminderworker "hrms-backend/lib/workers/approval-reminder-worker"
	workflowengine "hrms-backend/lib/workflow/engine"
	workflowpreload "hrms-backend/lib/workflow/preload"
	workflowresolver "hrms-backend/lib/workflow/resolver"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	s3 := InitS3(ctx)
	InitSmtp()

	authhandler.NewHandler()
	notify.NewHandler()
	orgunithandler.NewHandler()
	employeehandler.NewHandler()
	roleassignmenthandler.NewHandler()
	filestorage.NewHandler(s3)

	workflowresolver.NewHandler()
	workflowengine.NewHandler()
	workflowengine.SetNotifier(notify.Instance)

	// Business modules register their workflow sources on construction, so
	// they come after the engine.
	leavehandler.NewHandler()
	loanhandler.NewHandler()
	payrollhandler.NewHandler()
	financehandler.NewHandler()
	procurementhandler.NewHandler()
	recruitmenthandler.NewHandler()

	if *config.Conf.Workflow.SeedOnStart {
		if err := workflowpreload.SeedWorkflows(); err != nil {
			panic(err.Error())
		}
	}

	approvalreminderworker.Start(ctx)
}
