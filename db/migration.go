package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "hrms-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	for _, model := range []interface{}{
		&dbmodels.User{},
		&dbmodels.OrgUnit{},
		&dbmodels.Employee{},
		&dbmodels.RoleAssignment{},
		&dbmodels.WorkflowDefinition{},
		&dbmodels.WorkflowState{},
		&dbmodels.ApprovalLevel{},
		&dbmodels.WorkflowInstance{},
		&dbmodels.ApprovalRequest{},
		&dbmodels.WorkflowTransitionLog{},
		&dbmodels.ApprovalDelegation{},
		&dbmodels.LeaveType{},
		&dbmodels.LeaveRequest{},
		&dbmodels.LoanAccount{},
		&dbmodels.LoanScheduleEntry{},
		&dbmodels.PayrollRun{},
		&dbmodels.GLAccount{},
		&dbmodels.JournalEntry{},
		&dbmodels.JournalLine{},
		&dbmodels.PurchaseOrder{},
		&dbmodels.PurchaseOrderLine{},
		&dbmodels.GoodsReceipt{},
		&dbmodels.GoodsReceiptLine{},
		&dbmodels.SupplierInvoice{},
		&dbmodels.SupplierInvoiceLine{},
		&dbmodels.JobOffer{},
		&dbmodels.EmployeeDocument{},
	} {
		if err := DB.AutoMigrate(model); err != nil {
			return errors.Wrapf(err, "migration failed for %T", model)
		}
	}

	// A business object may have at most one ACTIVE instance per workflow.
	err := DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_instance_single_active
		ON workflow_instances (workflow_id, object_type, object_id)
		WHERE status = 'ACTIVE'`).Error
	if err != nil {
		return errors.Wrap(err, "failed to create the active-instance index")
	}
	log.Info("migrations finished")
	return nil
}
