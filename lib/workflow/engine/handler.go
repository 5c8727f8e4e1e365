// Package workflowengine drives multi-level approval chains: it starts
// instances against registered object types, advances them level by level as
// approvers act, and records every transition.
package workflowengine

import (
	"time"

	"hrms-backend/db"
	employeestore "hrms-backend/lib/employee/store"
	orgunitstore "hrms-backend/lib/org-unit/store"
	roleassignmentstore "hrms-backend/lib/role-assignment/store"
	usersstore "hrms-backend/lib/users/store"
	workflowdefinitionstore "hrms-backend/lib/workflow/definition-store"
	workflowdelegationstore "hrms-backend/lib/workflow/delegation-store"
	workflowinstancestore "hrms-backend/lib/workflow/instance-store"
	workflowlogstore "hrms-backend/lib/workflow/log-store"
	workflowregistry "hrms-backend/lib/workflow/registry"
	workflowrequeststore "hrms-backend/lib/workflow/request-store"
	workflowresolver "hrms-backend/lib/workflow/resolver"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	// StartApproval opens an approval instance for the object under the
	// highest active version of the named workflow.
	StartApproval(objectType, objectID, workflowCode, startedByUserID string) (instanceID string, err error)
	// ProcessAction records an APPROVE, REJECT or RETURN decision on a
	// pending request. DELEGATE is refused here; use Delegate.
	ProcessAction(requestID string, action models.ApprovalAction, actorUserID, comments string) error
	Delegate(requestID, actorUserID, delegateUserID, reason string) error
	// Cancel closes the active instance for the object. Only the initiator
	// may cancel unless force is set.
	Cancel(objectType, objectID, actorUserID, reason string, force bool) error
	// GetPendingForUser returns requests the user can act on: assigned
	// directly, routed via an active delegation, or open to a role the user
	// holds.
	GetPendingForUser(userID string) (list []dbmodels.ApprovalRequest, err error)
	CreateDelegation(rec dbmodels.ApprovalDelegation) (id string, err error)
	ListDelegations(delegatorUserID string) (list []dbmodels.ApprovalDelegation, err error)
	RevokeDelegation(id, actorUserID string) error
	GetStatus(objectType, objectID string) (inst *dbmodels.WorkflowInstance, requests []dbmodels.ApprovalRequest, err error)
	GetHistory(instanceID string) (logs []dbmodels.WorkflowTransitionLog, err error)
	GetStats() (stats *Stats, err error)
}

// Notifier delivers approval events to users. The engine fires it only after
// the surrounding transaction commits.
type Notifier interface {
	ApprovalAssigned(userID, objectTitle, levelName string)
	ApprovalOutcome(userID, objectTitle string, approved bool)
}

type Stats struct {
	ActiveInstances    int64
	CompletedInstances int64
	RejectedInstances  int64
	CancelledInstances int64
	PendingRequests    int64
	ByWorkflow         []workflowinstancestore.WorkflowStatRow
}

var Instance Provider

var notifier Notifier

// SetNotifier wires the notification channel. Safe to leave unset in tests.
func SetNotifier(n Notifier) {
	notifier = n
}

func NewHandler() {
	Instance = &handler{
		view: newStores(db.DB),
		runTx: func(fn func(s stores) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(newStores(tx))
			})
		},
	}
}

type stores struct {
	definitions workflowdefinitionstore.Provider
	instances   workflowinstancestore.Provider
	requests    workflowrequeststore.Provider
	logs        workflowlogstore.Provider
	delegations workflowdelegationstore.Provider
	employees   employeestore.Provider
	orgUnits    orgunitstore.Provider
	roles       roleassignmentstore.Provider
	users       usersstore.Provider
	resolver    workflowresolver.Provider
}

func newStores(tx *gorm.DB) stores {
	orgUnits := orgunitstore.NewInstance(tx)
	roles := roleassignmentstore.NewInstance(tx)
	return stores{
		definitions: workflowdefinitionstore.NewInstance(tx),
		instances:   workflowinstancestore.NewInstance(tx),
		requests:    workflowrequeststore.NewInstance(tx),
		logs:        workflowlogstore.NewInstance(tx),
		delegations: workflowdelegationstore.NewInstance(tx),
		employees:   employeestore.NewInstance(tx),
		orgUnits:    orgUnits,
		roles:       roles,
		users:       usersstore.NewInstance(tx),
		resolver:    workflowresolver.NewInstance(orgUnits, roles),
	}
}

type handler struct {
	// view serves read-only queries outside a transaction.
	view  stores
	runTx func(fn func(s stores) error) error
}

// effect is deferred work fired only after the transaction commits, so
// emails and module callbacks never observe a rolled-back state.
type effect func()

func fire(effects []effect) {
	for _, eff := range effects {
		eff()
	}
}

func (h *handler) StartApproval(objectType, objectID, workflowCode, startedByUserID string) (string, error) {
	src, err := workflowregistry.Get(objectType)
	if err != nil {
		return "", err
	}
	info, err := src.GetInfo(objectID)
	if err != nil {
		return "", err
	}

	var instanceID string
	var effects []effect
	err = h.runTx(func(s stores) error {
		def, err := s.definitions.GetActiveByCode(workflowCode)
		if err != nil {
			return err
		}
		if def == nil {
			return newEngineError("no active workflow definition with code %s", workflowCode)
		}
		existing, err := s.instances.GetActiveByObjectAny(objectType, objectID)
		if err != nil {
			return err
		}
		if existing != nil {
			return newEngineError("an approval is already in progress for this object")
		}
		if err := ensureStandardStates(s, def); err != nil {
			return err
		}

		inst := dbmodels.WorkflowInstance{
			WorkflowID:   def.ID,
			ObjectType:   objectType,
			ObjectID:     objectID,
			CurrentState: models.StateStart,
			Status:       models.InstanceActive,
			StartedByID:  startedByUserID,
		}
		id, err := s.instances.Create(inst)
		if err != nil {
			return err
		}
		inst.ID = id
		instanceID = id
		if err := logTransition(s, id, "", models.StateStart, &startedByUserID, "Approval started", false); err != nil {
			return err
		}

		employee, err := loadEmployee(s, info)
		if err != nil {
			return err
		}
		created, err := h.createNextRequest(s, &inst, def, employee, 0, nil, info, &effects)
		if err != nil {
			return err
		}
		if !created {
			return h.completeInstance(s, &inst, &startedByUserID, "No approval levels required", true, src, info, &effects)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	fire(effects)
	return instanceID, nil
}

// createNextRequest walks the levels above afterLevel and creates the next
// actionable request. Levels whose approver cannot be resolved are skipped
// when allowed; a level whose resolved approver matches prevApproverID is
// skipped when it opts in, with the approver carried forward for the next
// comparison. Returns false when every remaining level was skipped.
func (h *handler) createNextRequest(
	s stores,
	inst *dbmodels.WorkflowInstance,
	def *dbmodels.WorkflowDefinition,
	employee *dbmodels.Employee,
	afterLevel int,
	prevApproverID *string,
	info workflowregistry.ObjectInfo,
	effects *[]effect,
) (created bool, err error) {
	for _, level := range def.Levels {
		if level.Level <= afterLevel {
			continue
		}
		userID, err := s.resolver.Resolve(employee, level)
		if err != nil {
			return false, err
		}
		role := fallbackRole(level)

		if userID == nil && role == "" {
			if level.CanSkip {
				if err := skipLevel(s, inst, level, "No approver resolved"); err != nil {
					return false, err
				}
				continue
			}
			// Nobody to assign; leave the request open for escalation.
			return true, h.openRequest(s, inst, level, nil, "", info, effects)
		}

		if userID == nil {
			if level.CanSkip {
				if err := skipLevel(s, inst, level, "No approver resolved"); err != nil {
					return false, err
				}
				continue
			}
			// No single holder resolved; any holder of the role may act.
			if err := h.openRequest(s, inst, level, nil, role, info, effects); err != nil {
				return false, err
			}
			h.notifyRoleHolders(s, role, info, level.Name, effects)
			return true, nil
		}

		if level.SkipIfSameAsPrevious && prevApproverID != nil && *userID == *prevApproverID {
			if err := skipLevel(s, inst, level, "Same approver as previous level"); err != nil {
				return false, err
			}
			continue
		}

		return true, h.openRequest(s, inst, level, userID, role, info, effects)
	}
	return false, nil
}

func (h *handler) openRequest(
	s stores,
	inst *dbmodels.WorkflowInstance,
	level dbmodels.ApprovalLevel,
	userID *string,
	role string,
	info workflowregistry.ObjectInfo,
	effects *[]effect,
) error {
	req := dbmodels.ApprovalRequest{
		InstanceID:   inst.ID,
		LevelNumber:  level.Level,
		LevelName:    level.Name,
		AssignedToID: userID,
		AssignedRole: role,
		Status:       models.RequestPending,
	}
	if _, err := s.requests.Create(req); err != nil {
		return err
	}
	err := s.instances.Update(inst.ID, map[string]interface{}{
		"current_state": models.StateApproval,
		"current_level": level.Level,
	})
	if err != nil {
		return err
	}
	fromState := inst.CurrentState
	inst.CurrentState = models.StateApproval
	inst.CurrentLevel = level.Level
	err = logTransition(s, inst.ID, fromState, models.StateApproval, nil,
		"Awaiting "+level.Name, true)
	if err != nil {
		return err
	}
	if userID != nil {
		assignee := *userID
		title := info.Title
		levelName := level.Name
		*effects = append(*effects, func() {
			if notifier != nil {
				notifier.ApprovalAssigned(assignee, title, levelName)
			}
		})
	}
	return nil
}

func (h *handler) notifyRoleHolders(s stores, role string, info workflowregistry.ObjectInfo, levelName string, effects *[]effect) {
	holders, err := s.roles.ListByRole(role)
	if err != nil {
		log.WithField("role", role).
			WithError(err).
			Error("can not list role holders for notification")
		return
	}
	for _, holder := range holders {
		assignee := holder.UserID
		title := info.Title
		*effects = append(*effects, func() {
			if notifier != nil {
				notifier.ApprovalAssigned(assignee, title, levelName)
			}
		})
	}
}

func skipLevel(s stores, inst *dbmodels.WorkflowInstance, level dbmodels.ApprovalLevel, comment string) error {
	req := dbmodels.ApprovalRequest{
		InstanceID:  inst.ID,
		LevelNumber: level.Level,
		LevelName:   level.Name,
		Status:      models.RequestSkipped,
		Comments:    comment,
	}
	if _, err := s.requests.Create(req); err != nil {
		return err
	}
	return logTransition(s, inst.ID, inst.CurrentState, inst.CurrentState, nil,
		"Skipped "+level.Name+": "+comment, true)
}

func (h *handler) completeInstance(
	s stores,
	inst *dbmodels.WorkflowInstance,
	actorID *string,
	comments string,
	automatic bool,
	src workflowregistry.Source,
	info workflowregistry.ObjectInfo,
	effects *[]effect,
) error {
	now := time.Now()
	err := s.instances.Update(inst.ID, map[string]interface{}{
		"status":        models.InstanceCompleted,
		"current_state": models.StateEnd,
		"completed_at":  now,
	})
	if err != nil {
		return err
	}
	if err := logTransition(s, inst.ID, inst.CurrentState, models.StateEnd, actorID, comments, automatic); err != nil {
		return err
	}
	objectID := inst.ObjectID
	starter := inst.StartedByID
	title := info.Title
	*effects = append(*effects, func() {
		if err := src.OnApproved(objectID); err != nil {
			log.WithField("objectId", objectID).
				WithError(err).
				Error("approval completion callback failed")
		}
		if notifier != nil {
			notifier.ApprovalOutcome(starter, title, true)
		}
	})
	return nil
}

func (h *handler) rejectInstance(
	s stores,
	inst *dbmodels.WorkflowInstance,
	actorID *string,
	comments string,
	src workflowregistry.Source,
	info workflowregistry.ObjectInfo,
	effects *[]effect,
) error {
	now := time.Now()
	err := s.instances.Update(inst.ID, map[string]interface{}{
		"status":        models.InstanceRejected,
		"current_state": models.StateRejected,
		"completed_at":  now,
	})
	if err != nil {
		return err
	}
	if err := logTransition(s, inst.ID, inst.CurrentState, models.StateRejected, actorID, comments, false); err != nil {
		return err
	}
	objectID := inst.ObjectID
	starter := inst.StartedByID
	title := info.Title
	*effects = append(*effects, func() {
		if err := src.OnRejected(objectID); err != nil {
			log.WithField("objectId", objectID).
				WithError(err).
				Error("approval rejection callback failed")
		}
		if notifier != nil {
			notifier.ApprovalOutcome(starter, title, false)
		}
	})
	return nil
}

func logTransition(s stores, instanceID string, from, to models.WorkflowStateCode, actorID *string, comments string, automatic bool) error {
	_, err := s.logs.Create(dbmodels.WorkflowTransitionLog{
		InstanceID:  instanceID,
		FromState:   from,
		ToState:     to,
		ActorID:     actorID,
		Comments:    comments,
		IsAutomatic: automatic,
	})
	return err
}

func ensureStandardStates(s stores, def *dbmodels.WorkflowDefinition) error {
	existing := map[models.WorkflowStateCode]bool{}
	for _, state := range def.States {
		existing[state.Code] = true
	}
	for _, code := range models.StandardStateCodes {
		if existing[code] {
			continue
		}
		_, err := s.definitions.CreateState(dbmodels.WorkflowState{
			WorkflowID: def.ID,
			Code:       code,
			Name:       stateName(code),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

var stateHumanName = map[models.WorkflowStateCode]string{
	models.StateStart:     "Start",
	models.StateApproval:  "Under Approval",
	models.StateEnd:       "Completed",
	models.StateRejected:  "Rejected",
	models.StateCancelled: "Cancelled",
}

func stateName(code models.WorkflowStateCode) string {
	if name, exist := stateHumanName[code]; exist {
		return name
	}
	return string(code)
}

// fallbackRole is the role any holder of which may act on the level when no
// single approver is resolved.
func fallbackRole(level dbmodels.ApprovalLevel) string {
	switch level.ApproverType {
	case models.ApproverRole:
		return level.ApproverRole
	case models.ApproverDCE:
		return models.RoleDCE
	case models.ApproverCEO:
		return models.RoleCEO
	}
	return ""
}

func loadEmployee(s stores, info workflowregistry.ObjectInfo) (*dbmodels.Employee, error) {
	if info.EmployeeID == "" {
		return nil, nil
	}
	employee, err := s.employees.GetForResolution(info.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, errors.Errorf("employee %s not found", info.EmployeeID)
	}
	return employee, nil
}
