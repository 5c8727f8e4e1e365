package workflowengine

import (
	"testing"
	"time"

	usersstore "hrms-backend/lib/users/store"
	workflowdefinitionstore "hrms-backend/lib/workflow/definition-store"
	workflowdelegationstore "hrms-backend/lib/workflow/delegation-store"
	workflowinstancestore "hrms-backend/lib/workflow/instance-store"
	workflowlogstore "hrms-backend/lib/workflow/log-store"
	workflowregistry "hrms-backend/lib/workflow/registry"
	workflowrequeststore "hrms-backend/lib/workflow/request-store"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeDefStore struct {
	workflowdefinitionstore.Provider
	def    *dbmodels.WorkflowDefinition
	states []dbmodels.WorkflowState
}

func (f *fakeDefStore) GetActiveByCode(code string) (*dbmodels.WorkflowDefinition, error) {
	if f.def != nil && f.def.Code == code && f.def.IsActive {
		return f.def, nil
	}
	return nil, nil
}

func (f *fakeDefStore) GetByID(id string) (*dbmodels.WorkflowDefinition, error) {
	if f.def != nil && f.def.ID == id {
		return f.def, nil
	}
	return nil, nil
}

func (f *fakeDefStore) CreateState(rec dbmodels.WorkflowState) (string, error) {
	rec.ID = uuid.NewString()
	f.states = append(f.states, rec)
	return rec.ID, nil
}

type fakeInstanceStore struct {
	workflowinstancestore.Provider
	items map[string]*dbmodels.WorkflowInstance
}

func (f *fakeInstanceStore) Create(rec dbmodels.WorkflowInstance) (string, error) {
	rec.ID = uuid.NewString()
	f.items[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeInstanceStore) GetByID(id string) (*dbmodels.WorkflowInstance, error) {
	return f.items[id], nil
}

func (f *fakeInstanceStore) GetActiveByObjectAny(objectType, objectID string) (*dbmodels.WorkflowInstance, error) {
	for _, inst := range f.items {
		if inst.ObjectType == objectType && inst.ObjectID == objectID && inst.Status == models.InstanceActive {
			return inst, nil
		}
	}
	return nil, nil
}

func (f *fakeInstanceStore) Update(id string, updMap map[string]interface{}) error {
	inst, exist := f.items[id]
	if !exist {
		return nil
	}
	if v, ok := updMap["status"]; ok {
		inst.Status = v.(models.InstanceStatus)
	}
	if v, ok := updMap["current_state"]; ok {
		inst.CurrentState = v.(models.WorkflowStateCode)
	}
	if v, ok := updMap["current_level"]; ok {
		inst.CurrentLevel = v.(int)
	}
	if v, ok := updMap["completed_at"]; ok {
		at := v.(time.Time)
		inst.CompletedAt = &at
	}
	return nil
}

type fakeRequestStore struct {
	workflowrequeststore.Provider
	items     []*dbmodels.ApprovalRequest
	instances *fakeInstanceStore
}

func (f *fakeRequestStore) Create(rec dbmodels.ApprovalRequest) (string, error) {
	rec.ID = uuid.NewString()
	f.items = append(f.items, &rec)
	return rec.ID, nil
}

func (f *fakeRequestStore) GetByID(id string) (*dbmodels.ApprovalRequest, error) {
	for _, req := range f.items {
		if req.ID == id {
			req.Instance = f.instances.items[req.InstanceID]
			return req, nil
		}
	}
	return nil, nil
}

func (f *fakeRequestStore) UpdateWhereStatus(id string, expected models.RequestStatus, updMap map[string]interface{}) (bool, error) {
	for _, req := range f.items {
		if req.ID != id {
			continue
		}
		if req.Status != expected {
			return false, nil
		}
		if v, ok := updMap["status"]; ok {
			req.Status = v.(models.RequestStatus)
		}
		if v, ok := updMap["comments"]; ok {
			req.Comments = v.(string)
		}
		if v, ok := updMap["responded_at"]; ok {
			at := v.(time.Time)
			req.RespondedAt = &at
		}
		if v, ok := updMap["responded_by_id"]; ok {
			by := v.(string)
			req.RespondedByID = &by
		}
		if v, ok := updMap["delegated_to_id"]; ok {
			to := v.(string)
			req.DelegatedToID = &to
		}
		if v, ok := updMap["delegation_reason"]; ok {
			req.DelegationReason = v.(string)
		}
		return true, nil
	}
	return false, nil
}

func (f *fakeRequestStore) ListByInstance(instanceID string) ([]dbmodels.ApprovalRequest, error) {
	list := []dbmodels.ApprovalRequest{}
	for _, req := range f.items {
		if req.InstanceID == instanceID {
			list = append(list, *req)
		}
	}
	return list, nil
}

func (f *fakeRequestStore) SkipPendingByInstance(instanceID, comment string) error {
	for _, req := range f.items {
		if req.InstanceID == instanceID && req.Status == models.RequestPending {
			req.Status = models.RequestSkipped
			req.Comments = comment
		}
	}
	return nil
}

func (f *fakeRequestStore) CountPending() (int64, error) {
	var count int64
	for _, req := range f.items {
		if req.Status == models.RequestPending {
			count++
		}
	}
	return count, nil
}

func (f *fakeRequestStore) pendingFor(instanceID string) []*dbmodels.ApprovalRequest {
	pending := []*dbmodels.ApprovalRequest{}
	for _, req := range f.items {
		if req.InstanceID == instanceID && req.Status == models.RequestPending {
			pending = append(pending, req)
		}
	}
	return pending
}

type fakeLogStore struct {
	workflowlogstore.Provider
	items []dbmodels.WorkflowTransitionLog
}

func (f *fakeLogStore) Create(rec dbmodels.WorkflowTransitionLog) (string, error) {
	rec.ID = uuid.NewString()
	f.items = append(f.items, rec)
	return rec.ID, nil
}

func (f *fakeLogStore) ListByInstance(instanceID string) ([]dbmodels.WorkflowTransitionLog, error) {
	list := []dbmodels.WorkflowTransitionLog{}
	for _, entry := range f.items {
		if entry.InstanceID == instanceID {
			list = append(list, entry)
		}
	}
	return list, nil
}

type fakeDelegationStore struct {
	workflowdelegationstore.Provider
	active []dbmodels.ApprovalDelegation
}

func (f *fakeDelegationStore) FindActive(delegatorID, delegateID string, day time.Time) (*dbmodels.ApprovalDelegation, error) {
	for idx := range f.active {
		d := f.active[idx]
		if d.DelegatorID == delegatorID && d.DelegateID == delegateID && d.CoversDate(day) {
			return &d, nil
		}
	}
	return nil, nil
}

type fakeRoleStore struct {
	userRoles map[string][]string
	holders   map[string][]dbmodels.RoleAssignment
}

func (f *fakeRoleStore) Create(rec dbmodels.RoleAssignment) (string, error) { return "", nil }
func (f *fakeRoleStore) GetByID(id string) (*dbmodels.RoleAssignment, error) {
	return nil, nil
}
func (f *fakeRoleStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeRoleStore) FindScoped(roleCode, divisionID string) (*dbmodels.RoleAssignment, error) {
	return nil, nil
}
func (f *fakeRoleStore) FindGlobal(roleCode string) (*dbmodels.RoleAssignment, error) {
	return nil, nil
}
func (f *fakeRoleStore) FindAny(roleCode string) (*dbmodels.RoleAssignment, error) {
	return nil, nil
}
func (f *fakeRoleStore) ListByRole(roleCode string) ([]dbmodels.RoleAssignment, error) {
	return f.holders[roleCode], nil
}
func (f *fakeRoleStore) ListRoleCodesForUser(userID string) ([]string, error) {
	return f.userRoles[userID], nil
}
func (f *fakeRoleStore) List() ([]dbmodels.RoleAssignment, error) { return nil, nil }

type fakeUserStore struct {
	usersstore.Provider
	admins map[string]bool
}

func (f *fakeUserStore) GetByID(id string) (*dbmodels.User, error) {
	role := models.EmployeeRole
	if f.admins[id] {
		role = models.AdminRole
	}
	return &dbmodels.User{BaseModel: dbmodels.BaseModel{ID: id}, Role: role}, nil
}

type stubResolver struct {
	byLevel map[int]*string
}

func (r stubResolver) Resolve(employee *dbmodels.Employee, level dbmodels.ApprovalLevel) (*string, error) {
	return r.byLevel[level.Level], nil
}

type testSource struct {
	info     workflowregistry.ObjectInfo
	approved []string
	rejected []string
}

func (s *testSource) GetInfo(objectID string) (workflowregistry.ObjectInfo, error) {
	return s.info, nil
}

func (s *testSource) OnApproved(objectID string) error {
	s.approved = append(s.approved, objectID)
	return nil
}

func (s *testSource) OnRejected(objectID string) error {
	s.rejected = append(s.rejected, objectID)
	return nil
}

type engineEnv struct {
	h           *handler
	defs        *fakeDefStore
	instances   *fakeInstanceStore
	requests    *fakeRequestStore
	logs        *fakeLogStore
	delegations *fakeDelegationStore
	roles       *fakeRoleStore
	users       *fakeUserStore
	source      *testSource
	objectType  string
}

func newEngineEnv(def *dbmodels.WorkflowDefinition, byLevel map[int]*string) *engineEnv {
	env := &engineEnv{
		defs:        &fakeDefStore{def: def},
		instances:   &fakeInstanceStore{items: map[string]*dbmodels.WorkflowInstance{}},
		logs:        &fakeLogStore{},
		delegations: &fakeDelegationStore{},
		roles: &fakeRoleStore{
			userRoles: map[string][]string{},
			holders:   map[string][]dbmodels.RoleAssignment{},
		},
		users: &fakeUserStore{admins: map[string]bool{}},
		source:     &testSource{info: workflowregistry.ObjectInfo{Title: "Annual leave of J. Mensah"}},
		objectType: "TEST_OBJECT_" + uuid.NewString(),
	}
	env.requests = &fakeRequestStore{instances: env.instances}
	workflowregistry.Register(env.objectType, env.source)

	s := stores{
		definitions: env.defs,
		instances:   env.instances,
		requests:    env.requests,
		logs:        env.logs,
		delegations: env.delegations,
		roles:       env.roles,
		users:       env.users,
		resolver:    stubResolver{byLevel: byLevel},
	}
	env.h = &handler{
		view: s,
		runTx: func(fn func(s stores) error) error {
			return fn(s)
		},
	}
	return env
}

func testDefinition(levels ...dbmodels.ApprovalLevel) *dbmodels.WorkflowDefinition {
	return &dbmodels.WorkflowDefinition{
		BaseModel:    dbmodels.BaseModel{ID: uuid.NewString()},
		Code:         "TEST_FLOW",
		Version:      1,
		Name:         "Test flow",
		WorkflowType: models.WorkflowTypeApproval,
		IsActive:     true,
		Levels:       levels,
	}
}

func level(num int, name string) dbmodels.ApprovalLevel {
	return dbmodels.ApprovalLevel{
		BaseModel:    dbmodels.BaseModel{ID: uuid.NewString()},
		Level:        num,
		Name:         name,
		ApproverType: models.ApproverSupervisor,
	}
}

func strPtr(s string) *string {
	return &s
}

func TestStartApproval(t *testing.T) {
	t.Run("creates first pending request", func(t *testing.T) {
		def := testDefinition(level(1, "Supervisor"), level(2, "Division Head"))
		env := newEngineEnv(def, map[int]*string{1: strPtr("u-sup"), 2: strPtr("u-head")})

		instanceID, err := env.h.StartApproval(env.objectType, "obj-1", "TEST_FLOW", "u-owner")
		require.NoError(t, err)
		require.NotEmpty(t, instanceID)

		inst := env.instances.items[instanceID]
		require.Equal(t, models.InstanceActive, inst.Status)
		require.Equal(t, models.StateApproval, inst.CurrentState)
		require.Equal(t, 1, inst.CurrentLevel)

		pending := env.requests.pendingFor(instanceID)
		require.Len(t, pending, 1)
		require.Equal(t, 1, pending[0].LevelNumber)
		require.Equal(t, "u-sup", *pending[0].AssignedToID)
		require.NotEmpty(t, env.logs.items)
	})

	t.Run("refuses a second active approval for the same object", func(t *testing.T) {
		def := testDefinition(level(1, "Supervisor"))
		env := newEngineEnv(def, map[int]*string{1: strPtr("u-sup")})

		_, err := env.h.StartApproval(env.objectType, "obj-1", "TEST_FLOW", "u-owner")
		require.NoError(t, err)

		_, err = env.h.StartApproval(env.objectType, "obj-1", "TEST_FLOW", "u-owner")
		require.Error(t, err)
		require.True(t, IsEngineError(err))
	})

	t.Run("unknown workflow code", func(t *testing.T) {
		def := testDefinition(level(1, "Supervisor"))
		env := newEngineEnv(def, map[int]*string{1: strPtr("u-sup")})

		_, err := env.h.StartApproval(env.objectType, "obj-1", "MISSING_FLOW", "u-owner")
		require.Error(t, err)
		require.True(t, IsEngineError(err))
	})

	t.Run("auto completes when every level is skippable and unresolved", func(t *testing.T) {
		first := level(1, "Supervisor")
		first.CanSkip = true
		second := level(2, "Division Head")
		second.CanSkip = true
		def := testDefinition(first, second)
		env := newEngineEnv(def, map[int]*string{})

		instanceID, err := env.h.StartApproval(env.objectType, "obj-2", "TEST_FLOW", "u-owner")
		require.NoError(t, err)

		inst := env.instances.items[instanceID]
		require.Equal(t, models.InstanceCompleted, inst.Status)
		require.Equal(t, models.StateEnd, inst.CurrentState)
		require.NotNil(t, inst.CompletedAt)
		require.Equal(t, []string{"obj-2"}, env.source.approved)

		all, err := env.requests.ListByInstance(instanceID)
		require.NoError(t, err)
		require.Len(t, all, 2)
		for _, req := range all {
			require.Equal(t, models.RequestSkipped, req.Status)
			require.Equal(t, "No approver resolved", req.Comments)
		}
	})

	t.Run("unresolved level without skip stays pending unassigned", func(t *testing.T) {
		def := testDefinition(level(1, "Supervisor"))
		env := newEngineEnv(def, map[int]*string{})

		instanceID, err := env.h.StartApproval(env.objectType, "obj-3", "TEST_FLOW", "u-owner")
		require.NoError(t, err)

		pending := env.requests.pendingFor(instanceID)
		require.Len(t, pending, 1)
		require.Nil(t, pending[0].AssignedToID)
		require.Empty(t, pending[0].AssignedRole)
		require.Equal(t, models.InstanceActive, env.instances.items[instanceID].Status)
	})
}

func TestProcessAction(t *testing.T) {
	setup := func() (*engineEnv, string) {
		def := testDefinition(level(1, "Supervisor"), level(2, "Division Head"))
		env := newEngineEnv(def, map[int]*string{1: strPtr("u1"), 2: strPtr("u2")})
		instanceID, err := env.h.StartApproval(env.objectType, "obj-1", "TEST_FLOW", "u-owner")
		if err != nil {
			panic(err)
		}
		return env, instanceID
	}

	t.Run("approve advances to the next level", func(t *testing.T) {
		env, instanceID := setup()
		first := env.requests.pendingFor(instanceID)[0]

		err := env.h.ProcessAction(first.ID, models.ActionApprove, "u1", "ok")
		require.NoError(t, err)

		require.Equal(t, models.RequestApproved, first.Status)
		require.Equal(t, "u1", *first.RespondedByID)
		pending := env.requests.pendingFor(instanceID)
		require.Len(t, pending, 1)
		require.Equal(t, 2, pending[0].LevelNumber)
		require.Equal(t, "u2", *pending[0].AssignedToID)
		require.Equal(t, 2, env.instances.items[instanceID].CurrentLevel)
	})

	t.Run("final approve completes the instance", func(t *testing.T) {
		env, instanceID := setup()
		first := env.requests.pendingFor(instanceID)[0]
		require.NoError(t, env.h.ProcessAction(first.ID, models.ActionApprove, "u1", ""))
		second := env.requests.pendingFor(instanceID)[0]
		require.NoError(t, env.h.ProcessAction(second.ID, models.ActionApprove, "u2", ""))

		inst := env.instances.items[instanceID]
		require.Equal(t, models.InstanceCompleted, inst.Status)
		require.Equal(t, models.StateEnd, inst.CurrentState)
		require.Equal(t, []string{"obj-1"}, env.source.approved)
	})

	t.Run("reject closes the instance", func(t *testing.T) {
		env, instanceID := setup()
		first := env.requests.pendingFor(instanceID)[0]

		err := env.h.ProcessAction(first.ID, models.ActionReject, "u1", "not justified")
		require.NoError(t, err)

		inst := env.instances.items[instanceID]
		require.Equal(t, models.InstanceRejected, inst.Status)
		require.Equal(t, models.StateRejected, inst.CurrentState)
		require.Equal(t, []string{"obj-1"}, env.source.rejected)
	})

	t.Run("stranger can not act", func(t *testing.T) {
		env, instanceID := setup()
		first := env.requests.pendingFor(instanceID)[0]

		err := env.h.ProcessAction(first.ID, models.ActionApprove, "u-stranger", "")
		require.Error(t, err)
		require.True(t, IsEngineError(err))
		require.Equal(t, models.RequestPending, first.Status)
	})

	t.Run("delegate of the assignee can act", func(t *testing.T) {
		env, instanceID := setup()
		env.delegations.active = append(env.delegations.active, dbmodels.ApprovalDelegation{
			DelegatorID: "u1",
			DelegateID:  "u-deputy",
			StartDate:   time.Now().AddDate(0, 0, -1),
			EndDate:     time.Now().AddDate(0, 0, 1),
			IsActive:    true,
		})
		first := env.requests.pendingFor(instanceID)[0]

		err := env.h.ProcessAction(first.ID, models.ActionApprove, "u-deputy", "")
		require.NoError(t, err)
		require.Equal(t, models.RequestApproved, first.Status)
	})

	t.Run("admin can act on a request assigned to someone else", func(t *testing.T) {
		env, instanceID := setup()
		env.users.admins["u-admin"] = true
		first := env.requests.pendingFor(instanceID)[0]

		err := env.h.ProcessAction(first.ID, models.ActionApprove, "u-admin", "administrative approval")
		require.NoError(t, err)
		require.Equal(t, models.RequestApproved, first.Status)
		require.Equal(t, "u-admin", *first.RespondedByID)
	})

	t.Run("role holder can act on an unassigned role request", func(t *testing.T) {
		lvl := level(1, "Finance Manager")
		lvl.ApproverType = models.ApproverRole
		lvl.ApproverRole = models.RoleFinanceManager
		def := testDefinition(lvl)
		env := newEngineEnv(def, map[int]*string{})
		env.roles.userRoles["u-fin"] = []string{models.RoleFinanceManager}

		instanceID, err := env.h.StartApproval(env.objectType, "obj-1", "TEST_FLOW", "u-owner")
		require.NoError(t, err)
		pending := env.requests.pendingFor(instanceID)
		require.Len(t, pending, 1)
		require.Nil(t, pending[0].AssignedToID)
		require.Equal(t, models.RoleFinanceManager, pending[0].AssignedRole)

		err = env.h.ProcessAction(pending[0].ID, models.ActionApprove, "u-fin", "")
		require.NoError(t, err)
		require.Equal(t, models.InstanceCompleted, env.instances.items[instanceID].Status)
	})

	t.Run("skips a level whose approver matches the previous one", func(t *testing.T) {
		second := level(2, "Division Head")
		second.SkipIfSameAsPrevious = true
		def := testDefinition(level(1, "Supervisor"), second, level(3, "CEO"))
		env := newEngineEnv(def, map[int]*string{
			1: strPtr("u-same"),
			2: strPtr("u-same"),
			3: strPtr("u-ceo"),
		})
		instanceID, err := env.h.StartApproval(env.objectType, "obj-1", "TEST_FLOW", "u-owner")
		require.NoError(t, err)

		first := env.requests.pendingFor(instanceID)[0]
		require.NoError(t, env.h.ProcessAction(first.ID, models.ActionApprove, "u-same", ""))

		pending := env.requests.pendingFor(instanceID)
		require.Len(t, pending, 1)
		require.Equal(t, 3, pending[0].LevelNumber)
		require.Equal(t, "u-ceo", *pending[0].AssignedToID)

		all, err := env.requests.ListByInstance(instanceID)
		require.NoError(t, err)
		var skipped *dbmodels.ApprovalRequest
		for idx := range all {
			if all[idx].LevelNumber == 2 {
				skipped = &all[idx]
			}
		}
		require.NotNil(t, skipped)
		require.Equal(t, models.RequestSkipped, skipped.Status)
		require.Equal(t, "Same approver as previous level", skipped.Comments)
	})

	t.Run("return from the first level rejects", func(t *testing.T) {
		env, instanceID := setup()
		first := env.requests.pendingFor(instanceID)[0]

		err := env.h.ProcessAction(first.ID, models.ActionReturn, "u1", "missing attachment")
		require.NoError(t, err)
		require.Equal(t, models.InstanceRejected, env.instances.items[instanceID].Status)
		require.Equal(t, []string{"obj-1"}, env.source.rejected)
	})

	t.Run("return reopens the previous approved level", func(t *testing.T) {
		env, instanceID := setup()
		first := env.requests.pendingFor(instanceID)[0]
		require.NoError(t, env.h.ProcessAction(first.ID, models.ActionApprove, "u1", ""))
		second := env.requests.pendingFor(instanceID)[0]

		err := env.h.ProcessAction(second.ID, models.ActionReturn, "u2", "needs rework")
		require.NoError(t, err)

		inst := env.instances.items[instanceID]
		require.Equal(t, models.InstanceActive, inst.Status)
		require.Equal(t, 1, inst.CurrentLevel)
		pending := env.requests.pendingFor(instanceID)
		require.Len(t, pending, 1)
		require.Equal(t, 1, pending[0].LevelNumber)
		require.Equal(t, "u1", *pending[0].AssignedToID)
	})

	t.Run("delegate action is refused here", func(t *testing.T) {
		env, instanceID := setup()
		first := env.requests.pendingFor(instanceID)[0]

		err := env.h.ProcessAction(first.ID, models.ActionDelegate, "u1", "")
		require.Error(t, err)
		require.True(t, IsEngineError(err))
	})

	t.Run("unknown request", func(t *testing.T) {
		env, _ := setup()

		err := env.h.ProcessAction(uuid.NewString(), models.ActionApprove, "u1", "")
		require.Error(t, err)
		require.True(t, IsEngineError(err))
	})
}

func TestDelegate(t *testing.T) {
	setup := func() (*engineEnv, string) {
		def := testDefinition(level(1, "Supervisor"))
		env := newEngineEnv(def, map[int]*string{1: strPtr("u1")})
		instanceID, err := env.h.StartApproval(env.objectType, "obj-1", "TEST_FLOW", "u-owner")
		if err != nil {
			panic(err)
		}
		return env, instanceID
	}

	t.Run("hands the request to the delegate", func(t *testing.T) {
		env, instanceID := setup()
		first := env.requests.pendingFor(instanceID)[0]

		err := env.h.Delegate(first.ID, "u1", "u-deputy", "on leave")
		require.NoError(t, err)

		require.Equal(t, models.RequestDelegated, first.Status)
		require.Equal(t, "u-deputy", *first.DelegatedToID)
		require.Equal(t, "on leave", first.DelegationReason)

		pending := env.requests.pendingFor(instanceID)
		require.Len(t, pending, 1)
		require.Equal(t, "u-deputy", *pending[0].AssignedToID)
		require.Equal(t, first.LevelNumber, pending[0].LevelNumber)
	})

	t.Run("refuses delegation to yourself", func(t *testing.T) {
		env, instanceID := setup()
		first := env.requests.pendingFor(instanceID)[0]

		err := env.h.Delegate(first.ID, "u1", "u1", "")
		require.Error(t, err)
		require.True(t, IsEngineError(err))
	})

	t.Run("stranger can not delegate", func(t *testing.T) {
		env, instanceID := setup()
		first := env.requests.pendingFor(instanceID)[0]

		err := env.h.Delegate(first.ID, "u-stranger", "u-deputy", "")
		require.Error(t, err)
		require.True(t, IsEngineError(err))
		require.Equal(t, models.RequestPending, first.Status)
	})
}

func TestCancel(t *testing.T) {
	setup := func() (*engineEnv, string) {
		def := testDefinition(level(1, "Supervisor"))
		env := newEngineEnv(def, map[int]*string{1: strPtr("u1")})
		instanceID, err := env.h.StartApproval(env.objectType, "obj-1", "TEST_FLOW", "u-owner")
		if err != nil {
			panic(err)
		}
		return env, instanceID
	}

	t.Run("initiator cancels and pending requests are skipped", func(t *testing.T) {
		env, instanceID := setup()

		err := env.h.Cancel(env.objectType, "obj-1", "u-owner", "changed my mind", false)
		require.NoError(t, err)

		inst := env.instances.items[instanceID]
		require.Equal(t, models.InstanceCancelled, inst.Status)
		require.Equal(t, models.StateCancelled, inst.CurrentState)
		require.Empty(t, env.requests.pendingFor(instanceID))
	})

	t.Run("stranger can not cancel without force", func(t *testing.T) {
		env, _ := setup()

		err := env.h.Cancel(env.objectType, "obj-1", "u-stranger", "", false)
		require.Error(t, err)
		require.True(t, IsEngineError(err))

		err = env.h.Cancel(env.objectType, "obj-1", "u-stranger", "administrative close", true)
		require.NoError(t, err)
	})

	t.Run("no active instance", func(t *testing.T) {
		env, _ := setup()
		require.NoError(t, env.h.Cancel(env.objectType, "obj-1", "u-owner", "", false))

		err := env.h.Cancel(env.objectType, "obj-1", "u-owner", "", false)
		require.Error(t, err)
		require.True(t, IsEngineError(err))
	})
}
