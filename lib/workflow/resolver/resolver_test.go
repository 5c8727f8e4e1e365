package workflowresolver

import (
	"testing"

	orgunitstore "hrms-backend/lib/org-unit/store"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeOrgUnits struct {
	orgunitstore.Provider
	items map[string]*dbmodels.OrgUnit
}

func (f *fakeOrgUnits) GetByID(id string) (*dbmodels.OrgUnit, error) {
	return f.items[id], nil
}

type fakeRoles struct {
	scoped map[string]*dbmodels.RoleAssignment
	global map[string]*dbmodels.RoleAssignment
	any    map[string]*dbmodels.RoleAssignment
}

func (f *fakeRoles) Create(rec dbmodels.RoleAssignment) (string, error) { return "", nil }
func (f *fakeRoles) GetByID(id string) (*dbmodels.RoleAssignment, error) {
	return nil, nil
}
func (f *fakeRoles) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeRoles) FindScoped(roleCode, divisionID string) (*dbmodels.RoleAssignment, error) {
	return f.scoped[roleCode+"/"+divisionID], nil
}
func (f *fakeRoles) FindGlobal(roleCode string) (*dbmodels.RoleAssignment, error) {
	return f.global[roleCode], nil
}
func (f *fakeRoles) FindAny(roleCode string) (*dbmodels.RoleAssignment, error) {
	return f.any[roleCode], nil
}
func (f *fakeRoles) ListByRole(roleCode string) ([]dbmodels.RoleAssignment, error) {
	return nil, nil
}
func (f *fakeRoles) ListRoleCodesForUser(userID string) ([]string, error) {
	return nil, nil
}
func (f *fakeRoles) List() ([]dbmodels.RoleAssignment, error) { return nil, nil }

func employeeWithUser(userID string) *dbmodels.Employee {
	return &dbmodels.Employee{
		UserID: &userID,
	}
}

func newResolver(orgUnits *fakeOrgUnits, roles *fakeRoles) Provider {
	if orgUnits == nil {
		orgUnits = &fakeOrgUnits{items: map[string]*dbmodels.OrgUnit{}}
	}
	if roles == nil {
		roles = &fakeRoles{
			scoped: map[string]*dbmodels.RoleAssignment{},
			global: map[string]*dbmodels.RoleAssignment{},
			any:    map[string]*dbmodels.RoleAssignment{},
		}
	}
	return NewInstance(orgUnits, roles)
}

func TestResolveHierarchy(t *testing.T) {
	t.Run("supervisor", func(t *testing.T) {
		r := newResolver(nil, nil)
		employee := &dbmodels.Employee{
			Supervisor: employeeWithUser("u-sup"),
		}

		userID, err := r.Resolve(employee, dbmodels.ApprovalLevel{ApproverType: models.ApproverSupervisor})
		require.NoError(t, err)
		require.NotNil(t, userID)
		require.Equal(t, "u-sup", *userID)
	})

	t.Run("supervisor missing", func(t *testing.T) {
		r := newResolver(nil, nil)

		userID, err := r.Resolve(&dbmodels.Employee{}, dbmodels.ApprovalLevel{ApproverType: models.ApproverSupervisor})
		require.NoError(t, err)
		require.Nil(t, userID)
	})

	t.Run("division head", func(t *testing.T) {
		r := newResolver(nil, nil)
		employee := &dbmodels.Employee{
			Division: &dbmodels.OrgUnit{
				UnitType: models.OrgUnitDivision,
				Head:     employeeWithUser("u-head"),
			},
		}

		userID, err := r.Resolve(employee, dbmodels.ApprovalLevel{ApproverType: models.ApproverDivisionHead})
		require.NoError(t, err)
		require.Equal(t, "u-head", *userID)
	})

	t.Run("regional director walks up to the region", func(t *testing.T) {
		region := &dbmodels.OrgUnit{
			BaseModel: dbmodels.BaseModel{ID: "region-1"},
			UnitType:  models.OrgUnitRegion,
			Head:      employeeWithUser("u-regional"),
		}
		regionID := region.ID
		district := &dbmodels.OrgUnit{
			BaseModel: dbmodels.BaseModel{ID: "district-1"},
			UnitType:  models.OrgUnitDistrict,
			ParentID:  &regionID,
		}
		orgUnits := &fakeOrgUnits{items: map[string]*dbmodels.OrgUnit{
			"region-1":   region,
			"district-1": district,
		}}
		r := newResolver(orgUnits, nil)
		employee := &dbmodels.Employee{WorkLocation: district}

		userID, err := r.Resolve(employee, dbmodels.ApprovalLevel{ApproverType: models.ApproverRegionalDirector})
		require.NoError(t, err)
		require.NotNil(t, userID)
		require.Equal(t, "u-regional", *userID)
	})

	t.Run("district head from the work location itself", func(t *testing.T) {
		district := &dbmodels.OrgUnit{
			BaseModel: dbmodels.BaseModel{ID: "district-1"},
			UnitType:  models.OrgUnitDistrict,
			Head:      employeeWithUser("u-district"),
		}
		r := newResolver(&fakeOrgUnits{items: map[string]*dbmodels.OrgUnit{"district-1": district}}, nil)
		employee := &dbmodels.Employee{WorkLocation: district}

		userID, err := r.Resolve(employee, dbmodels.ApprovalLevel{ApproverType: models.ApproverDistrictHead})
		require.NoError(t, err)
		require.Equal(t, "u-district", *userID)
	})

	t.Run("no matching ancestor", func(t *testing.T) {
		unit := &dbmodels.OrgUnit{
			BaseModel: dbmodels.BaseModel{ID: "hq"},
			UnitType:  models.OrgUnitHeadquarters,
		}
		r := newResolver(&fakeOrgUnits{items: map[string]*dbmodels.OrgUnit{"hq": unit}}, nil)
		employee := &dbmodels.Employee{WorkLocation: unit}

		userID, err := r.Resolve(employee, dbmodels.ApprovalLevel{ApproverType: models.ApproverRegionalDirector})
		require.NoError(t, err)
		require.Nil(t, userID)
	})
}

func TestResolveRole(t *testing.T) {
	divisionID := "div-1"
	employee := &dbmodels.Employee{DivisionID: &divisionID}

	t.Run("division scoped assignment wins", func(t *testing.T) {
		roles := &fakeRoles{
			scoped: map[string]*dbmodels.RoleAssignment{
				models.RoleFinanceManager + "/div-1": {UserID: "u-scoped"},
			},
			global: map[string]*dbmodels.RoleAssignment{
				models.RoleFinanceManager: {UserID: "u-global"},
			},
			any: map[string]*dbmodels.RoleAssignment{},
		}
		r := newResolver(nil, roles)

		userID, err := r.Resolve(employee, dbmodels.ApprovalLevel{
			ApproverType: models.ApproverRole,
			ApproverRole: models.RoleFinanceManager,
		})
		require.NoError(t, err)
		require.Equal(t, "u-scoped", *userID)
	})

	t.Run("falls back to the global assignment", func(t *testing.T) {
		roles := &fakeRoles{
			scoped: map[string]*dbmodels.RoleAssignment{},
			global: map[string]*dbmodels.RoleAssignment{
				models.RoleFinanceManager: {UserID: "u-global"},
			},
			any: map[string]*dbmodels.RoleAssignment{},
		}
		r := newResolver(nil, roles)

		userID, err := r.Resolve(employee, dbmodels.ApprovalLevel{
			ApproverType: models.ApproverRole,
			ApproverRole: models.RoleFinanceManager,
		})
		require.NoError(t, err)
		require.Equal(t, "u-global", *userID)
	})

	t.Run("falls back to any active assignment", func(t *testing.T) {
		roles := &fakeRoles{
			scoped: map[string]*dbmodels.RoleAssignment{},
			global: map[string]*dbmodels.RoleAssignment{},
			any: map[string]*dbmodels.RoleAssignment{
				models.RoleAuditManager: {UserID: "u-any"},
			},
		}
		r := newResolver(nil, roles)

		userID, err := r.Resolve(employee, dbmodels.ApprovalLevel{
			ApproverType: models.ApproverRole,
			ApproverRole: models.RoleAuditManager,
		})
		require.NoError(t, err)
		require.Equal(t, "u-any", *userID)
	})

	t.Run("ceo resolves through the role assignments", func(t *testing.T) {
		roles := &fakeRoles{
			scoped: map[string]*dbmodels.RoleAssignment{},
			global: map[string]*dbmodels.RoleAssignment{
				models.RoleCEO: {UserID: "u-ceo"},
			},
			any: map[string]*dbmodels.RoleAssignment{},
		}
		r := newResolver(nil, roles)

		userID, err := r.Resolve(employee, dbmodels.ApprovalLevel{ApproverType: models.ApproverCEO})
		require.NoError(t, err)
		require.Equal(t, "u-ceo", *userID)
	})

	t.Run("nobody holds the role", func(t *testing.T) {
		r := newResolver(nil, nil)

		userID, err := r.Resolve(employee, dbmodels.ApprovalLevel{
			ApproverType: models.ApproverRole,
			ApproverRole: models.RoleHRManager,
		})
		require.NoError(t, err)
		require.Nil(t, userID)
	})
}

func TestResolveDirect(t *testing.T) {
	t.Run("fixed user", func(t *testing.T) {
		r := newResolver(nil, nil)
		target := "u-fixed"

		userID, err := r.Resolve(nil, dbmodels.ApprovalLevel{
			ApproverType:   models.ApproverUser,
			ApproverUserID: &target,
		})
		require.NoError(t, err)
		require.Equal(t, "u-fixed", *userID)
	})

	t.Run("dynamic lookup", func(t *testing.T) {
		RegisterLookup("test_hiring_manager", func(employee *dbmodels.Employee) (*string, error) {
			userID := "u-dynamic"
			return &userID, nil
		})
		r := newResolver(nil, nil)

		userID, err := r.Resolve(&dbmodels.Employee{}, dbmodels.ApprovalLevel{
			ApproverType:  models.ApproverDynamic,
			ApproverField: "test_hiring_manager",
		})
		require.NoError(t, err)
		require.Equal(t, "u-dynamic", *userID)
	})

	t.Run("unregistered dynamic lookup resolves to nobody", func(t *testing.T) {
		r := newResolver(nil, nil)

		userID, err := r.Resolve(&dbmodels.Employee{}, dbmodels.ApprovalLevel{
			ApproverType:  models.ApproverDynamic,
			ApproverField: "missing_lookup",
		})
		require.NoError(t, err)
		require.Nil(t, userID)
	})
}
