// Package workflowresolver turns an approval level definition into a concrete
// approver for a given employee, walking the org hierarchy and role
// assignments as the level demands.
package workflowresolver

import (
	"sync"

	"hrms-backend/db"
	orgunitstore "hrms-backend/lib/org-unit/store"
	roleassignmentstore "hrms-backend/lib/role-assignment/store"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	// Resolve returns the user who should act on the given level for the
	// employee. A nil user with nil error means no approver could be
	// determined; the engine decides whether that skips the level.
	Resolve(employee *dbmodels.Employee, level dbmodels.ApprovalLevel) (userID *string, err error)
}

// LookupFunc resolves an approver for DYNAMIC levels. The level's
// ApproverField names the registered lookup.
type LookupFunc func(employee *dbmodels.Employee) (userID *string, err error)

var (
	lookupMu sync.RWMutex
	lookups  = map[string]LookupFunc{}
)

// RegisterLookup registers a named resolver for DYNAMIC approval levels.
func RegisterLookup(name string, fn LookupFunc) {
	lookupMu.Lock()
	defer lookupMu.Unlock()
	lookups[name] = fn
}

func getLookup(name string) (LookupFunc, bool) {
	lookupMu.RLock()
	defer lookupMu.RUnlock()
	fn, exist := lookups[name]
	return fn, exist
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB)
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return &handler{
		orgUnits: orgunitstore.NewInstance(tx),
		roles:    roleassignmentstore.NewInstance(tx),
	}
}

func NewInstance(orgUnits orgunitstore.Provider, roles roleassignmentstore.Provider) Provider {
	return &handler{
		orgUnits: orgUnits,
		roles:    roles,
	}
}

type handler struct {
	orgUnits orgunitstore.Provider
	roles    roleassignmentstore.Provider
}

func (h handler) Resolve(employee *dbmodels.Employee, level dbmodels.ApprovalLevel) (*string, error) {
	switch level.ApproverType {
	case models.ApproverSupervisor, models.ApproverDepartmentHead, models.ApproverDirectorateHead,
		models.ApproverDivisionHead, models.ApproverDistrictHead, models.ApproverRegionalDirector:
		if employee == nil {
			return nil, nil
		}
	}

	switch level.ApproverType {
	case models.ApproverSupervisor:
		return headUserID(employee.Supervisor), nil

	case models.ApproverDepartmentHead:
		return unitHeadUserID(employee.Department), nil

	case models.ApproverDirectorateHead:
		return unitHeadUserID(employee.Directorate), nil

	case models.ApproverDivisionHead:
		return unitHeadUserID(employee.Division), nil

	case models.ApproverDistrictHead:
		return h.ancestorHead(employee.WorkLocation, models.OrgUnitDistrict)

	case models.ApproverRegionalDirector:
		return h.ancestorHead(employee.WorkLocation, models.OrgUnitRegion)

	case models.ApproverDCE:
		return h.resolveRole(models.RoleDCE, employee)

	case models.ApproverCEO:
		return h.resolveRole(models.RoleCEO, employee)

	case models.ApproverRole:
		return h.resolveRole(level.ApproverRole, employee)

	case models.ApproverUser:
		return level.ApproverUserID, nil

	case models.ApproverDynamic:
		fn, exist := getLookup(level.ApproverField)
		if !exist {
			log.WithField("lookup", level.ApproverField).
				Warn("no dynamic approver lookup registered")
			return nil, nil
		}
		userID, err := fn(employee)
		if err != nil {
			log.WithField("lookup", level.ApproverField).
				WithError(err).
				Error("dynamic approver lookup failed")
			return nil, nil
		}
		return userID, nil
	}

	return nil, errors.Errorf("unknown approver type %q", level.ApproverType)
}

// ancestorHead walks up from the given unit to the nearest ancestor of the
// wanted type and returns its head's user. The walk is depth-capped so a
// cyclic parent link cannot hang the engine.
func (h handler) ancestorHead(unit *dbmodels.OrgUnit, wanted models.OrgUnitType) (*string, error) {
	current := unit
	for depth := 0; current != nil && depth < 10; depth++ {
		if current.UnitType == wanted {
			if current.Head != nil {
				return headUserID(current.Head), nil
			}
			full, err := h.orgUnits.GetByID(current.ID)
			if err != nil {
				return nil, err
			}
			if full == nil {
				return nil, nil
			}
			return unitHeadUserID(full), nil
		}
		if current.ParentID == nil {
			return nil, nil
		}
		parent, err := h.orgUnits.GetByID(*current.ParentID)
		if err != nil {
			return nil, err
		}
		current = parent
	}
	return nil, nil
}

// resolveRole prefers an assignment scoped to the employee's division, then a
// global assignment, then any active one. Ties go to the oldest assignment.
func (h handler) resolveRole(roleCode string, employee *dbmodels.Employee) (*string, error) {
	if roleCode == "" {
		return nil, nil
	}
	if employee != nil && employee.DivisionID != nil {
		scoped, err := h.roles.FindScoped(roleCode, *employee.DivisionID)
		if err != nil {
			return nil, err
		}
		if scoped != nil {
			return &scoped.UserID, nil
		}
	}
	global, err := h.roles.FindGlobal(roleCode)
	if err != nil {
		return nil, err
	}
	if global != nil {
		return &global.UserID, nil
	}
	any, err := h.roles.FindAny(roleCode)
	if err != nil {
		return nil, err
	}
	if any != nil {
		return &any.UserID, nil
	}
	return nil, nil
}

func unitHeadUserID(unit *dbmodels.OrgUnit) *string {
	if unit == nil {
		return nil
	}
	return headUserID(unit.Head)
}

func headUserID(head *dbmodels.Employee) *string {
	if head == nil {
		return nil
	}
	return head.UserID
}
