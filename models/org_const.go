package models

type OrgUnitType string

const (
	OrgUnitHeadquarters OrgUnitType = "HEADQUARTERS"
	OrgUnitDivision     OrgUnitType = "DIVISION"
	OrgUnitDirectorate  OrgUnitType = "DIRECTORATE"
	OrgUnitDepartment   OrgUnitType = "DEPARTMENT"
	OrgUnitUnit         OrgUnitType = "UNIT"
	OrgUnitRegion       OrgUnitType = "REGION"
	OrgUnitDistrict     OrgUnitType = "DISTRICT"
)

var orgUnitHumanName = map[OrgUnitType]string{
	OrgUnitHeadquarters: "Headquarters",
	OrgUnitDivision:     "Division",
	OrgUnitDirectorate:  "Directorate",
	OrgUnitDepartment:   "Department",
	OrgUnitUnit:         "Unit",
	OrgUnitRegion:       "Region",
	OrgUnitDistrict:     "District",
}

func (t OrgUnitType) ToHuman() string {
	if human, exist := orgUnitHumanName[t]; exist {
		return human
	}
	return string(t)
}

type EmploymentStatus string

const (
	EmploymentActive    EmploymentStatus = "ACTIVE"
	EmploymentOnLeave   EmploymentStatus = "ON_LEAVE"
	EmploymentSuspended EmploymentStatus = "SUSPENDED"
	EmploymentExited    EmploymentStatus = "EXITED"
)

// Leadership role codes referenced by workflow levels.
const (
	RoleCEO            = "CEO"
	RoleDCE            = "DCE"
	RoleHRManager      = "HR_MANAGER"
	RoleFinanceManager = "FINANCE_MANAGER"
	RolePayrollOfficer = "PAYROLL_OFFICER"
	RoleAuditManager   = "AUDIT_MANAGER"
)
