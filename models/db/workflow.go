package dbmodels

import (
	"hrms-backend/models"
	"time"
)

type WorkflowDefinition struct {
	BaseModel
	Code                  string              `gorm:"type:varchar(50);index:idx_workflow_code_version,unique"`
	Version               int                 `gorm:"index:idx_workflow_code_version,unique"`
	Name                  string              `gorm:"type:varchar(255)"`
	WorkflowType          models.WorkflowType `gorm:"type:varchar(20)"`
	ObjectType            string              `gorm:"type:varchar(50)"`
	IsActive              bool
	IsDefault             bool
	RequireAllApprovers   bool
	AllowParallelApproval bool
	States                []WorkflowState `gorm:"foreignKey:WorkflowID"`
	Levels                []ApprovalLevel `gorm:"foreignKey:WorkflowID"`
}

type WorkflowState struct {
	BaseModel
	WorkflowID string                   `gorm:"type:varchar(36);index:idx_state_workflow_code,unique"`
	Code       models.WorkflowStateCode `gorm:"type:varchar(30);index:idx_state_workflow_code,unique"`
	Name       string                   `gorm:"type:varchar(150)"`
}

type ApprovalLevel struct {
	BaseModel
	WorkflowID           string `gorm:"type:varchar(36);index:idx_level_workflow_level,unique"`
	Level                int    `gorm:"index:idx_level_workflow_level,unique"`
	Name                 string `gorm:"type:varchar(150)"`
	ApproverType         models.ApproverType `gorm:"type:varchar(30)"`
	ApproverRole         string              `gorm:"type:varchar(50)"`
	ApproverUserID       *string             `gorm:"type:varchar(36)"`
	ApproverUser         *User               `gorm:"foreignKey:ApproverUserID"`
	ApproverField        string              `gorm:"type:varchar(150)"`
	CanSkip              bool
	SkipIfSameAsPrevious bool
}

type WorkflowInstance struct {
	BaseModel
	WorkflowID   string `gorm:"type:varchar(36)"`
	Workflow     *WorkflowDefinition `gorm:"foreignKey:WorkflowID"`
	ObjectType   string              `gorm:"type:varchar(50);index:idx_instance_object"`
	ObjectID     string              `gorm:"type:varchar(36);index:idx_instance_object"`
	CurrentState models.WorkflowStateCode `gorm:"type:varchar(30)"`
	Status       models.InstanceStatus    `gorm:"type:varchar(20);index"`
	CurrentLevel int
	StartedByID  string `gorm:"type:varchar(36)"`
	StartedBy    *User  `gorm:"foreignKey:StartedByID"`
	CompletedAt  *time.Time
}

type ApprovalRequest struct {
	BaseModel
	InstanceID       string            `gorm:"type:varchar(36);index"`
	Instance         *WorkflowInstance `gorm:"foreignKey:InstanceID"`
	LevelNumber      int
	LevelName        string  `gorm:"type:varchar(150)"`
	AssignedToID     *string `gorm:"type:varchar(36);index"`
	AssignedTo       *User   `gorm:"foreignKey:AssignedToID"`
	AssignedRole     string  `gorm:"type:varchar(50)"`
	Status           models.RequestStatus `gorm:"type:varchar(20);index"`
	Comments         string
	RespondedAt      *time.Time
	RespondedByID    *string `gorm:"type:varchar(36)"`
	RespondedBy      *User   `gorm:"foreignKey:RespondedByID"`
	DelegatedToID    *string `gorm:"type:varchar(36)"`
	DelegationReason string
}

// WorkflowTransitionLog is append-only, never updated after creation.
type WorkflowTransitionLog struct {
	BaseModel
	InstanceID  string                   `gorm:"type:varchar(36);index"`
	FromState   models.WorkflowStateCode `gorm:"type:varchar(30)"`
	ToState     models.WorkflowStateCode `gorm:"type:varchar(30)"`
	ActorID     *string                  `gorm:"type:varchar(36)"`
	Actor       *User                    `gorm:"foreignKey:ActorID"`
	Comments    string
	IsAutomatic bool
}

type ApprovalDelegation struct {
	BaseModel
	DelegatorID string  `gorm:"type:varchar(36);index"`
	Delegator   *User   `gorm:"foreignKey:DelegatorID"`
	DelegateID  string  `gorm:"type:varchar(36);index"`
	Delegate    *User   `gorm:"foreignKey:DelegateID"`
	WorkflowID  *string `gorm:"type:varchar(36)"`
	StartDate   time.Time
	EndDate     time.Time
	Reason      string
	IsActive    bool
}

func (d ApprovalDelegation) CoversDate(day time.Time) bool {
	return d.IsActive && !day.Before(d.StartDate) && !day.After(d.EndDate)
}
