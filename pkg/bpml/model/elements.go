package model

type ElementType string

const (
	ElementTypeStartEvent       ElementType = "START_EVENT"
	ElementTypeEndEvent         ElementType = "END_EVENT"
	ElementTypeUserTask         ElementType = "USER_TASK"
	ElementTypeServiceTask      ElementType = "SERVICE_TASK"
	ElementTypeScriptTask       ElementType = "SCRIPT_TASK"
	ElementTypeExclusiveGateway ElementType = "EXCLUSIVE_GATEWAY"
	ElementTypeInclusiveGateway ElementType = "INCLUSIVE_GATEWAY"
	ElementTypeParallelGateway  ElementType = "PARALLEL_GATEWAY"
	ElementTypeDataObject       ElementType = "DATA_OBJECT"
)

// FlowElement is implemented by every element variant of a process.
type FlowElement interface {
	GetName() string
	GetType() ElementType
}

// GatewayElement is implemented by the gateway variants.
type GatewayElement interface {
	FlowElement
	IsParallel() bool
	IsExclusive() bool
	IsInclusive() bool
	GetConditions() []string
}

// BaseElement carries the attributes shared by all element variants.
// Element names are unique within their owning process.
type BaseElement struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

func (e BaseElement) GetName() string {
	return e.Name
}

type StartEvent struct {
	BaseElement `yaml:",inline" json:",inline"`
}

func (e *StartEvent) GetType() ElementType { return ElementTypeStartEvent }

type EndEvent struct {
	BaseElement `yaml:",inline" json:",inline"`
}

func (e *EndEvent) GetType() ElementType { return ElementTypeEndEvent }

// AssigneeType discriminates the assignment of a user task.
type AssigneeType string

const (
	AssigneeTypeRole       AssigneeType = "role"
	AssigneeTypeUser       AssigneeType = "user"
	AssigneeTypeExpression AssigneeType = "expression"
)

// Assignee names who works on a user task. Exactly one of Role, User or
// Expression is set.
type Assignee struct {
	Role       string `yaml:"role,omitempty" json:"role,omitempty"`
	User       string `yaml:"user,omitempty" json:"user,omitempty"`
	Expression string `yaml:"expression,omitempty" json:"expression,omitempty"`
}

// Type returns the discriminator of the populated field, or "" when the
// assignee is empty or over-populated.
func (a Assignee) Type() AssigneeType {
	set := 0
	var at AssigneeType
	if a.Role != "" {
		set++
		at = AssigneeTypeRole
	}
	if a.User != "" {
		set++
		at = AssigneeTypeUser
	}
	if a.Expression != "" {
		set++
		at = AssigneeTypeExpression
	}
	if set != 1 {
		return ""
	}
	return at
}

func (a Assignee) IsZero() bool {
	return a.Role == "" && a.User == "" && a.Expression == ""
}

type UserTask struct {
	BaseElement     `yaml:",inline" json:",inline"`
	Assignee        *Assignee `yaml:"assignee,omitempty" json:"assignee,omitempty"`
	CandidateGroups []string  `yaml:"candidateGroups,omitempty" json:"candidateGroups,omitempty"`
	Form            *Form     `yaml:"form,omitempty" json:"form,omitempty"`
	Priority        Priority  `yaml:"priority,omitempty" json:"priority,omitempty"`
}

func (e *UserTask) GetType() ElementType { return ElementTypeUserTask }

type ServiceTask struct {
	BaseElement    `yaml:",inline" json:",inline"`
	Implementation string `yaml:"implementation" json:"implementation"`
	// RetryCount of 0 means no retries.
	RetryCount *int `yaml:"retryCount,omitempty" json:"retryCount,omitempty"`
	// Timeout is an ISO-8601 duration, e.g. "PT30S".
	Timeout   string `yaml:"timeout,omitempty" json:"timeout,omitempty"`
	OnFailure string `yaml:"onFailure,omitempty" json:"onFailure,omitempty"`
}

func (e *ServiceTask) GetType() ElementType { return ElementTypeServiceTask }

// HasErrorHandling reports whether the task declares a failure handler or a
// positive retry count.
func (e *ServiceTask) HasErrorHandling() bool {
	return e.OnFailure != "" || (e.RetryCount != nil && *e.RetryCount > 0)
}

type ScriptTask struct {
	BaseElement `yaml:",inline" json:",inline"`
	Script      string         `yaml:"script" json:"script"`
	Language    ScriptLanguage `yaml:"language,omitempty" json:"language,omitempty"`
}

func (e *ScriptTask) GetType() ElementType { return ElementTypeScriptTask }

type ExclusiveGateway struct {
	BaseElement `yaml:",inline" json:",inline"`
	Conditions  []string `yaml:"conditions,omitempty" json:"conditions,omitempty"`
}

func (e *ExclusiveGateway) GetType() ElementType    { return ElementTypeExclusiveGateway }
func (e *ExclusiveGateway) IsParallel() bool        { return false }
func (e *ExclusiveGateway) IsExclusive() bool       { return true }
func (e *ExclusiveGateway) IsInclusive() bool       { return false }
func (e *ExclusiveGateway) GetConditions() []string { return e.Conditions }

type InclusiveGateway struct {
	BaseElement `yaml:",inline" json:",inline"`
	Conditions  []string `yaml:"conditions,omitempty" json:"conditions,omitempty"`
}

func (e *InclusiveGateway) GetType() ElementType    { return ElementTypeInclusiveGateway }
func (e *InclusiveGateway) IsParallel() bool        { return false }
func (e *InclusiveGateway) IsExclusive() bool       { return false }
func (e *InclusiveGateway) IsInclusive() bool       { return true }
func (e *InclusiveGateway) GetConditions() []string { return e.Conditions }

type ParallelGateway struct {
	BaseElement `yaml:",inline" json:",inline"`
	Join        JoinType `yaml:"join,omitempty" json:"join,omitempty"`
}

func (e *ParallelGateway) GetType() ElementType    { return ElementTypeParallelGateway }
func (e *ParallelGateway) IsParallel() bool        { return true }
func (e *ParallelGateway) IsExclusive() bool       { return false }
func (e *ParallelGateway) IsInclusive() bool       { return false }
func (e *ParallelGateway) GetConditions() []string { return nil }

// DataTypeRef references an entity type, optionally as a list.
type DataTypeRef struct {
	Entity string `yaml:"entity" json:"entity"`
	IsList bool   `yaml:"list,omitempty" json:"list,omitempty"`
}

type DataObject struct {
	BaseElement `yaml:",inline" json:",inline"`
	DataType    DataTypeRef `yaml:"type" json:"type"`
}

func (e *DataObject) GetType() ElementType { return ElementTypeDataObject }

// Flow is a directed edge between two elements of the same process,
// referenced by name.
type Flow struct {
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	Source    string `yaml:"source" json:"source"`
	Target    string `yaml:"target" json:"target"`
	Condition string `yaml:"condition,omitempty" json:"condition,omitempty"`
	Role      string `yaml:"role,omitempty" json:"role,omitempty"`
}
