package model

// Entity is a persistent domain object definition. Its properties split into
// plain attributes and relationships to other entities.
type Entity struct {
	Name          string         `yaml:"name" json:"name"`
	Description   string         `yaml:"description,omitempty" json:"description,omitempty"`
	Attributes    []Attribute    `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Relationships []Relationship `yaml:"relationships,omitempty" json:"relationships,omitempty"`
}

type Attribute struct {
	Name       string        `yaml:"name" json:"name"`
	Type       AttributeType `yaml:"type" json:"type"`
	IsOptional bool          `yaml:"optional,omitempty" json:"optional,omitempty"`
	IsList     bool          `yaml:"list,omitempty" json:"list,omitempty"`
}

// Relationship links the owning entity to another entity by name.
type Relationship struct {
	Name        string      `yaml:"name" json:"name"`
	Type        string      `yaml:"type" json:"type"`
	Cardinality Cardinality `yaml:"cardinality" json:"cardinality"`
	IsOptional  bool        `yaml:"optional,omitempty" json:"optional,omitempty"`
}

// Role is a named actor. Roles form a hierarchy either through a parent link
// or through supervised role references; cycles are rejected by validation.
type Role struct {
	Name            string   `yaml:"name" json:"name"`
	Description     string   `yaml:"description,omitempty" json:"description,omitempty"`
	Parent          string   `yaml:"parent,omitempty" json:"parent,omitempty"`
	SupervisedRoles []string `yaml:"supervises,omitempty" json:"supervises,omitempty"`
	Permissions     []string `yaml:"permissions,omitempty" json:"permissions,omitempty"`
}

// State of the older schema revision's state machine.
type State struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Task of the older schema revision. A task is either automated or assigned
// to a role, never both, never neither.
type Task struct {
	Name            string   `yaml:"name" json:"name"`
	Description     string   `yaml:"description,omitempty" json:"description,omitempty"`
	State           string   `yaml:"state" json:"state"`
	Auto            bool     `yaml:"auto,omitempty" json:"auto,omitempty"`
	Role            string   `yaml:"role,omitempty" json:"role,omitempty"`
	Entities        []string `yaml:"entities,omitempty" json:"entities,omitempty"`
	Dependencies    []string `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	Form            string   `yaml:"form,omitempty" json:"form,omitempty"`
	CandidateGroups []string `yaml:"candidateGroups,omitempty" json:"candidateGroups,omitempty"`
	Priority        Priority `yaml:"priority,omitempty" json:"priority,omitempty"`
}

// Transition moves the older revision's state machine between two distinct
// states, guarded by a role.
type Transition struct {
	Name      string `yaml:"name" json:"name"`
	FromState string `yaml:"from" json:"from"`
	ToState   string `yaml:"to" json:"to"`
	Role      string `yaml:"role" json:"role"`
	Condition string `yaml:"condition,omitempty" json:"condition,omitempty"`
}
