// Package model holds the typed abstract syntax tree of a BPML document.
//
// The tree is produced by an external parser front end and is read-only for
// every consumer in this repository. Two schema revisions are supported as a
// superset: the canonical elements+flows shape and the older
// states/tasks/transitions shape. A process may use either; the validators
// check whichever collections are populated.
package model

// Model is the root container of a parsed BPML document.
type Model struct {
	ProjectInfo ProjectInfo `yaml:"projectInfo" json:"projectInfo"`
	Processes   []Process   `yaml:"processes" json:"processes"`

	// Top-level collections shared by all processes.
	Entities   []Entity    `yaml:"entities,omitempty" json:"entities,omitempty"`
	Roles      []Role      `yaml:"roles,omitempty" json:"roles,omitempty"`
	Dashboards []Dashboard `yaml:"dashboards,omitempty" json:"dashboards,omitempty"`
}

type ProjectInfo struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
}

// Process groups the elements and flows of one business workflow.
type Process struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`

	FlowElementsContainer `yaml:",inline" json:",inline"`

	// Process-scoped definitions.
	Entities []Entity `yaml:"entities,omitempty" json:"entities,omitempty"`
	Roles    []Role   `yaml:"roles,omitempty" json:"roles,omitempty"`
	Forms    []Form   `yaml:"forms,omitempty" json:"forms,omitempty"`

	// Older schema revision: state machine with role-guarded transitions.
	States      []State      `yaml:"states,omitempty" json:"states,omitempty"`
	Tasks       []Task       `yaml:"tasks,omitempty" json:"tasks,omitempty"`
	Transitions []Transition `yaml:"transitions,omitempty" json:"transitions,omitempty"`
}

// FlowElementsContainer holds every flow element variant of a process,
// one slice per variant.
type FlowElementsContainer struct {
	StartEvents       []StartEvent       `yaml:"startEvents,omitempty" json:"startEvents,omitempty"`
	EndEvents         []EndEvent         `yaml:"endEvents,omitempty" json:"endEvents,omitempty"`
	UserTasks         []UserTask         `yaml:"userTasks,omitempty" json:"userTasks,omitempty"`
	ServiceTasks      []ServiceTask      `yaml:"serviceTasks,omitempty" json:"serviceTasks,omitempty"`
	ScriptTasks       []ScriptTask       `yaml:"scriptTasks,omitempty" json:"scriptTasks,omitempty"`
	ExclusiveGateways []ExclusiveGateway `yaml:"exclusiveGateways,omitempty" json:"exclusiveGateways,omitempty"`
	InclusiveGateways []InclusiveGateway `yaml:"inclusiveGateways,omitempty" json:"inclusiveGateways,omitempty"`
	ParallelGateways  []ParallelGateway  `yaml:"parallelGateways,omitempty" json:"parallelGateways,omitempty"`
	DataObjects       []DataObject       `yaml:"dataObjects,omitempty" json:"dataObjects,omitempty"`
	Flows             []Flow             `yaml:"flows,omitempty" json:"flows,omitempty"`
}

// FlowElements returns every element of the container in declaration order,
// variant slices visited in the fixed container order.
func (c *FlowElementsContainer) FlowElements() []FlowElement {
	elements := make([]FlowElement, 0,
		len(c.StartEvents)+len(c.EndEvents)+len(c.UserTasks)+len(c.ServiceTasks)+
			len(c.ScriptTasks)+len(c.ExclusiveGateways)+len(c.InclusiveGateways)+
			len(c.ParallelGateways)+len(c.DataObjects))
	for i := range c.StartEvents {
		elements = append(elements, &c.StartEvents[i])
	}
	for i := range c.EndEvents {
		elements = append(elements, &c.EndEvents[i])
	}
	for i := range c.UserTasks {
		elements = append(elements, &c.UserTasks[i])
	}
	for i := range c.ServiceTasks {
		elements = append(elements, &c.ServiceTasks[i])
	}
	for i := range c.ScriptTasks {
		elements = append(elements, &c.ScriptTasks[i])
	}
	for i := range c.ExclusiveGateways {
		elements = append(elements, &c.ExclusiveGateways[i])
	}
	for i := range c.InclusiveGateways {
		elements = append(elements, &c.InclusiveGateways[i])
	}
	for i := range c.ParallelGateways {
		elements = append(elements, &c.ParallelGateways[i])
	}
	for i := range c.DataObjects {
		elements = append(elements, &c.DataObjects[i])
	}
	return elements
}

// FlowElementByName returns the element with the given name or nil.
func (c *FlowElementsContainer) FlowElementByName(name string) FlowElement {
	for _, element := range c.FlowElements() {
		if element.GetName() == name {
			return element
		}
	}
	return nil
}

// HasFlowElements reports whether the process uses the canonical
// elements+flows schema revision.
func (c *FlowElementsContainer) HasFlowElements() bool {
	return len(c.FlowElements()) > 0 || len(c.Flows) > 0
}

// ProcessByName returns the process with the given name or nil.
func (m *Model) ProcessByName(name string) *Process {
	for i := range m.Processes {
		if m.Processes[i].Name == name {
			return &m.Processes[i]
		}
	}
	return nil
}
