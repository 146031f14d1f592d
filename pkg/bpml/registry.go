package bpml

import (
	"github.com/banzg00/bpml/pkg/bpml/model"
)

// processRegistry is the per-process name -> definition lookup built as the
// first validation pass and consumed by every later pass. It is a derived,
// disposable cache over one immutable Process and must be rebuilt when the
// model changes.
//
// Process-scoped definitions are unioned with the model-level Entity/Role
// collections, process scope winning on lookup.
type processRegistry struct {
	process *model.Process

	entities map[string]*model.Entity
	roles    map[string]*model.Role
	states   map[string]*model.State
	tasks    map[string]*model.Task
	elements map[string]model.FlowElement
	forms    map[string]*model.Form

	// declaration order, used by cycle detection for deterministic reports
	roleOrder []string
	taskOrder []string
}

// buildRegistry indexes the process and reports the first duplicate name it
// encounters. Model-level entities and roles were already checked for
// duplicates among themselves; they only seed the lookup maps here.
func buildRegistry(m *model.Model, p *model.Process) (*processRegistry, error) {
	reg := &processRegistry{
		process:  p,
		entities: make(map[string]*model.Entity),
		roles:    make(map[string]*model.Role),
		states:   make(map[string]*model.State),
		tasks:    make(map[string]*model.Task),
		elements: make(map[string]model.FlowElement),
		forms:    make(map[string]*model.Form),
	}

	for i := range m.Entities {
		reg.entities[m.Entities[i].Name] = &m.Entities[i]
	}
	for i := range m.Roles {
		reg.roles[m.Roles[i].Name] = &m.Roles[i]
		reg.roleOrder = append(reg.roleOrder, m.Roles[i].Name)
	}

	seenEntities := make(map[string]struct{}, len(p.Entities))
	for i := range p.Entities {
		e := &p.Entities[i]
		if _, dup := seenEntities[e.Name]; dup {
			return nil, &DuplicateNameError{Category: "entity", Name: e.Name, Process: p.Name}
		}
		seenEntities[e.Name] = struct{}{}
		reg.entities[e.Name] = e
	}
	seenRoles := make(map[string]struct{}, len(p.Roles))
	for i := range p.Roles {
		r := &p.Roles[i]
		if _, dup := seenRoles[r.Name]; dup {
			return nil, &DuplicateNameError{Category: "role", Name: r.Name, Process: p.Name}
		}
		seenRoles[r.Name] = struct{}{}
		reg.roles[r.Name] = r
		reg.roleOrder = append(reg.roleOrder, r.Name)
	}
	seenStates := make(map[string]struct{}, len(p.States))
	for i := range p.States {
		s := &p.States[i]
		if _, dup := seenStates[s.Name]; dup {
			return nil, &DuplicateNameError{Category: "state", Name: s.Name, Process: p.Name}
		}
		seenStates[s.Name] = struct{}{}
		reg.states[s.Name] = s
	}
	seenTasks := make(map[string]struct{}, len(p.Tasks))
	for i := range p.Tasks {
		t := &p.Tasks[i]
		if _, dup := seenTasks[t.Name]; dup {
			return nil, &DuplicateNameError{Category: "task", Name: t.Name, Process: p.Name}
		}
		seenTasks[t.Name] = struct{}{}
		reg.tasks[t.Name] = t
		reg.taskOrder = append(reg.taskOrder, t.Name)
	}
	seenTransitions := make(map[string]struct{}, len(p.Transitions))
	for i := range p.Transitions {
		t := &p.Transitions[i]
		if _, dup := seenTransitions[t.Name]; dup {
			return nil, &DuplicateNameError{Category: "transition", Name: t.Name, Process: p.Name}
		}
		seenTransitions[t.Name] = struct{}{}
	}
	for i := range p.Forms {
		f := &p.Forms[i]
		if _, dup := reg.forms[f.Name]; dup {
			return nil, &DuplicateNameError{Category: "form", Name: f.Name, Process: p.Name}
		}
		reg.forms[f.Name] = f
	}
	for _, element := range p.FlowElements() {
		if _, dup := reg.elements[element.GetName()]; dup {
			return nil, &DuplicateNameError{Category: "element", Name: element.GetName(), Process: p.Name}
		}
		reg.elements[element.GetName()] = element
	}

	return reg, nil
}
