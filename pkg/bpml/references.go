package bpml

import (
	"strconv"

	"github.com/dop251/goja/parser"
	"github.com/senseyeio/duration"

	"github.com/banzg00/bpml/pkg/bpml/model"
)

// validateModelReferences resolves the cross-references of the model-level
// Entity and Role collections against those same collections. Process scopes
// are not consulted; a top-level definition cannot reach into a process.
func validateModelReferences(m *model.Model) error {
	knownEntities := make(map[string]struct{}, len(m.Entities))
	for i := range m.Entities {
		knownEntities[m.Entities[i].Name] = struct{}{}
	}
	for i := range m.Entities {
		e := &m.Entities[i]
		for _, rel := range e.Relationships {
			if _, ok := knownEntities[rel.Type]; !ok {
				return &UnresolvedReferenceError{Referrer: e.Name, Referenced: rel.Type, Category: "entity"}
			}
		}
	}

	knownRoles := make(map[string]struct{}, len(m.Roles))
	for i := range m.Roles {
		knownRoles[m.Roles[i].Name] = struct{}{}
	}
	for i := range m.Roles {
		r := &m.Roles[i]
		if r.Parent != "" {
			if _, ok := knownRoles[r.Parent]; !ok {
				return &UnresolvedReferenceError{Referrer: r.Name, Referenced: r.Parent, Category: "role"}
			}
		}
		for _, supervised := range r.SupervisedRoles {
			if supervised == r.Name {
				// handled as a dedicated check ahead of cycle detection
				continue
			}
			if _, ok := knownRoles[supervised]; !ok {
				return &UnresolvedReferenceError{Referrer: r.Name, Referenced: supervised, Category: "role"}
			}
		}
	}
	return nil
}

// validateReferences re-walks every cross-reference of the process and fails
// on the first name that does not resolve in the applicable registry.
// References resolve within the owning process; model-level entities and
// roles are part of the process registry.
func validateReferences(reg *processRegistry) error {
	p := reg.process

	for i := range p.Roles {
		r := &p.Roles[i]
		if r.Parent != "" {
			if _, ok := reg.roles[r.Parent]; !ok {
				return &UnresolvedReferenceError{Referrer: r.Name, Referenced: r.Parent, Category: "role", Process: p.Name}
			}
		}
		for _, supervised := range r.SupervisedRoles {
			if supervised == r.Name {
				// handled as a dedicated check ahead of cycle detection
				continue
			}
			if _, ok := reg.roles[supervised]; !ok {
				return &UnresolvedReferenceError{Referrer: r.Name, Referenced: supervised, Category: "role", Process: p.Name}
			}
		}
	}

	for i := range p.Entities {
		e := &p.Entities[i]
		for _, rel := range e.Relationships {
			if _, ok := reg.entities[rel.Type]; !ok {
				return &UnresolvedReferenceError{Referrer: e.Name, Referenced: rel.Type, Category: "entity", Process: p.Name}
			}
		}
	}

	for i := range p.Tasks {
		t := &p.Tasks[i]
		if t.State != "" {
			if _, ok := reg.states[t.State]; !ok {
				return &UnresolvedReferenceError{Referrer: t.Name, Referenced: t.State, Category: "state", Process: p.Name}
			}
		}
		if t.Role != "" {
			if _, ok := reg.roles[t.Role]; !ok {
				return &UnresolvedReferenceError{Referrer: t.Name, Referenced: t.Role, Category: "role", Process: p.Name}
			}
		}
		for _, entity := range t.Entities {
			if _, ok := reg.entities[entity]; !ok {
				return &UnresolvedReferenceError{Referrer: t.Name, Referenced: entity, Category: "entity", Process: p.Name}
			}
		}
		for _, dep := range t.Dependencies {
			if dep == t.Name {
				return &SelfReferenceError{Category: "task", Name: t.Name, Process: p.Name, Detail: "cannot depend on itself"}
			}
			if _, ok := reg.tasks[dep]; !ok {
				return &UnresolvedReferenceError{Referrer: t.Name, Referenced: dep, Category: "task", Process: p.Name}
			}
		}
		if t.Form != "" {
			if _, ok := reg.forms[t.Form]; !ok {
				return &UnresolvedReferenceError{Referrer: t.Name, Referenced: t.Form, Category: "form", Process: p.Name}
			}
		}
	}

	for i := range p.Transitions {
		t := &p.Transitions[i]
		if _, ok := reg.states[t.FromState]; !ok {
			return &UnresolvedReferenceError{Referrer: t.Name, Referenced: t.FromState, Category: "from_state", Process: p.Name}
		}
		if _, ok := reg.states[t.ToState]; !ok {
			return &UnresolvedReferenceError{Referrer: t.Name, Referenced: t.ToState, Category: "to_state", Process: p.Name}
		}
		if t.FromState == t.ToState {
			return &SelfReferenceError{Category: "transition", Name: t.Name, Process: p.Name, Detail: "has same from and to state '" + t.FromState + "'"}
		}
		if t.Role != "" {
			if _, ok := reg.roles[t.Role]; !ok {
				return &UnresolvedReferenceError{Referrer: t.Name, Referenced: t.Role, Category: "role", Process: p.Name}
			}
		}
		if t.Condition != "" {
			if err := checkExpression(t.Name, t.Condition, p.Name); err != nil {
				return err
			}
		}
	}

	for i := range p.UserTasks {
		ut := &p.UserTasks[i]
		if ut.Assignee != nil && ut.Assignee.Type() == model.AssigneeTypeRole {
			if _, ok := reg.roles[ut.Assignee.Role]; !ok {
				return &UnresolvedReferenceError{Referrer: ut.Name, Referenced: ut.Assignee.Role, Category: "role", Process: p.Name}
			}
		}
	}

	for i := range p.ServiceTasks {
		st := &p.ServiceTasks[i]
		if st.Implementation == "" {
			return &EmptyDefinitionError{Category: "service task", Name: st.Name, Process: p.Name, Detail: "has no implementation"}
		}
		if st.RetryCount != nil && *st.RetryCount < 0 {
			return &InvalidEnumValueError{Field: "retry count", Value: strconv.Itoa(*st.RetryCount), Owner: st.Name, Process: p.Name}
		}
		if st.Timeout != "" {
			d, err := duration.ParseISO8601(st.Timeout)
			if err != nil || d.IsZero() {
				return &InvalidEnumValueError{Field: "timeout", Value: st.Timeout, Owner: st.Name, Process: p.Name}
			}
		}
	}

	for i := range p.ScriptTasks {
		st := &p.ScriptTasks[i]
		if st.Script == "" {
			return &EmptyDefinitionError{Category: "script task", Name: st.Name, Process: p.Name, Detail: "has no script"}
		}
		if st.Language == "" || st.Language == model.ScriptLanguageJavaScript {
			if err := checkExpression(st.Name, st.Script, p.Name); err != nil {
				return err
			}
		}
	}

	for _, element := range p.FlowElements() {
		gateway, ok := element.(model.GatewayElement)
		if !ok || gateway.IsParallel() {
			continue
		}
		conditions := gateway.GetConditions()
		if len(conditions) == 0 {
			return &EmptyDefinitionError{Category: "gateway", Name: gateway.GetName(), Process: p.Name, Detail: "has no conditions"}
		}
		for _, condition := range conditions {
			if condition == "" {
				return &EmptyDefinitionError{Category: "gateway", Name: gateway.GetName(), Process: p.Name, Detail: "has an empty condition"}
			}
			if err := checkExpression(gateway.GetName(), condition, p.Name); err != nil {
				return err
			}
		}
	}

	for i := range p.DataObjects {
		do := &p.DataObjects[i]
		if _, ok := reg.entities[do.DataType.Entity]; !ok {
			return &UnresolvedReferenceError{Referrer: do.Name, Referenced: do.DataType.Entity, Category: "entity", Process: p.Name}
		}
	}

	for i := range p.Flows {
		f := &p.Flows[i]
		if _, ok := reg.elements[f.Source]; !ok {
			return &UnresolvedReferenceError{Referrer: flowLabel(f), Referenced: f.Source, Category: "element", Process: p.Name}
		}
		if _, ok := reg.elements[f.Target]; !ok {
			return &UnresolvedReferenceError{Referrer: flowLabel(f), Referenced: f.Target, Category: "element", Process: p.Name}
		}
		if f.Role != "" {
			if _, ok := reg.roles[f.Role]; !ok {
				return &UnresolvedReferenceError{Referrer: flowLabel(f), Referenced: f.Role, Category: "role", Process: p.Name}
			}
		}
		if f.Condition != "" {
			if err := checkExpression(flowLabel(f), f.Condition, p.Name); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateDashboardReferences resolves the process references of the
// model-level dashboards.
func validateDashboardReferences(m *model.Model) error {
	for i := range m.Dashboards {
		d := &m.Dashboards[i]
		for j := range d.Widgets.ProcessInstanceLists {
			w := &d.Widgets.ProcessInstanceLists[j]
			if m.ProcessByName(w.Process) == nil {
				return &UnresolvedReferenceError{Referrer: w.Name, Referenced: w.Process, Category: "process"}
			}
		}
		for j := range d.Widgets.ProcessMetrics {
			w := &d.Widgets.ProcessMetrics[j]
			if m.ProcessByName(w.Process) == nil {
				return &UnresolvedReferenceError{Referrer: w.Name, Referenced: w.Process, Category: "process"}
			}
		}
	}
	return nil
}

// checkExpression parses a condition or script body as an ECMAScript program.
// Only syntax is checked, nothing is evaluated.
func checkExpression(owner, expression, process string) error {
	if _, err := parser.ParseFile(nil, "", expression, 0); err != nil {
		return &ExpressionSyntaxError{Owner: owner, Expression: expression, Process: process, Err: err}
	}
	return nil
}

func flowLabel(f *model.Flow) string {
	if f.Name != "" {
		return f.Name
	}
	return f.Source + " -> " + f.Target
}
