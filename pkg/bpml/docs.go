package bpml

import (
	"github.com/banzg00/bpml/pkg/bpml/model"
)

// GenerateProcessDocumentation renders a process as plain nested maps and
// slices, ready for template interpolation or JSON serialization by the
// documentation and code generation tooling.
func GenerateProcessDocumentation(p *model.Process) map[string]any {
	doc := map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"version":     p.Version,
	}

	rolesInvolved := make([]string, 0)
	seenRoles := make(map[string]struct{})
	addRole := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seenRoles[name]; ok {
			return
		}
		seenRoles[name] = struct{}{}
		rolesInvolved = append(rolesInvolved, name)
	}

	entitiesUsed := make([]string, 0)
	seenEntities := make(map[string]struct{})
	for i := range p.DataObjects {
		name := p.DataObjects[i].DataType.Entity
		if _, ok := seenEntities[name]; ok {
			continue
		}
		seenEntities[name] = struct{}{}
		entitiesUsed = append(entitiesUsed, name)
	}

	elements := make([]map[string]any, 0)
	for _, element := range p.FlowElements() {
		elementDoc := map[string]any{
			"name": element.GetName(),
			"type": string(element.GetType()),
		}
		switch e := element.(type) {
		case *model.UserTask:
			if e.Assignee != nil && e.Assignee.Type() == model.AssigneeTypeRole {
				addRole(e.Assignee.Role)
				elementDoc["assignee"] = "Role: " + e.Assignee.Role
			}
			if len(e.CandidateGroups) > 0 {
				for _, group := range e.CandidateGroups {
					addRole(group)
				}
				elementDoc["candidateGroups"] = e.CandidateGroups
			}
			if e.Form != nil {
				fields := make([]string, 0, len(e.Form.Fields))
				for _, field := range e.Form.Fields {
					fields = append(fields, field.Name)
				}
				elementDoc["formFields"] = fields
			}
		case *model.ServiceTask:
			elementDoc["implementation"] = e.Implementation
		case *model.ScriptTask:
			elementDoc["language"] = string(e.Language)
		}
		elements = append(elements, elementDoc)
	}

	flows := make([]map[string]any, 0, len(p.Flows))
	for i := range p.Flows {
		f := &p.Flows[i]
		flowDoc := map[string]any{
			"source": f.Source,
			"target": f.Target,
		}
		if f.Condition != "" {
			flowDoc["condition"] = f.Condition
		}
		flows = append(flows, flowDoc)
	}

	doc["elements"] = elements
	doc["flows"] = flows
	doc["roles_involved"] = rolesInvolved
	doc["entities_used"] = entitiesUsed
	return doc
}
