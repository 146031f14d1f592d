package bpml

import (
	"regexp"

	"github.com/banzg00/bpml/pkg/bpml/model"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validateModelStructure runs the model-level structural checks: project
// info, duplicate names in the model-level scopes and dashboard widget
// shapes. Process-level structure is checked per process by
// validateProcessStructure.
func validateModelStructure(m *model.Model) error {
	if !identifierPattern.MatchString(m.ProjectInfo.Name) {
		return &ProjectInfoError{Name: m.ProjectInfo.Name}
	}

	seenProcesses := make(map[string]struct{}, len(m.Processes))
	for i := range m.Processes {
		name := m.Processes[i].Name
		if _, dup := seenProcesses[name]; dup {
			return &DuplicateNameError{Category: "process", Name: name}
		}
		seenProcesses[name] = struct{}{}
	}

	seenEntities := make(map[string]struct{}, len(m.Entities))
	for i := range m.Entities {
		name := m.Entities[i].Name
		if _, dup := seenEntities[name]; dup {
			return &DuplicateNameError{Category: "entity", Name: name}
		}
		seenEntities[name] = struct{}{}
		if err := validateEntity(&m.Entities[i], ""); err != nil {
			return err
		}
	}

	seenRoles := make(map[string]struct{}, len(m.Roles))
	for i := range m.Roles {
		name := m.Roles[i].Name
		if _, dup := seenRoles[name]; dup {
			return &DuplicateNameError{Category: "role", Name: name}
		}
		seenRoles[name] = struct{}{}
	}

	seenDashboards := make(map[string]struct{}, len(m.Dashboards))
	for i := range m.Dashboards {
		if err := validateDashboard(&m.Dashboards[i], seenDashboards); err != nil {
			return err
		}
	}
	return nil
}

// validateProcessStructure enforces presence, pairing and enum rules within
// one process, using the registry built beforehand.
func validateProcessStructure(reg *processRegistry) error {
	p := reg.process

	if p.HasFlowElements() {
		if len(p.StartEvents) == 0 {
			return &InvalidTopologyError{Process: p.Name, Reason: "has no start event"}
		}
		if len(p.EndEvents) == 0 {
			return &InvalidTopologyError{Process: p.Name, Reason: "has no end event"}
		}
	}

	for i := range p.Entities {
		if err := validateEntity(&p.Entities[i], p.Name); err != nil {
			return err
		}
	}

	for i := range p.Tasks {
		t := &p.Tasks[i]
		// exactly one of auto / role
		if (t.Auto && t.Role != "") || (!t.Auto && t.Role == "") {
			return &TaskAssignmentError{Task: t.Name, Process: p.Name}
		}
		if t.Priority != "" && !t.Priority.Valid() {
			return &InvalidEnumValueError{Field: "priority", Value: string(t.Priority), Owner: t.Name, Process: p.Name}
		}
	}

	for i := range p.UserTasks {
		ut := &p.UserTasks[i]
		if ut.Priority != "" && !ut.Priority.Valid() {
			return &InvalidEnumValueError{Field: "priority", Value: string(ut.Priority), Owner: ut.Name, Process: p.Name}
		}
		if ut.Form != nil {
			if err := validateForm(ut.Form, p.Name); err != nil {
				return err
			}
		}
	}

	for i := range p.ScriptTasks {
		st := &p.ScriptTasks[i]
		if st.Language != "" && !st.Language.Valid() {
			return &InvalidEnumValueError{Field: "script language", Value: string(st.Language), Owner: st.Name, Process: p.Name}
		}
	}

	for i := range p.ParallelGateways {
		pg := &p.ParallelGateways[i]
		if pg.Join != "" && !pg.Join.Valid() {
			return &InvalidEnumValueError{Field: "join type", Value: string(pg.Join), Owner: pg.Name, Process: p.Name}
		}
	}

	for i := range p.Forms {
		if err := validateForm(&p.Forms[i], p.Name); err != nil {
			return err
		}
	}
	return nil
}

func validateEntity(e *model.Entity, process string) error {
	seen := make(map[string]struct{}, len(e.Attributes)+len(e.Relationships))
	for _, attr := range e.Attributes {
		if _, dup := seen[attr.Name]; dup {
			return &DuplicateNameError{Category: "property", Name: attr.Name, Process: process}
		}
		seen[attr.Name] = struct{}{}
		if !attr.Type.Valid() {
			return &InvalidEnumValueError{Field: "attribute type", Value: string(attr.Type), Owner: e.Name, Process: process}
		}
	}
	for _, rel := range e.Relationships {
		if _, dup := seen[rel.Name]; dup {
			return &DuplicateNameError{Category: "property", Name: rel.Name, Process: process}
		}
		seen[rel.Name] = struct{}{}
		if !rel.Cardinality.Valid() {
			return &InvalidEnumValueError{Field: "cardinality", Value: string(rel.Cardinality), Owner: e.Name, Process: process}
		}
	}
	return nil
}

func validateForm(f *model.Form, process string) error {
	if len(f.Fields) == 0 {
		return &EmptyDefinitionError{Category: "form", Name: f.Name, Process: process, Detail: "has no fields"}
	}
	seen := make(map[string]struct{}, len(f.Fields))
	for _, field := range f.Fields {
		if _, dup := seen[field.Name]; dup {
			return &DuplicateNameError{Category: "field", Name: field.Name, Process: process}
		}
		seen[field.Name] = struct{}{}
		if !field.FieldType.Valid() {
			return &InvalidEnumValueError{Field: "field type", Value: string(field.FieldType), Owner: field.Name, Process: process}
		}
		for _, rule := range field.Validations {
			if !rule.Type.Valid() {
				return &InvalidEnumValueError{Field: "validation type", Value: string(rule.Type), Owner: field.Name, Process: process}
			}
		}
	}
	return nil
}

func validateDashboard(d *model.Dashboard, seen map[string]struct{}) error {
	if _, dup := seen[d.Name]; dup {
		return &DuplicateNameError{Category: "dashboard", Name: d.Name}
	}
	seen[d.Name] = struct{}{}

	seenWidgets := make(map[string]struct{})
	for _, widget := range d.Widgets.Widgets() {
		if _, dup := seenWidgets[widget.GetName()]; dup {
			return &DuplicateNameError{Category: "widget", Name: widget.GetName()}
		}
		seenWidgets[widget.GetName()] = struct{}{}
	}

	for i := range d.Widgets.ProcessInstanceLists {
		w := &d.Widgets.ProcessInstanceLists[i]
		if len(w.Columns) == 0 {
			return &EmptyDefinitionError{Category: "widget", Name: w.Name, Detail: "has no columns"}
		}
		for _, action := range w.Actions {
			if !action.Valid() {
				return &InvalidEnumValueError{Field: "action type", Value: string(action), Owner: w.Name}
			}
		}
	}
	for i := range d.Widgets.TaskLists {
		w := &d.Widgets.TaskLists[i]
		if len(w.Columns) == 0 {
			return &EmptyDefinitionError{Category: "widget", Name: w.Name, Detail: "has no columns"}
		}
		for _, action := range w.Actions {
			if !action.Valid() {
				return &InvalidEnumValueError{Field: "action type", Value: string(action), Owner: w.Name}
			}
		}
	}
	for i := range d.Widgets.ProcessMetrics {
		w := &d.Widgets.ProcessMetrics[i]
		if len(w.Metrics) == 0 {
			return &EmptyDefinitionError{Category: "widget", Name: w.Name, Detail: "has no metrics"}
		}
	}
	for i := range d.Widgets.CustomCharts {
		w := &d.Widgets.CustomCharts[i]
		if !w.ChartType.Valid() {
			return &InvalidEnumValueError{Field: "chart type", Value: string(w.ChartType), Owner: w.Name}
		}
		if w.DataSource == "" {
			return &EmptyDefinitionError{Category: "widget", Name: w.Name, Detail: "has no data source"}
		}
	}
	return nil
}
