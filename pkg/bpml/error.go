package bpml

import (
	"fmt"
	"strings"
)

// Validation is fail-fast: the first violated rule is returned as one of the
// typed errors below and no further checks run. Callers match error kinds
// with errors.As.

// ProjectInfoError reports a missing or malformed project name.
type ProjectInfoError struct {
	Name string
}

func (e *ProjectInfoError) Error() string {
	if e.Name == "" {
		return "project name is required"
	}
	return fmt.Sprintf("project name %q is not a valid identifier", e.Name)
}

// DuplicateNameError reports a repeated name within one uniqueness scope.
type DuplicateNameError struct {
	Category string // process, entity, role, state, task, transition, element, field, dashboard
	Name     string
	Process  string // empty for model-level scopes
}

func (e *DuplicateNameError) Error() string {
	if e.Process == "" {
		return fmt.Sprintf("duplicate %s name: %s", e.Category, e.Name)
	}
	return fmt.Sprintf("duplicate %s name '%s' in process '%s'", e.Category, e.Name, e.Process)
}

// UnresolvedReferenceError reports a reference to a name that is not defined
// in the applicable registry.
type UnresolvedReferenceError struct {
	Referrer   string // name of the referring definition
	Referenced string // the dangling name
	Category   string // what kind of definition was expected
	Process    string
}

func (e *UnresolvedReferenceError) Error() string {
	if e.Process == "" {
		return fmt.Sprintf("'%s' references unknown %s '%s'", e.Referrer, e.Category, e.Referenced)
	}
	return fmt.Sprintf("'%s' references unknown %s '%s' in process '%s'",
		e.Referrer, e.Category, e.Referenced, e.Process)
}

// TaskAssignmentError reports a task with zero or two of {auto, role}.
type TaskAssignmentError struct {
	Task    string
	Process string
}

func (e *TaskAssignmentError) Error() string {
	return fmt.Sprintf("task '%s' must be either automated (use 'auto') or assigned to a role (use 'by RoleName') in process '%s'",
		e.Task, e.Process)
}

// SelfReferenceError reports a definition referring to itself: a task
// depending on itself, a role supervising itself or a transition with equal
// endpoints.
type SelfReferenceError struct {
	Category string
	Name     string
	Process  string
	Detail   string
}

func (e *SelfReferenceError) Error() string {
	return fmt.Sprintf("%s '%s' %s in process '%s'", e.Category, e.Name, e.Detail, e.Process)
}

// CircularDependencyError reports a directed cycle in the role hierarchy or
// the task dependency graph. Path holds the cycle with the entry node
// repeated at the end.
type CircularDependencyError struct {
	Category string
	Path     []string
	Process  string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular %s dependency in process '%s': %s",
		e.Category, e.Process, strings.Join(e.Path, " -> "))
}

// InvalidEnumValueError reports a value outside one of the closed value sets.
type InvalidEnumValueError struct {
	Field   string
	Value   string
	Owner   string
	Process string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid %s value '%s' on '%s' in process '%s'",
		e.Field, e.Value, e.Owner, e.Process)
}

// InvalidTopologyError reports an element violating the required flow
// cardinality of its variant.
type InvalidTopologyError struct {
	Element string
	Process string
	Reason  string
}

func (e *InvalidTopologyError) Error() string {
	if e.Element == "" {
		return fmt.Sprintf("process '%s' %s", e.Process, e.Reason)
	}
	return fmt.Sprintf("element '%s' %s in process '%s'", e.Element, e.Reason, e.Process)
}

// EmptyDefinitionError reports a required sub-structure that is absent.
type EmptyDefinitionError struct {
	Category string
	Name     string
	Process  string
	Detail   string
}

func (e *EmptyDefinitionError) Error() string {
	return fmt.Sprintf("%s '%s' %s in process '%s'", e.Category, e.Name, e.Detail, e.Process)
}

// ExpressionSyntaxError reports a condition or script body that does not
// parse in its declared language.
type ExpressionSyntaxError struct {
	Owner      string
	Expression string
	Process    string
	Err        error
}

func (e *ExpressionSyntaxError) Error() string {
	return fmt.Sprintf("expression %q on '%s' in process '%s' does not parse: %s",
		e.Expression, e.Owner, e.Process, e.Err)
}

func (e *ExpressionSyntaxError) Unwrap() error { return e.Err }
