package bpml

import (
	"context"
	"errors"

	"github.com/banzg00/bpml/pkg/bpml/model"
)

// Validate checks the whole model against the semantic rules of the
// language. Model-level structure, references and role cycles are checked
// first, then the passes run in a fixed order per process, in process
// declaration order: registry, structural, referential, cycles, topology.
// The first violation is returned as a typed error and no further checks
// run; a nil return means the model passed. The model is never mutated.
func (engine *Engine) Validate(ctx context.Context, m *model.Model) error {
	if err := validateModelStructure(m); err != nil {
		return err
	}
	if err := validateModelReferences(m); err != nil {
		return err
	}
	if err := validateModelCycles(m); err != nil {
		return err
	}

	for i := range m.Processes {
		p := &m.Processes[i]

		reg, err := buildRegistry(m, p)
		if err != nil {
			return err
		}
		if err := validateProcessStructure(reg); err != nil {
			return err
		}
		if err := validateReferences(reg); err != nil {
			return err
		}
		if err := validateCycles(reg); err != nil {
			return err
		}
		if err := validateTopology(reg); err != nil {
			return err
		}
	}

	return validateDashboardReferences(m)
}

// ErrorKind names the taxonomy kind of a validation error, for reporting
// and persistence. Unknown errors map to "Error".
func ErrorKind(err error) string {
	var (
		projectInfoErr  *ProjectInfoError
		duplicateErr    *DuplicateNameError
		unresolvedErr   *UnresolvedReferenceError
		assignmentErr   *TaskAssignmentError
		selfRefErr      *SelfReferenceError
		circularErr     *CircularDependencyError
		enumErr         *InvalidEnumValueError
		topologyErr     *InvalidTopologyError
		emptyDefErr     *EmptyDefinitionError
		expressionError *ExpressionSyntaxError
	)
	switch {
	case errors.As(err, &projectInfoErr):
		return "ProjectInfoError"
	case errors.As(err, &duplicateErr):
		return "DuplicateNameError"
	case errors.As(err, &unresolvedErr):
		return "UnresolvedReferenceError"
	case errors.As(err, &assignmentErr):
		return "TaskAssignmentError"
	case errors.As(err, &selfRefErr):
		return "SelfReferenceError"
	case errors.As(err, &circularErr):
		return "CircularDependencyError"
	case errors.As(err, &enumErr):
		return "InvalidEnumValueError"
	case errors.As(err, &topologyErr):
		return "InvalidTopologyError"
	case errors.As(err, &emptyDefErr):
		return "EmptyDefinitionError"
	case errors.As(err, &expressionError):
		return "ExpressionSyntaxError"
	}
	return "Error"
}
