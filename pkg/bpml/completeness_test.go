package bpml

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banzg00/bpml/pkg/bpml/model"
)

func Test_complete_process_has_no_issues(t *testing.T) {
	m := onboardingModel()
	assert.Empty(t, ValidateProcessCompleteness(&m.Processes[0]))
}

func Test_completeness_reports_missing_events(t *testing.T) {
	p := &model.Process{Name: "Empty"}

	issues := ValidateProcessCompleteness(p)

	assert.Contains(t, issues, "process must have at least one start event")
	assert.Contains(t, issues, "process must have at least one end event")
}

func Test_completeness_reports_unassigned_user_task(t *testing.T) {
	m := onboardingModel()
	p := &m.Processes[0]
	p.UserTasks[0].Assignee = nil

	issues := ValidateProcessCompleteness(p)

	assert.Contains(t, issues, "user task 'ReviewApplication' has no assignee or candidate groups")
}

func Test_completeness_accepts_candidate_groups_instead_of_assignee(t *testing.T) {
	m := onboardingModel()
	p := &m.Processes[0]
	p.UserTasks[0].Assignee = nil
	p.UserTasks[0].CandidateGroups = []string{"HR"}

	assert.Empty(t, ValidateProcessCompleteness(p))
}

func Test_completeness_reports_conditionless_gateway(t *testing.T) {
	p := branchingProcess()
	p.ExclusiveGateways[0].Conditions = nil

	issues := ValidateProcessCompleteness(p)

	assert.Contains(t, issues, "gateway 'Decision' has no conditions defined")
}
