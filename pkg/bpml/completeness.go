package bpml

import (
	"fmt"

	"github.com/banzg00/bpml/pkg/bpml/model"
)

// ValidateProcessCompleteness lints a process for execution readiness and
// returns a descriptive list of issues. Unlike the validator it never fails;
// an empty result means the process is complete.
func ValidateProcessCompleteness(p *model.Process) []string {
	var issues []string

	if len(p.StartEvents) == 0 {
		issues = append(issues, "process must have at least one start event")
	}
	if len(p.EndEvents) == 0 {
		issues = append(issues, "process must have at least one end event")
	}

	for i := range p.UserTasks {
		ut := &p.UserTasks[i]
		if (ut.Assignee == nil || ut.Assignee.IsZero()) && len(ut.CandidateGroups) == 0 {
			issues = append(issues, fmt.Sprintf("user task '%s' has no assignee or candidate groups", ut.Name))
		}
	}

	for i := range p.ServiceTasks {
		st := &p.ServiceTasks[i]
		if st.Implementation == "" {
			issues = append(issues, fmt.Sprintf("service task '%s' has no implementation defined", st.Name))
		}
	}

	for _, element := range p.FlowElements() {
		gateway, ok := element.(model.GatewayElement)
		if !ok || gateway.IsParallel() {
			continue
		}
		if len(gateway.GetConditions()) == 0 {
			issues = append(issues, fmt.Sprintf("gateway '%s' has no conditions defined", gateway.GetName()))
		}
	}

	return issues
}
