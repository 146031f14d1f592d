package bpml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banzg00/bpml/pkg/bpml/model"
	"github.com/banzg00/bpml/pkg/ptr"
)

// branchingProcess has an exclusive gateway with two outcomes joining into
// one end event.
func branchingProcess() *model.Process {
	return &model.Process{
		Name: "Claim",
		FlowElementsContainer: model.FlowElementsContainer{
			StartEvents: []model.StartEvent{
				{BaseElement: model.BaseElement{Name: "Start"}},
			},
			UserTasks: []model.UserTask{
				{BaseElement: model.BaseElement{Name: "Assess"}, Assignee: &model.Assignee{Role: "Adjuster"}},
			},
			ServiceTasks: []model.ServiceTask{
				{BaseElement: model.BaseElement{Name: "Payout"}, Implementation: "payments.transfer"},
				{BaseElement: model.BaseElement{Name: "Reject"}, Implementation: "claims.reject"},
			},
			ExclusiveGateways: []model.ExclusiveGateway{
				{BaseElement: model.BaseElement{Name: "Decision"}, Conditions: []string{"approved", "!approved"}},
			},
			EndEvents: []model.EndEvent{
				{BaseElement: model.BaseElement{Name: "End"}},
			},
			Flows: []model.Flow{
				{Source: "Start", Target: "Assess"},
				{Source: "Assess", Target: "Decision"},
				{Source: "Decision", Target: "Payout", Condition: "approved"},
				{Source: "Decision", Target: "Reject", Condition: "!approved"},
				{Source: "Payout", Target: "End"},
				{Source: "Reject", Target: "End"},
			},
		},
	}
}

func Test_linear_process_has_single_path(t *testing.T) {
	// given
	m := onboardingModel()
	a := NewAnalyzer(&m.Processes[0])
	// when
	paths := a.FindExecutionPaths()
	// then
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"ApplicationReceived", "ReviewApplication", "CreateAccount", "OnboardingDone"}, paths[0])
}

func Test_branching_process_has_two_paths(t *testing.T) {
	a := NewAnalyzer(branchingProcess())

	paths := a.FindExecutionPaths()

	require.Len(t, paths, 2)
	// DFS follows outgoing edge declaration order
	assert.Equal(t, []string{"Start", "Assess", "Decision", "Payout", "End"}, paths[0])
	assert.Equal(t, []string{"Start", "Assess", "Decision", "Reject", "End"}, paths[1])
}

func Test_path_enumeration_is_restartable(t *testing.T) {
	a := NewAnalyzer(branchingProcess())
	seq := a.ExecutionPaths()

	var first, second int
	for range seq {
		first++
	}
	for range seq {
		second++
	}

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
}

func Test_path_enumeration_stops_early(t *testing.T) {
	a := NewAnalyzer(branchingProcess())

	var collected [][]string
	for path := range a.ExecutionPaths() {
		collected = append(collected, path)
		break
	}

	assert.Len(t, collected, 1)
}

func Test_depth_bound_abandons_long_paths(t *testing.T) {
	// given a linear chain longer than the bound
	p := &model.Process{Name: "Deep"}
	p.StartEvents = []model.StartEvent{{BaseElement: model.BaseElement{Name: "S"}}}
	p.EndEvents = []model.EndEvent{{BaseElement: model.BaseElement{Name: "E"}}}
	prev := "S"
	for i := 0; i < 5; i++ {
		name := string(rune('a' + i))
		p.ServiceTasks = append(p.ServiceTasks, model.ServiceTask{
			BaseElement: model.BaseElement{Name: name}, Implementation: "noop",
		})
		p.Flows = append(p.Flows, model.Flow{Source: prev, Target: name})
		prev = name
	}
	p.Flows = append(p.Flows, model.Flow{Source: prev, Target: "E"})
	// when the bound is below the chain length
	paths := NewAnalyzer(p).WithMaxDepth(3).FindExecutionPaths()
	// then
	assert.Empty(t, paths)
}

func Test_detect_cycles_finds_loop(t *testing.T) {
	p := branchingProcess()
	// rework loop: rejection feeds back into assessment
	p.Flows = append(p.Flows, model.Flow{Source: "Reject", Target: "Assess"})

	cycles := NewAnalyzer(p).DetectCycles()

	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"Assess", "Decision", "Reject", "Assess"}, cycles[0])
}

func Test_detect_cycles_on_acyclic_process(t *testing.T) {
	cycles := NewAnalyzer(branchingProcess()).DetectCycles()
	assert.Empty(t, cycles)
}

func Test_orphaned_elements_reported(t *testing.T) {
	p := branchingProcess()
	p.ServiceTasks = append(p.ServiceTasks, model.ServiceTask{
		BaseElement: model.BaseElement{Name: "Stray"}, Implementation: "noop",
	})

	orphans := NewAnalyzer(p).FindOrphanedElements()

	require.Len(t, orphans, 2)
	assert.Equal(t, "Stray", orphans[0].Element)
	assert.Equal(t, "no incoming connections", orphans[0].Issue)
	assert.Equal(t, "Stray", orphans[1].Element)
	assert.Equal(t, "no outgoing connections", orphans[1].Issue)
}

func Test_orphaned_elements_empty_on_connected_process(t *testing.T) {
	assert.Empty(t, NewAnalyzer(branchingProcess()).FindOrphanedElements())
}

func Test_bottleneck_for_single_user_assignment(t *testing.T) {
	p := branchingProcess()
	p.UserTasks[0].Assignee = &model.Assignee{User: "alice"}

	bottlenecks := NewAnalyzer(p).FindBottlenecks()

	require.Len(t, bottlenecks, 1)
	assert.Equal(t, "Assess", bottlenecks[0].Element)
	assert.Equal(t, BottleneckSeverityHigh, bottlenecks[0].Severity)
}

func Test_bottleneck_for_high_fan_in(t *testing.T) {
	p := branchingProcess()
	p.ScriptTasks = append(p.ScriptTasks, model.ScriptTask{
		BaseElement: model.BaseElement{Name: "Audit"}, Script: "audit()",
	})
	p.Flows = append(p.Flows,
		model.Flow{Source: "Start", Target: "Audit"},
		model.Flow{Source: "Payout", Target: "Audit"},
		model.Flow{Source: "Reject", Target: "Audit"},
		model.Flow{Source: "Audit", Target: "End"},
	)

	bottlenecks := NewAnalyzer(p).FindBottlenecks()

	require.Len(t, bottlenecks, 2)
	assert.Equal(t, "End", bottlenecks[0].Element)
	assert.Equal(t, BottleneckSeverityMedium, bottlenecks[0].Severity)
	assert.Equal(t, "Audit", bottlenecks[1].Element)
}

func Test_suggests_error_handling_for_bare_service_tasks(t *testing.T) {
	p := branchingProcess()

	suggestions := NewAnalyzer(p).SuggestOptimizations()

	require.Len(t, suggestions, 2)
	for _, s := range suggestions {
		assert.Equal(t, OptimizationTypeErrorHandling, s.Type)
		assert.Equal(t, model.PriorityHigh, s.Priority)
	}
}

func Test_no_error_handling_suggestion_with_retries(t *testing.T) {
	p := branchingProcess()
	p.ServiceTasks[0].RetryCount = ptr.To(3)
	p.ServiceTasks[1].OnFailure = "claims.escalate"

	suggestions := NewAnalyzer(p).SuggestOptimizations()

	assert.Empty(t, suggestions)
}

func Test_suggests_parallelization_for_sequential_user_tasks(t *testing.T) {
	p := &model.Process{Name: "Review"}
	p.StartEvents = []model.StartEvent{{BaseElement: model.BaseElement{Name: "S"}}}
	p.EndEvents = []model.EndEvent{{BaseElement: model.BaseElement{Name: "E"}}}
	p.UserTasks = []model.UserTask{
		{BaseElement: model.BaseElement{Name: "First"}, Assignee: &model.Assignee{Role: "Clerk"}},
		{BaseElement: model.BaseElement{Name: "Second"}, Assignee: &model.Assignee{Role: "Clerk"}},
	}
	p.Flows = []model.Flow{
		{Source: "S", Target: "First"},
		{Source: "First", Target: "Second"},
		{Source: "Second", Target: "E"},
	}

	suggestions := NewAnalyzer(p).SuggestOptimizations()

	require.Len(t, suggestions, 1)
	assert.Equal(t, OptimizationTypeParallelization, suggestions[0].Type)
	assert.Equal(t, []string{"First", "Second"}, suggestions[0].Elements)
}

func Test_suggests_removal_of_pass_through_gateway(t *testing.T) {
	p := onboardingModel().Processes[0]
	p.ExclusiveGateways = append(p.ExclusiveGateways, model.ExclusiveGateway{
		BaseElement: model.BaseElement{Name: "Check"}, Conditions: []string{"true"},
	})
	p.Flows = []model.Flow{
		{Source: "ApplicationReceived", Target: "ReviewApplication"},
		{Source: "ReviewApplication", Target: "Check"},
		{Source: "Check", Target: "CreateAccount"},
		{Source: "CreateAccount", Target: "OnboardingDone"},
	}

	suggestions := NewAnalyzer(&p).SuggestOptimizations()

	var simplifications []Optimization
	for _, s := range suggestions {
		if s.Type == OptimizationTypeSimplification {
			simplifications = append(simplifications, s)
		}
	}
	require.Len(t, simplifications, 1)
	assert.Equal(t, []string{"Check"}, simplifications[0].Elements)
}

func Test_time_estimate_uses_variant_defaults(t *testing.T) {
	// given the onboarding process: one user task (30) and one service task (2)
	m := onboardingModel()
	a := NewAnalyzer(&m.Processes[0])
	// when
	estimate := a.EstimateExecutionTime(nil)
	// then
	assert.Equal(t, 1, estimate.PathCount)
	assert.Equal(t, 32.0, estimate.MinTime)
	assert.Equal(t, 32.0, estimate.MaxTime)
	assert.Equal(t, 32.0, estimate.AvgTime)
}

func Test_time_estimate_with_overrides(t *testing.T) {
	m := onboardingModel()
	a := NewAnalyzer(&m.Processes[0])

	estimate := a.EstimateExecutionTime(map[string]float64{"ReviewApplication": 10})

	assert.Equal(t, 12.0, estimate.AvgTime)
}

func Test_time_estimate_without_paths(t *testing.T) {
	p := &model.Process{Name: "Empty"}
	estimate := NewAnalyzer(p).EstimateExecutionTime(nil)
	assert.Equal(t, TimeEstimate{}, estimate)
}
