package bpml

import (
	"fmt"
	"sort"
	"strings"

	"github.com/banzg00/bpml/pkg/bpml/model"
)

// ProcessMetrics aggregates the complexity numbers of one process.
type ProcessMetrics struct {
	TotalElements        int     `json:"total_elements"`
	StartEvents          int     `json:"start_events"`
	EndEvents            int     `json:"end_events"`
	UserTasks            int     `json:"user_tasks"`
	ServiceTasks         int     `json:"service_tasks"`
	ScriptTasks          int     `json:"script_tasks"`
	Gateways             int     `json:"gateways"`
	ParallelPaths        int     `json:"parallel_paths"`
	MaxPathLength        int     `json:"max_path_length"`
	AvgPathLength        float64 `json:"avg_path_length"`
	CyclomaticComplexity int     `json:"cyclomatic_complexity"`
}

// CalculateProcessMetrics counts elements per variant and derives the path
// and complexity metrics. Cyclomatic complexity is the number of decision
// gateways plus one.
func (a *Analyzer) CalculateProcessMetrics() ProcessMetrics {
	metrics := ProcessMetrics{
		TotalElements: len(a.order),
		ParallelPaths: 1,
	}
	decisionPoints := 0
	for _, name := range a.order {
		switch a.elements[name].GetType() {
		case model.ElementTypeStartEvent:
			metrics.StartEvents++
		case model.ElementTypeEndEvent:
			metrics.EndEvents++
		case model.ElementTypeUserTask:
			metrics.UserTasks++
		case model.ElementTypeServiceTask:
			metrics.ServiceTasks++
		case model.ElementTypeScriptTask:
			metrics.ScriptTasks++
		case model.ElementTypeExclusiveGateway, model.ElementTypeInclusiveGateway:
			metrics.Gateways++
			decisionPoints++
		case model.ElementTypeParallelGateway:
			metrics.Gateways++
			if fanOut := len(a.outgoing[name]); fanOut > metrics.ParallelPaths {
				metrics.ParallelPaths = fanOut
			}
		}
	}
	metrics.CyclomaticComplexity = decisionPoints + 1

	paths := a.FindExecutionPaths()
	if len(paths) > 0 {
		total := 0
		for _, path := range paths {
			if len(path) > metrics.MaxPathLength {
				metrics.MaxPathLength = len(path)
			}
			total += len(path)
		}
		metrics.AvgPathLength = float64(total) / float64(len(paths))
	}
	return metrics
}

type BottleneckSeverity string

const (
	BottleneckSeverityMedium BottleneckSeverity = "medium"
	BottleneckSeverityHigh   BottleneckSeverity = "high"
)

type Bottleneck struct {
	Element  string             `json:"element"`
	Type     model.ElementType  `json:"type"`
	Reason   string             `json:"reason"`
	Severity BottleneckSeverity `json:"severity"`
}

// FindBottlenecks flags elements with a fan-in above two and user tasks
// pinned to a single named user without candidate groups.
func (a *Analyzer) FindBottlenecks() []Bottleneck {
	var bottlenecks []Bottleneck
	for _, name := range a.order {
		element := a.elements[name]
		if fanIn := len(a.incoming[name]); fanIn > 2 {
			bottlenecks = append(bottlenecks, Bottleneck{
				Element:  name,
				Type:     element.GetType(),
				Reason:   fmt.Sprintf("high fan-in: %d incoming flows", fanIn),
				Severity: BottleneckSeverityMedium,
			})
		}
		userTask, ok := element.(*model.UserTask)
		if !ok {
			continue
		}
		if len(userTask.CandidateGroups) == 0 &&
			userTask.Assignee != nil && userTask.Assignee.Type() == model.AssigneeTypeUser {
			bottlenecks = append(bottlenecks, Bottleneck{
				Element:  name,
				Type:     element.GetType(),
				Reason:   "single user assignment without candidate groups",
				Severity: BottleneckSeverityHigh,
			})
		}
	}
	return bottlenecks
}

type OptimizationType string

const (
	OptimizationTypeParallelization OptimizationType = "parallelization"
	OptimizationTypeSimplification  OptimizationType = "simplification"
	OptimizationTypeErrorHandling   OptimizationType = "error_handling"
)

type Optimization struct {
	Type        OptimizationType `json:"type"`
	Description string           `json:"description"`
	Elements    []string         `json:"elements"`
	Priority    model.Priority   `json:"priority"`
}

// SuggestOptimizations produces heuristic suggestions: chains of adjacent
// user tasks can run in parallel, gateways with one incoming and one
// outgoing edge can go, and service tasks without error handling should get
// some.
func (a *Analyzer) SuggestOptimizations() []Optimization {
	var suggestions []Optimization

	if sequential := a.findSequentialUserTasks(); len(sequential) > 1 {
		suggestions = append(suggestions, Optimization{
			Type:        OptimizationTypeParallelization,
			Description: fmt.Sprintf("Consider parallelizing tasks: %s", strings.Join(sequential, ", ")),
			Elements:    sequential,
			Priority:    model.PriorityNormal,
		})
	}

	for _, name := range a.order {
		if _, ok := a.elements[name].(model.GatewayElement); !ok {
			continue
		}
		if len(a.incoming[name]) == 1 && len(a.outgoing[name]) == 1 {
			suggestions = append(suggestions, Optimization{
				Type:        OptimizationTypeSimplification,
				Description: fmt.Sprintf("Gateway %q might be redundant", name),
				Elements:    []string{name},
				Priority:    model.PriorityLow,
			})
		}
	}

	for _, name := range a.order {
		serviceTask, ok := a.elements[name].(*model.ServiceTask)
		if !ok || serviceTask.HasErrorHandling() {
			continue
		}
		suggestions = append(suggestions, Optimization{
			Type:        OptimizationTypeErrorHandling,
			Description: fmt.Sprintf("Add error handling to service task %q", name),
			Elements:    []string{name},
			Priority:    model.PriorityHigh,
		})
	}

	return suggestions
}

// findSequentialUserTasks returns user tasks that directly feed another user
// task, deduplicated, in element declaration order.
func (a *Analyzer) findSequentialUserTasks() []string {
	seen := make(map[string]int)
	for _, name := range a.order {
		if a.elements[name].GetType() != model.ElementTypeUserTask {
			continue
		}
		out := a.outgoing[name]
		if len(out) != 1 {
			continue
		}
		next := out[0]
		if nextElement, ok := a.elements[next]; ok && nextElement.GetType() == model.ElementTypeUserTask {
			if _, dup := seen[name]; !dup {
				seen[name] = len(seen)
			}
			if _, dup := seen[next]; !dup {
				seen[next] = len(seen)
			}
		}
	}
	tasks := make([]string, 0, len(seen))
	for name := range seen {
		tasks = append(tasks, name)
	}
	sort.Slice(tasks, func(i, j int) bool { return seen[tasks[i]] < seen[tasks[j]] })
	return tasks
}

// defaultTimeEstimates are per-variant execution estimates in minutes.
var defaultTimeEstimates = map[model.ElementType]float64{
	model.ElementTypeUserTask:    30,
	model.ElementTypeServiceTask: 2,
	model.ElementTypeScriptTask:  1,
}

// TimeEstimate aggregates estimated execution time over all enumerated
// paths, in minutes.
type TimeEstimate struct {
	MinTime   float64 `json:"min_time"`
	MaxTime   float64 `json:"max_time"`
	AvgTime   float64 `json:"avg_time"`
	PathCount int     `json:"path_count"`
}

// EstimateExecutionTime sums per-path durations using the supplied
// per-element estimates, falling back to variant defaults. The zero
// TimeEstimate is returned when no path exists.
func (a *Analyzer) EstimateExecutionTime(estimates map[string]float64) TimeEstimate {
	var result TimeEstimate
	var total float64
	for path := range a.ExecutionPaths() {
		var pathTime float64
		for _, name := range path {
			if estimate, ok := estimates[name]; ok {
				pathTime += estimate
				continue
			}
			if element, ok := a.elements[name]; ok {
				pathTime += defaultTimeEstimates[element.GetType()]
			}
		}
		if result.PathCount == 0 || pathTime < result.MinTime {
			result.MinTime = pathTime
		}
		if pathTime > result.MaxTime {
			result.MaxTime = pathTime
		}
		total += pathTime
		result.PathCount++
	}
	if result.PathCount > 0 {
		result.AvgTime = total / float64(result.PathCount)
	}
	return result
}
