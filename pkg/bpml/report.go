package bpml

import (
	"fmt"
	"time"
)

// AnalysisReport aggregates the analytics computed for one process of a
// validated model document.
type AnalysisReport struct {
	ProcessName     string            `json:"processName"`
	Checksum        string            `json:"checksum"`
	GeneratedAt     time.Time         `json:"generatedAt"`
	Metrics         ProcessMetrics    `json:"metrics"`
	ExecutionPaths  [][]string        `json:"executionPaths"`
	Cycles          [][]string        `json:"cycles"`
	Orphans         []OrphanedElement `json:"orphans"`
	Bottlenecks     []Bottleneck      `json:"bottlenecks"`
	Optimizations   []Optimization    `json:"optimizations"`
	CompletenessLog []string          `json:"completeness"`
	TimeEstimate    TimeEstimate      `json:"timeEstimate"`
	Documentation   map[string]any    `json:"documentation"`
}

// Analyze computes the full analysis report for one process of a validated
// deployment. Reports are cached per document checksum and process name, so
// repeated requests for the same document are served from memory.
func (engine *Engine) Analyze(deployment *ModelDeployment, processName string) (*AnalysisReport, error) {
	cacheKey := deployment.Checksum + "/" + processName
	if report, ok := engine.reportCache.Get(cacheKey); ok {
		engine.logger.Debug("analysis report served from cache",
			"process", processName, "checksum", deployment.Checksum)
		return report, nil
	}

	process := deployment.Model.ProcessByName(processName)
	if process == nil {
		return nil, fmt.Errorf("process %s not found in model %s",
			processName, deployment.Model.ProjectInfo.Name)
	}

	analyzer := NewAnalyzer(process).WithMaxDepth(engine.maxPathDepth)
	report := &AnalysisReport{
		ProcessName:     processName,
		Checksum:        deployment.Checksum,
		GeneratedAt:     time.Now(),
		Metrics:         analyzer.CalculateProcessMetrics(),
		ExecutionPaths:  analyzer.FindExecutionPaths(),
		Cycles:          analyzer.DetectCycles(),
		Orphans:         analyzer.FindOrphanedElements(),
		Bottlenecks:     analyzer.FindBottlenecks(),
		Optimizations:   analyzer.SuggestOptimizations(),
		CompletenessLog: ValidateProcessCompleteness(process),
		TimeEstimate:    analyzer.EstimateExecutionTime(nil),
		Documentation:   GenerateProcessDocumentation(process),
	}

	engine.reportCache.Add(cacheKey, report)
	return report, nil
}
