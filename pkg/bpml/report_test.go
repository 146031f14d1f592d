package bpml

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_analyze_produces_full_report(t *testing.T) {
	// given
	engine := NewEngine()
	deployment, err := engine.LoadFromBytes(context.Background(), []byte(validDocument))
	require.NoError(t, err)
	// when
	report, err := engine.Analyze(deployment, "Onboarding")
	// then
	require.NoError(t, err)
	assert.Equal(t, "Onboarding", report.ProcessName)
	assert.Equal(t, deployment.Checksum, report.Checksum)
	assert.Equal(t, 4, report.Metrics.TotalElements)
	assert.Len(t, report.ExecutionPaths, 1)
	assert.Empty(t, report.Cycles)
	assert.Empty(t, report.Orphans)
	assert.Empty(t, report.CompletenessLog)
	assert.Equal(t, 1, report.TimeEstimate.PathCount)
	assert.Equal(t, "Onboarding", report.Documentation["name"])
}

func Test_analyze_unknown_process(t *testing.T) {
	engine := NewEngine()
	deployment, err := engine.LoadFromBytes(context.Background(), []byte(validDocument))
	require.NoError(t, err)

	report, err := engine.Analyze(deployment, "Offboarding")

	assert.Nil(t, report)
	assert.ErrorContains(t, err, "not found")
}

func Test_analyze_serves_repeated_requests_from_cache(t *testing.T) {
	engine := NewEngine()
	deployment, err := engine.LoadFromBytes(context.Background(), []byte(validDocument))
	require.NoError(t, err)

	first, err := engine.Analyze(deployment, "Onboarding")
	require.NoError(t, err)
	second, err := engine.Analyze(deployment, "Onboarding")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func Test_analyze_cache_expires(t *testing.T) {
	engine := NewEngine(EngineWithReportCache(8, 10*time.Millisecond))
	deployment, err := engine.LoadFromBytes(context.Background(), []byte(validDocument))
	require.NoError(t, err)

	first, err := engine.Analyze(deployment, "Onboarding")
	require.NoError(t, err)
	time.Sleep(30 * time.Millisecond)
	second, err := engine.Analyze(deployment, "Onboarding")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}
