package bpml

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banzg00/bpml/pkg/storage"
	"github.com/banzg00/bpml/pkg/storage/inmemory"
)

const validDocument = `
projectInfo:
  name: HRSystem
  version: "1.0"
roles:
  - name: HR
processes:
  - name: Onboarding
    startEvents:
      - name: ApplicationReceived
    userTasks:
      - name: ReviewApplication
        assignee:
          role: HR
    serviceTasks:
      - name: CreateAccount
        implementation: accountService.create
    endEvents:
      - name: OnboardingDone
    flows:
      - source: ApplicationReceived
        target: ReviewApplication
      - source: ReviewApplication
        target: CreateAccount
      - source: CreateAccount
        target: OnboardingDone
`

const invalidDocument = `
projectInfo:
  name: HRSystem
processes:
  - name: Approval
    states:
      - name: Open
    tasks:
      - name: Review
        state: Open
`

func Test_load_valid_document(t *testing.T) {
	// given
	engine := NewEngine()
	// when
	deployment, err := engine.LoadFromBytes(context.Background(), []byte(validDocument))
	// then
	require.NoError(t, err)
	assert.NotZero(t, deployment.Key)
	assert.Len(t, deployment.Checksum, 32)
	assert.Equal(t, "HRSystem", deployment.Model.ProjectInfo.Name)
	require.Len(t, deployment.Model.Processes, 1)
	assert.Len(t, deployment.Model.Processes[0].FlowElements(), 4)
}

func Test_load_assigns_distinct_keys(t *testing.T) {
	engine := NewEngine()

	first, err := engine.LoadFromBytes(context.Background(), []byte(validDocument))
	require.NoError(t, err)
	second, err := engine.LoadFromBytes(context.Background(), []byte(validDocument))
	require.NoError(t, err)

	assert.NotEqual(t, first.Key, second.Key)
	assert.Equal(t, first.Checksum, second.Checksum)
}

func Test_load_invalid_document_returns_validation_error(t *testing.T) {
	engine := NewEngine()

	deployment, err := engine.LoadFromBytes(context.Background(), []byte(invalidDocument))

	assert.Nil(t, deployment)
	var assignErr *TaskAssignmentError
	require.ErrorAs(t, err, &assignErr)
}

func Test_load_malformed_yaml_fails(t *testing.T) {
	engine := NewEngine()

	deployment, err := engine.LoadFromBytes(context.Background(), []byte("{processes: ["))

	assert.Nil(t, deployment)
	assert.ErrorContains(t, err, "failed to unmarshal")
}

func Test_load_records_passed_run(t *testing.T) {
	store := inmemory.NewStorage()
	engine := NewEngine(EngineWithStorage(store))

	deployment, err := engine.LoadFromBytes(context.Background(), []byte(validDocument))
	require.NoError(t, err)

	runs, err := store.FindValidationRuns(context.Background(), "HRSystem", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, storage.RunOutcomePassed, runs[0].Outcome)
	assert.Equal(t, deployment.Checksum, runs[0].Checksum)
	assert.Empty(t, runs[0].Error)
}

func Test_load_reuses_prior_passed_run_for_same_checksum(t *testing.T) {
	// given
	store := inmemory.NewStorage()
	engine := NewEngine(EngineWithStorage(store))
	first, err := engine.LoadFromBytes(context.Background(), []byte(validDocument))
	require.NoError(t, err)
	// when
	second, err := engine.LoadFromBytes(context.Background(), []byte(validDocument))
	// then
	require.NoError(t, err)
	assert.Equal(t, first.Key, second.Key)

	runs, err := store.FindValidationRuns(context.Background(), "HRSystem", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func Test_load_revalidates_document_that_previously_failed(t *testing.T) {
	store := inmemory.NewStorage()
	engine := NewEngine(EngineWithStorage(store))

	_, err := engine.LoadFromBytes(context.Background(), []byte(invalidDocument))
	require.Error(t, err)
	_, err = engine.LoadFromBytes(context.Background(), []byte(invalidDocument))

	var assignErr *TaskAssignmentError
	require.ErrorAs(t, err, &assignErr)
	runs, err := store.FindValidationRuns(context.Background(), "HRSystem", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func Test_load_records_failed_run_with_error_kind(t *testing.T) {
	store := inmemory.NewStorage()
	engine := NewEngine(EngineWithStorage(store))

	_, err := engine.LoadFromBytes(context.Background(), []byte(invalidDocument))
	require.Error(t, err)

	runs, err := store.FindValidationRuns(context.Background(), "HRSystem", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, storage.RunOutcomeFailed, runs[0].Outcome)
	assert.Equal(t, "TaskAssignmentError", runs[0].ErrorKind)
	assert.NotEmpty(t, runs[0].Error)
}
