package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func Test_unmarshal_process_document(t *testing.T) {
	document := `
projectInfo:
  name: Shop
processes:
  - name: Checkout
    startEvents:
      - name: Start
    userTasks:
      - name: ConfirmOrder
        assignee:
          role: Clerk
        priority: high
    exclusiveGateways:
      - name: PaymentCheck
        conditions:
          - paid
          - "!paid"
    endEvents:
      - name: End
    flows:
      - source: Start
        target: ConfirmOrder
      - source: ConfirmOrder
        target: PaymentCheck
      - source: PaymentCheck
        target: End
        condition: paid
`
	var m Model
	require.NoError(t, yaml.Unmarshal([]byte(document), &m))

	require.Len(t, m.Processes, 1)
	p := &m.Processes[0]
	assert.Equal(t, "Checkout", p.Name)
	assert.Len(t, p.Flows, 3)

	elements := p.FlowElements()
	require.Len(t, elements, 4)
	// container order: start events, end events, then task variants
	assert.Equal(t, "Start", elements[0].GetName())
	assert.Equal(t, ElementTypeStartEvent, elements[0].GetType())
	assert.Equal(t, "End", elements[1].GetName())

	task, ok := p.FlowElementByName("ConfirmOrder").(*UserTask)
	require.True(t, ok)
	assert.Equal(t, AssigneeTypeRole, task.Assignee.Type())
	assert.Equal(t, PriorityHigh, task.Priority)

	gateway, ok := p.FlowElementByName("PaymentCheck").(GatewayElement)
	require.True(t, ok)
	assert.True(t, gateway.IsExclusive())
	assert.Equal(t, []string{"paid", "!paid"}, gateway.GetConditions())
}

func Test_element_lookup_miss(t *testing.T) {
	p := Process{}
	assert.Nil(t, p.FlowElementByName("ghost"))
	assert.False(t, p.HasFlowElements())
}

func Test_assignee_type_of_overpopulated_assignee(t *testing.T) {
	a := Assignee{Role: "HR", User: "alice"}
	assert.Equal(t, AssigneeType(""), a.Type())
	assert.False(t, a.IsZero())
}

func Test_service_task_error_handling(t *testing.T) {
	retries := 2
	assert.True(t, (&ServiceTask{RetryCount: &retries}).HasErrorHandling())
	assert.True(t, (&ServiceTask{OnFailure: "escalate"}).HasErrorHandling())
	zero := 0
	assert.False(t, (&ServiceTask{RetryCount: &zero}).HasErrorHandling())
	assert.False(t, (&ServiceTask{}).HasErrorHandling())
}

func Test_enum_validity(t *testing.T) {
	assert.True(t, PriorityCritical.Valid())
	assert.False(t, Priority("urgent").Valid())
	assert.True(t, CardinalityOneMany.Valid())
	assert.False(t, Cardinality("1..n").Valid())
	assert.True(t, ScriptLanguageGroovy.Valid())
	assert.False(t, ScriptLanguage("lua").Valid())
}
