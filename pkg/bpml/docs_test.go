package bpml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banzg00/bpml/pkg/bpml/model"
)

func Test_documentation_of_onboarding_process(t *testing.T) {
	// given
	m := onboardingModel()
	// when
	doc := GenerateProcessDocumentation(&m.Processes[0])
	// then
	assert.Equal(t, "Onboarding", doc["name"])

	elements, ok := doc["elements"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, elements, 4)
	assert.Equal(t, "ApplicationReceived", elements[0]["name"])
	assert.Equal(t, "START_EVENT", elements[0]["type"])

	flows, ok := doc["flows"].([]map[string]any)
	require.True(t, ok)
	assert.Len(t, flows, 3)

	assert.Equal(t, []string{"HR"}, doc["roles_involved"])
	assert.Equal(t, []string{}, doc["entities_used"])
}

func Test_documentation_includes_task_details(t *testing.T) {
	m := onboardingModel()
	p := &m.Processes[0]
	p.UserTasks[0].Form = &model.Form{
		Name: "ReviewForm",
		Fields: []model.Field{
			{Name: "decision", FieldType: model.FieldTypeSelect},
			{Name: "comment", FieldType: model.FieldTypeTextarea},
		},
	}
	p.DataObjects = append(p.DataObjects, model.DataObject{
		BaseElement: model.BaseElement{Name: "application"},
		DataType:    model.DataTypeRef{Entity: "Application"},
	})

	doc := GenerateProcessDocumentation(p)

	elements := doc["elements"].([]map[string]any)
	var userTaskDoc, serviceTaskDoc map[string]any
	for _, e := range elements {
		switch e["name"] {
		case "ReviewApplication":
			userTaskDoc = e
		case "CreateAccount":
			serviceTaskDoc = e
		}
	}
	require.NotNil(t, userTaskDoc)
	assert.Equal(t, "Role: HR", userTaskDoc["assignee"])
	assert.Equal(t, []string{"decision", "comment"}, userTaskDoc["formFields"])
	require.NotNil(t, serviceTaskDoc)
	assert.Equal(t, "accountService.create", serviceTaskDoc["implementation"])
	assert.Equal(t, []string{"Application"}, doc["entities_used"])
}
