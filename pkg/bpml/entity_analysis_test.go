package bpml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banzg00/bpml/pkg/bpml/model"
)

func crmModel() *model.Model {
	return &model.Model{
		ProjectInfo: model.ProjectInfo{Name: "CRM"},
		Entities: []model.Entity{
			{
				Name: "Customer",
				Attributes: []model.Attribute{
					{Name: "name", Type: model.AttributeTypeString},
					{Name: "email", Type: model.AttributeTypeEmail},
				},
				Relationships: []model.Relationship{
					{Name: "orders", Type: "Order", Cardinality: model.CardinalityZeroMany},
				},
			},
			{
				Name: "Order",
				Attributes: []model.Attribute{
					{Name: "total", Type: model.AttributeTypeFloat},
				},
				Relationships: []model.Relationship{
					{Name: "customer", Type: "Customer", Cardinality: model.CardinalityOneOne},
				},
			},
		},
		Processes: []model.Process{
			{
				Name: "OrderHandling",
				FlowElementsContainer: model.FlowElementsContainer{
					DataObjects: []model.DataObject{
						{
							BaseElement: model.BaseElement{Name: "order"},
							DataType:    model.DataTypeRef{Entity: "Order"},
						},
					},
				},
				States: []model.State{{Name: "New"}},
				Tasks: []model.Task{
					{Name: "Verify", State: "New", Auto: true, Entities: []string{"Customer", "Order"}},
				},
			},
		},
	}
}

func Test_entity_dependencies(t *testing.T) {
	x := NewEntityExtractor(crmModel())

	deps := x.ExtractEntityDependencies()

	assert.Equal(t, []string{"Order"}, deps["Customer"])
	assert.Equal(t, []string{"Customer"}, deps["Order"])
}

func Test_entity_usage_across_processes(t *testing.T) {
	x := NewEntityExtractor(crmModel())

	usage := x.FindEntityUsage()

	require.Len(t, usage["Order"], 2)
	assert.Equal(t, EntityUsage{Process: "OrderHandling", Element: "order", Kind: "data_object"}, usage["Order"][0])
	assert.Equal(t, EntityUsage{Process: "OrderHandling", Element: "Verify", Kind: "task"}, usage["Order"][1])
	require.Len(t, usage["Customer"], 1)
	assert.Equal(t, "task", usage["Customer"][0].Kind)
}

func Test_er_diagram_generation(t *testing.T) {
	x := NewEntityExtractor(crmModel())

	diagram := x.GenerateERDiagram()

	require.Len(t, diagram.Entities, 2)
	assert.Equal(t, "Customer", diagram.Entities[0].Name)
	assert.Len(t, diagram.Entities[0].Attributes, 2)

	require.Len(t, diagram.Relationships, 2)
	assert.Equal(t, ERDiagramRelationship{
		Source:      "Customer",
		Target:      "Order",
		Name:        "orders",
		Cardinality: model.CardinalityZeroMany,
	}, diagram.Relationships[0])
}
