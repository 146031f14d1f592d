package bpml

import (
	"github.com/banzg00/bpml/pkg/bpml/model"
)

// EntityExtractor analyzes entity relationships across a model for the ER
// diagram and documentation generators.
type EntityExtractor struct {
	model *model.Model
}

func NewEntityExtractor(m *model.Model) *EntityExtractor {
	return &EntityExtractor{model: m}
}

func (x *EntityExtractor) allEntities() []*model.Entity {
	var entities []*model.Entity
	for i := range x.model.Entities {
		entities = append(entities, &x.model.Entities[i])
	}
	for i := range x.model.Processes {
		p := &x.model.Processes[i]
		for j := range p.Entities {
			entities = append(entities, &p.Entities[j])
		}
	}
	return entities
}

// ExtractEntityDependencies maps every entity to the entities its
// relationships point at, in declaration order.
func (x *EntityExtractor) ExtractEntityDependencies() map[string][]string {
	dependencies := make(map[string][]string)
	for _, entity := range x.allEntities() {
		seen := make(map[string]struct{})
		for _, rel := range entity.Relationships {
			if _, dup := seen[rel.Type]; dup {
				continue
			}
			seen[rel.Type] = struct{}{}
			dependencies[entity.Name] = append(dependencies[entity.Name], rel.Type)
		}
	}
	return dependencies
}

// EntityUsage records one use of an entity inside a process.
type EntityUsage struct {
	Process string `json:"process"`
	Element string `json:"element"`
	Kind    string `json:"kind"`
}

// FindEntityUsage maps entity names to the data objects and tasks that use
// them across all processes.
func (x *EntityExtractor) FindEntityUsage() map[string][]EntityUsage {
	usage := make(map[string][]EntityUsage)
	for i := range x.model.Processes {
		p := &x.model.Processes[i]
		for j := range p.DataObjects {
			do := &p.DataObjects[j]
			usage[do.DataType.Entity] = append(usage[do.DataType.Entity], EntityUsage{
				Process: p.Name,
				Element: do.Name,
				Kind:    "data_object",
			})
		}
		for j := range p.Tasks {
			t := &p.Tasks[j]
			for _, entity := range t.Entities {
				usage[entity] = append(usage[entity], EntityUsage{
					Process: p.Name,
					Element: t.Name,
					Kind:    "task",
				})
			}
		}
	}
	return usage
}

// ERDiagram is the entity relationship diagram data for the frontend
// generator.
type ERDiagram struct {
	Entities      []ERDiagramEntity       `json:"entities"`
	Relationships []ERDiagramRelationship `json:"relationships"`
}

type ERDiagramEntity struct {
	Name       string            `json:"name"`
	Attributes []model.Attribute `json:"attributes"`
}

type ERDiagramRelationship struct {
	Source      string            `json:"source"`
	Target      string            `json:"target"`
	Name        string            `json:"name"`
	Cardinality model.Cardinality `json:"cardinality"`
	IsOptional  bool              `json:"isOptional"`
}

// GenerateERDiagram collects every entity with its attributes and every
// relationship edge.
func (x *EntityExtractor) GenerateERDiagram() ERDiagram {
	diagram := ERDiagram{
		Entities:      make([]ERDiagramEntity, 0),
		Relationships: make([]ERDiagramRelationship, 0),
	}
	for _, entity := range x.allEntities() {
		diagram.Entities = append(diagram.Entities, ERDiagramEntity{
			Name:       entity.Name,
			Attributes: entity.Attributes,
		})
		for _, rel := range entity.Relationships {
			diagram.Relationships = append(diagram.Relationships, ERDiagramRelationship{
				Source:      entity.Name,
				Target:      rel.Type,
				Name:        rel.Name,
				Cardinality: rel.Cardinality,
				IsOptional:  rel.IsOptional,
			})
		}
	}
	return diagram
}
