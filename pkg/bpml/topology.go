package bpml

import (
	"github.com/banzg00/bpml/pkg/bpml/model"
)

// flowGraph holds ordered incoming/outgoing adjacency built from the flow
// edges of one process, in declaration order.
type flowGraph struct {
	incoming map[string][]string
	outgoing map[string][]string
}

func buildFlowGraph(p *model.Process) *flowGraph {
	g := &flowGraph{
		incoming: make(map[string][]string),
		outgoing: make(map[string][]string),
	}
	for i := range p.Flows {
		f := &p.Flows[i]
		g.outgoing[f.Source] = append(g.outgoing[f.Source], f.Target)
		g.incoming[f.Target] = append(g.incoming[f.Target], f.Source)
	}
	return g
}

// validateTopology enforces the flow cardinality invariants of the canonical
// schema: start events have no incoming flow, end events no outgoing flow,
// every other element has at least one of each. The flow collection is
// treated as exhaustive.
func validateTopology(reg *processRegistry) error {
	p := reg.process
	if !p.HasFlowElements() {
		return nil
	}

	// flow endpoints were resolved by the referential pass; re-check with
	// flow-specific wording in case topology runs standalone
	for i := range p.Flows {
		f := &p.Flows[i]
		if _, ok := reg.elements[f.Source]; !ok {
			return &UnresolvedReferenceError{Referrer: flowLabel(f), Referenced: f.Source, Category: "flow source", Process: p.Name}
		}
		if _, ok := reg.elements[f.Target]; !ok {
			return &UnresolvedReferenceError{Referrer: flowLabel(f), Referenced: f.Target, Category: "flow target", Process: p.Name}
		}
	}

	g := buildFlowGraph(p)
	for _, element := range p.FlowElements() {
		name := element.GetName()
		in := g.incoming[name]
		out := g.outgoing[name]

		switch element.GetType() {
		case model.ElementTypeStartEvent:
			if len(in) > 0 {
				return &InvalidTopologyError{Element: name, Process: p.Name, Reason: "is a start event with incoming flow"}
			}
		case model.ElementTypeEndEvent:
			if len(out) > 0 {
				return &InvalidTopologyError{Element: name, Process: p.Name, Reason: "is an end event with outgoing flow"}
			}
		default:
			if len(in) == 0 || len(out) == 0 {
				return &InvalidTopologyError{Element: name, Process: p.Name, Reason: "is disconnected"}
			}
		}
	}
	return nil
}
