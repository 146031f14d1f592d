package bpml

import (
	"iter"

	"github.com/banzg00/bpml/pkg/bpml/model"
)

// Analyzer computes read-only analytics over one process. It is meant to run
// on a validated process and never fails: incomplete input degrades to empty
// results. The adjacency it builds is a disposable cache over the immutable
// process.
type Analyzer struct {
	process  *model.Process
	elements map[string]model.FlowElement
	order    []string
	incoming map[string][]string
	outgoing map[string][]string
	maxDepth int
}

// NewAnalyzer builds the element and flow graphs for the process.
func NewAnalyzer(p *model.Process) *Analyzer {
	a := &Analyzer{
		process:  p,
		elements: make(map[string]model.FlowElement),
		incoming: make(map[string][]string),
		outgoing: make(map[string][]string),
		maxDepth: DefaultMaxPathDepth,
	}
	for _, element := range p.FlowElements() {
		name := element.GetName()
		if _, dup := a.elements[name]; dup {
			continue
		}
		a.elements[name] = element
		a.order = append(a.order, name)
	}
	for i := range p.Flows {
		f := &p.Flows[i]
		a.outgoing[f.Source] = append(a.outgoing[f.Source], f.Target)
		a.incoming[f.Target] = append(a.incoming[f.Target], f.Source)
	}
	return a
}

// WithMaxDepth overrides the path enumeration depth bound.
func (a *Analyzer) WithMaxDepth(depth int) *Analyzer {
	if depth > 0 {
		a.maxDepth = depth
	}
	return a
}

func (a *Analyzer) elementsOfType(t model.ElementType) []string {
	var names []string
	for _, name := range a.order {
		if a.elements[name].GetType() == t {
			names = append(names, name)
		}
	}
	return names
}

// ExecutionPaths enumerates all simple paths from every start event to every
// end event, in DFS visitation order following outgoing edge declaration
// order. A path is abandoned once its length exceeds the depth bound, which
// keeps the enumeration finite on graphs with revisit potential. Each range
// over the sequence restarts the walk.
func (a *Analyzer) ExecutionPaths() iter.Seq[[]string] {
	starts := a.elementsOfType(model.ElementTypeStartEvent)
	ends := a.elementsOfType(model.ElementTypeEndEvent)
	return func(yield func([]string) bool) {
		for _, start := range starts {
			for _, end := range ends {
				if !a.pathsBetween(start, end, yield) {
					return
				}
			}
		}
	}
}

// FindExecutionPaths collects the full enumeration.
func (a *Analyzer) FindExecutionPaths() [][]string {
	var paths [][]string
	for path := range a.ExecutionPaths() {
		paths = append(paths, path)
	}
	return paths
}

// pathsBetween yields every simple path from start to end; it reports false
// when the consumer stopped the enumeration.
func (a *Analyzer) pathsBetween(start, end string, yield func([]string) bool) bool {
	visited := make(map[string]bool)

	var dfs func(current string, path []string, depth int) bool
	dfs = func(current string, path []string, depth int) bool {
		if depth > a.maxDepth {
			return true
		}
		if current == end {
			full := make([]string, 0, len(path)+1)
			full = append(full, path...)
			full = append(full, current)
			return yield(full)
		}
		if visited[current] {
			return true
		}
		visited[current] = true
		next := make([]string, 0, len(path)+1)
		next = append(next, path...)
		next = append(next, current)
		for _, neighbor := range a.outgoing[current] {
			if !dfs(neighbor, next, depth+1) {
				return false
			}
		}
		delete(visited, current)
		return true
	}
	return dfs(start, nil, 0)
}

// DetectCycles reports every cycle reachable in the element flow graph. It
// reuses the validator's traversal but collects instead of aborting; call
// sites use it for diagnostics only.
func (a *Analyzer) DetectCycles() [][]string {
	graph := newAdjacency()
	for _, name := range a.order {
		graph.addNode(name)
		for _, target := range a.outgoing[name] {
			graph.addEdge(name, target)
		}
	}
	return collectCycles(graph)
}

// collectCycles runs the same DFS as detectCycle but keeps going, returning
// every back-edge cycle found.
func collectCycles(a *adjacency) [][]string {
	visited := make(map[string]bool, len(a.order))
	onStack := make(map[string]bool, len(a.order))
	var cycles [][]string

	type frame struct {
		node string
		next int
	}

	for _, start := range a.order {
		if visited[start] {
			continue
		}
		stack := []frame{{node: start}}
		path := []string{start}
		visited[start] = true
		onStack[start] = true

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			edges := a.edges[top.node]
			if top.next >= len(edges) {
				onStack[top.node] = false
				stack = stack[:len(stack)-1]
				path = path[:len(path)-1]
				continue
			}
			neighbor := edges[top.next]
			top.next++

			if onStack[neighbor] {
				cycleStart := 0
				for i, name := range path {
					if name == neighbor {
						cycleStart = i
						break
					}
				}
				cycle := append([]string{}, path[cycleStart:]...)
				cycles = append(cycles, append(cycle, neighbor))
				continue
			}
			if visited[neighbor] {
				continue
			}
			if _, declared := a.edges[neighbor]; !declared {
				continue
			}
			visited[neighbor] = true
			onStack[neighbor] = true
			stack = append(stack, frame{node: neighbor})
			path = append(path, neighbor)
		}
	}
	return cycles
}

// OrphanedElement describes a connectivity defect found by the non-fatal
// analyzer counterpart of the topology validator.
type OrphanedElement struct {
	Element string            `json:"element"`
	Type    model.ElementType `json:"type"`
	Issue   string            `json:"issue"`
}

// FindOrphanedElements returns every element violating the flow cardinality
// of its variant, as a descriptive list instead of an error.
func (a *Analyzer) FindOrphanedElements() []OrphanedElement {
	var orphaned []OrphanedElement
	for _, name := range a.order {
		elementType := a.elements[name].GetType()
		in := a.incoming[name]
		out := a.outgoing[name]

		switch elementType {
		case model.ElementTypeStartEvent:
			if len(in) > 0 {
				orphaned = append(orphaned, OrphanedElement{Element: name, Type: elementType, Issue: "start event has incoming connections"})
			}
		case model.ElementTypeEndEvent:
			if len(out) > 0 {
				orphaned = append(orphaned, OrphanedElement{Element: name, Type: elementType, Issue: "end event has outgoing connections"})
			}
		default:
			if len(in) == 0 {
				orphaned = append(orphaned, OrphanedElement{Element: name, Type: elementType, Issue: "no incoming connections"})
			}
			if len(out) == 0 {
				orphaned = append(orphaned, OrphanedElement{Element: name, Type: elementType, Issue: "no outgoing connections"})
			}
		}
	}
	return orphaned
}
