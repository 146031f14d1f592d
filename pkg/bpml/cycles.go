package bpml

import (
	"github.com/banzg00/bpml/pkg/bpml/model"
)

// adjacency is a name -> successor-names graph in declaration order.
type adjacency struct {
	order []string
	edges map[string][]string
}

func newAdjacency() *adjacency {
	return &adjacency{edges: make(map[string][]string)}
}

func (a *adjacency) addNode(name string) {
	if _, ok := a.edges[name]; ok {
		return
	}
	a.order = append(a.order, name)
	a.edges[name] = nil
}

func (a *adjacency) addEdge(from, to string) {
	a.addNode(from)
	a.edges[from] = append(a.edges[from], to)
}

// detectCycle runs a depth-first search with an on-stack set and returns the
// first cycle found, entry node repeated at the end, or nil. Traversal order
// is the declaration order of nodes and edges. The walk uses an explicit
// frame stack, not recursion.
func detectCycle(a *adjacency) []string {
	visited := make(map[string]bool, len(a.order))
	onStack := make(map[string]bool, len(a.order))

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
				// back edge: cut the path at the first occurrence of neighbor
				cycleStart := 0
				for i, name := range path {
					if name == neighbor {
						cycleStart = i
						break
					}
				}
				cycle := append([]string{}, path[cycleStart:]...)
				return append(cycle, neighbor)
			}
			if visited[neighbor] {
				continue
			}
			// edges to undeclared nodes are ignored; reference resolution
			// already ran
			if _, declared := a.edges[neighbor]; !declared {
				continue
			}
			visited[neighbor] = true
			onStack[neighbor] = true
			stack = append(stack, frame{node: neighbor})
			path = append(path, neighbor)
		}
	}
	return nil
}

// validateRoleGraph rejects self-supervision and self-parenting first, then
// cycles over the supervision and parent edges of the given roles.
func validateRoleGraph(order []string, roles map[string]*model.Role, process string) error {
	roleGraph := newAdjacency()
	for _, name := range order {
		role := roles[name]
		if role == nil {
			continue
		}
		roleGraph.addNode(name)
		for _, supervised := range role.SupervisedRoles {
			if supervised == name {
				return &SelfReferenceError{Category: "role", Name: name, Process: process, Detail: "cannot supervise itself"}
			}
			roleGraph.addEdge(name, supervised)
		}
		if role.Parent != "" {
			if role.Parent == name {
				return &SelfReferenceError{Category: "role", Name: name, Process: process, Detail: "cannot be its own parent"}
			}
			// inheritance edge points from child to parent
			roleGraph.addEdge(name, role.Parent)
		}
	}
	if cycle := detectCycle(roleGraph); cycle != nil {
		return &CircularDependencyError{Category: "role", Path: cycle, Process: process}
	}
	return nil
}

// validateModelCycles runs the role hierarchy pass once over the model-level
// roles. It runs independent of the processes, so a model carrying only
// top-level roles is still checked.
func validateModelCycles(m *model.Model) error {
	order := make([]string, 0, len(m.Roles))
	roles := make(map[string]*model.Role, len(m.Roles))
	for i := range m.Roles {
		order = append(order, m.Roles[i].Name)
		roles[m.Roles[i].Name] = &m.Roles[i]
	}
	return validateRoleGraph(order, roles, "")
}

// validateCycles rejects cycles in the process role hierarchy and the task
// dependency graph.
func validateCycles(reg *processRegistry) error {
	p := reg.process

	// the model-level role graph was already checked once at model level;
	// it is rebuilt here only when process roles are in scope, since a
	// process role can shadow a model-level name and change the edges
	if len(p.Roles) > 0 {
		if err := validateRoleGraph(reg.roleOrder, reg.roles, p.Name); err != nil {
			return err
		}
	}

	taskGraph := newAdjacency()
	for _, name := range reg.taskOrder {
		task := reg.tasks[name]
		taskGraph.addNode(name)
		for _, dep := range task.Dependencies {
			taskGraph.addEdge(name, dep)
		}
	}
	if cycle := detectCycle(taskGraph); cycle != nil {
		return &CircularDependencyError{Category: "task", Path: cycle, Process: p.Name}
	}

	return nil
}
