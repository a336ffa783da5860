// Package slice implements forward reachability-based slicing over a CDG
// or MDG adjacency list, the three criterion-resolution modes (component,
// variable, module), and the prune_dead_commands post-pass.
package slice

import (
	"prismslice/internal/clierr"
	"prismslice/internal/graph"
	"prismslice/internal/model"
)

// Set is the reachable vertex index set produced by BFS: index into the
// vertex slice the adjacency was built over, present == included.
type Set map[int]bool

// BFS performs a standard forward breadth-first traversal over adj
// starting from start, returning the set of reachable indices (including
// the start indices themselves). Exploration order is deterministic:
// adjacency lists are walked in insertion order and the frontier is a
// FIFO queue.
func BFS(adj [][]int, start []int) Set {
	visited := make(Set, len(start))
	queue := make([]int, 0, len(start))
	for _, s := range start {
		if !visited[s] {
			visited[s] = true
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, n := range adj[v] {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// ResolveComponents resolves each criterion string to the index of the
// first CDG vertex whose Text equals it. Every criterion must resolve; the
// first unresolved one is reported by name.
func ResolveComponents(verts []*graph.Vertex, criteria []string) ([]int, error) {
	idx := make([]int, 0, len(criteria))
	for _, c := range criteria {
		found := -1
		for i, v := range verts {
			if v.Text == c {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, clierr.New(clierr.InvalidArgument, "component not found: %q", c)
		}
		idx = append(idx, found)
	}
	return idx, nil
}

// ResolveVariables resolves each variable name to the unique decl* vertex
// that defines it.
func ResolveVariables(verts []*graph.Vertex, names []string) ([]int, error) {
	idx := make([]int, 0, len(names))
	for _, name := range names {
		found := -1
		for i, v := range verts {
			if v.Kind.IsDecl() && v.Def.Has(name) {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, clierr.New(clierr.InvalidArgument, "variable not found: %q", name)
		}
		idx = append(idx, found)
	}
	return idx, nil
}

// ResolveModules resolves each module name to its index in the MDG vertex
// slice.
func ResolveModules(mverts []*graph.ModuleVertex, names []string) ([]int, error) {
	idx := make([]int, 0, len(names))
	for _, name := range names {
		found := -1
		for i, v := range mverts {
			if v.Name == name {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, clierr.New(clierr.InvalidArgument, "module not found: %q", name)
		}
		idx = append(idx, found)
	}
	return idx, nil
}

// ByComponent slices the CDG on component-text criteria.
func ByComponent(verts []*graph.Vertex, adj [][]int, criteria []string) (Set, error) {
	start, err := ResolveComponents(verts, criteria)
	if err != nil {
		return nil, err
	}
	return BFS(adj, start), nil
}

// ByVariable slices the CDG on variable-name criteria, each resolved to
// its defining decl* vertex and then treated as a component criterion.
func ByVariable(verts []*graph.Vertex, adj [][]int, names []string) (Set, error) {
	start, err := ResolveVariables(verts, names)
	if err != nil {
		return nil, err
	}
	return BFS(adj, start), nil
}

// ByModule slices the MDG on module-name criteria, then lifts the
// reachable module set to the union of every CDG vertex whose Module lies
// in it.
func ByModule(cverts []*graph.Vertex, cadj [][]int, mverts []*graph.ModuleVertex, madj [][]int, names []string) (Set, error) {
	start, err := ResolveModules(mverts, names)
	if err != nil {
		return nil, err
	}
	reachableModules := BFS(madj, start)
	moduleNames := make(map[string]bool, len(reachableModules))
	for i := range reachableModules {
		moduleNames[mverts[i].Name] = true
	}
	out := make(Set, len(cverts))
	for i, v := range cverts {
		if moduleNames[v.Module] {
			out[i] = true
		}
	}
	return out, nil
}

// PruneDeadCommands removes, for every module whose name appears in the
// slice, the guard vertex of any command whose guard is trivially true
// and none of whose updates' rate vertex survived slicing — an
// unconditionally-firing command with no surviving probabilistic branch
// cannot influence any observable.
func PruneDeadCommands(p *model.Program, verts []*graph.Vertex, included Set) {
	guardVertex := make(map[int]int, len(verts))
	rateVertex := make(map[int]int, len(verts))
	for i, v := range verts {
		switch v.Kind {
		case graph.Guard:
			guardVertex[v.Identifier] = i
		case graph.Rate:
			rateVertex[v.Identifier] = i
		}
	}

	slicedModules := make(map[string]bool)
	for i := range included {
		slicedModules[verts[i].Module] = true
	}

	for m := range p.Modules {
		mod := &p.Modules[m]
		if !slicedModules[mod.Name] {
			continue
		}
		for _, cmd := range mod.Commands {
			gi, ok := guardVertex[cmd.GlobalIndex]
			if !ok || !included[gi] {
				continue
			}
			if !cmd.Guard.IsTriviallyTrue() {
				continue
			}
			anyRateSurvives := false
			for _, u := range cmd.Updates {
				if ri, ok := rateVertex[u.GlobalIndex]; ok && included[ri] {
					anyRateSurvives = true
					break
				}
			}
			if !anyRateSurvives {
				delete(included, gi)
			}
		}
	}
}
