package graph

import "prismslice/internal/model"

// actsIntersect reports whether two non-empty action-label sets share a
// label.
func actsIntersect(a, b map[string]struct{}) bool {
	small, big := a, b
	if len(big) < len(small) {
		small, big = big, small
	}
	for label := range small {
		if _, ok := big[label]; ok {
			return true
		}
	}
	return false
}

// BuildMDGEdges computes the MDG's directed adjacency: for every ordered
// pair (i, j) with i != j, an edge i -> j is added if the two module
// vertices share an action label (action dependence) or i's refs
// intersect j's defs by name (data dependence). At most one edge per
// ordered pair regardless of how many predicates fire; self-edges are
// never produced.
func BuildMDGEdges(verts []*ModuleVertex) [][]int {
	n := len(verts)
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			vi, vj := verts[i], verts[j]
			if actsIntersect(vi.Act, vj.Act) || vi.Ref.IntersectsByName(vj.Def) {
				adj[i] = append(adj[i], j)
			}
		}
	}
	return adj
}

// cdgContext holds the lookups needed by the dep-gg and dep-ag predicates,
// built once from the originating Program by walking every module's
// commands and updates.
type cdgContext struct {
	actionOfCommand map[int]string // command global index -> action label
	commandOfUpdate map[int]int    // update global index -> owning command's global index
}

func buildCDGContext(p *model.Program) *cdgContext {
	ctx := &cdgContext{
		actionOfCommand: make(map[int]string),
		commandOfUpdate: make(map[int]int),
	}
	for mi := range p.Modules {
		for ci := range p.Modules[mi].Commands {
			cmd := &p.Modules[mi].Commands[ci]
			ctx.actionOfCommand[cmd.GlobalIndex] = cmd.Action
			for _, u := range cmd.Updates {
				ctx.commandOfUpdate[u.GlobalIndex] = cmd.GlobalIndex
			}
		}
	}
	return ctx
}

// BuildCDGEdges computes the CDG's directed adjacency by testing, for
// every ordered pair (i, j) with i != j, the five predicates in order and
// adding the first that holds: dep-ar, dep-gg, dep-ag, dep-di, dep-d.
// Evaluating every ordered pair (rather than only i < j) is what
// materializes both directions of a dependence whose defining predicate is
// only stated in one direction (e.g. dep-ar); see DESIGN.md's note on the
// specification's assignment<->rate symmetry question.
func BuildCDGEdges(verts []*Vertex, p *model.Program) [][]int {
	ctx := buildCDGContext(p)
	n := len(verts)
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if cdgEdge(verts[i], verts[j], ctx) {
				adj[i] = append(adj[i], j)
			}
		}
	}
	return adj
}

func cdgEdge(vi, vj *Vertex, ctx *cdgContext) bool {
	// dep-ar: assignment -> rate of the same update.
	if vi.Kind == AssignmentV && vj.Kind == Rate && vi.Identifier == vj.Identifier {
		return true
	}
	// dep-gg: guard <-> guard synchronizing on a shared non-empty action
	// label across different modules.
	if vi.Kind == Guard && vj.Kind == Guard && vi.Module != vj.Module {
		act := ctx.actionOfCommand[vi.Identifier]
		if act != "" && act == ctx.actionOfCommand[vj.Identifier] {
			return true
		}
	}
	// dep-ag: a rate or assignment is anchored to its own command's
	// guard.
	if (vi.Kind == AssignmentV || vi.Kind == Rate) && vj.Kind == Guard {
		if cmdIdx, ok := ctx.commandOfUpdate[vi.Identifier]; ok && cmdIdx == vj.Identifier {
			return true
		}
	}
	// dep-di: a declaration feeds the initial-states predicate.
	if vi.Kind.IsDecl() && vj.Kind == InitV && vi.Def.IntersectsByName(vj.Ref) {
		return true
	}
	// dep-d: generic data dependence.
	if vi.Ref.IntersectsByName(vj.Def) {
		return true
	}
	return false
}
