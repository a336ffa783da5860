package slice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prismslice/internal/clierr"
	"prismslice/internal/graph"
	"prismslice/internal/model"
	"prismslice/internal/varset"
)

func TestBFSReachesOnlyConnectedVertices(t *testing.T) {
	// a -> b -> c ; d isolated ; e isolated
	adj := [][]int{{1}, {2}, {}, {}, {}}
	got := BFS(adj, []int{0})
	assert.Equal(t, Set{0: true, 1: true, 2: true}, got)
}

func TestBFSMultipleStartVertices(t *testing.T) {
	adj := [][]int{{1}, {}, {3}, {}}
	got := BFS(adj, []int{0, 2})
	assert.Equal(t, Set{0: true, 1: true, 2: true, 3: true}, got)
}

func simpleVerts() []*graph.Vertex {
	x := &model.Variable{Index: 0, Name: "x"}
	def := varset.New()
	def.Add(x)
	return []*graph.Vertex{
		{Identifier: 0, Kind: graph.Decl, Module: "m", Def: def, Ref: def, Text: "x : [0..1] init 0"},
		{Identifier: 0, Kind: graph.Guard, Module: "m", Def: varset.New(), Ref: def, Text: "x=0"},
	}
}

func TestResolveComponentsFound(t *testing.T) {
	verts := simpleVerts()
	idx, err := ResolveComponents(verts, []string{"x=0"})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, idx)
}

func TestResolveComponentsNotFound(t *testing.T) {
	verts := simpleVerts()
	_, err := ResolveComponents(verts, []string{"nope"})
	require.Error(t, err)
	var ce *clierr.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, clierr.InvalidArgument, ce.Kind)
}

func TestResolveVariablesFound(t *testing.T) {
	verts := simpleVerts()
	idx, err := ResolveVariables(verts, []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, idx)
}

func TestResolveVariablesNotFound(t *testing.T) {
	verts := simpleVerts()
	_, err := ResolveVariables(verts, []string{"y"})
	require.Error(t, err)
}

func TestResolveModulesNotFound(t *testing.T) {
	mverts := []*graph.ModuleVertex{{Name: "m1"}}
	_, err := ResolveModules(mverts, []string{"m2"})
	require.Error(t, err)
}

// chainProgram builds a one-command module whose CDG has 4 vertices
// (decl(x), guard, rate, assign) linked by assign -> rate -> guard -> decl
// and decl -> assign, used to check the slicing invariants from spec.md §8.
func chainProgram() (*model.Program, []*graph.Vertex, [][]int) {
	x := &model.Variable{Index: 0, Name: "x"}
	zero := model.Expr{Text: "0"}
	cmd := model.Command{
		GlobalIndex: 0,
		Guard:       model.Expr{Text: "x=0", Refs: []*model.Variable{x}},
		Updates: []model.Update{{
			GlobalIndex: 0,
			Likelihood:  model.Expr{Text: "1"},
			Assignments: []model.Assignment{{Target: x, Value: model.Expr{Text: "1"}}},
		}},
	}
	p := &model.Program{Modules: []model.Module{{
		Name:     "m",
		Ints:     []model.VarDecl{{Var: x, Kind: model.IntVar, Low: &zero, High: &zero, Init: &zero}},
		Commands: []model.Command{cmd},
	}}}
	verts := graph.BuildCDGVertices(p)
	adj := graph.BuildCDGEdges(verts, p)
	return p, verts, adj
}

func TestSliceOfAllVerticesIsAllVertices(t *testing.T) {
	_, verts, adj := chainProgram()
	all := make([]int, len(verts))
	for i := range verts {
		all[i] = i
	}
	got := BFS(adj, all)
	assert.Len(t, got, len(verts))
}

func TestSliceOfEmptyCriteriaIsEmpty(t *testing.T) {
	_, _, adj := chainProgram()
	got := BFS(adj, nil)
	assert.Empty(t, got)
}

func TestSliceIsMonotonicInCriteria(t *testing.T) {
	_, verts, adj := chainProgram()
	var assignIdx, declIdx int
	for i, v := range verts {
		if v.Kind == graph.AssignmentV {
			assignIdx = i
		}
		if v.Kind == graph.Decl {
			declIdx = i
		}
	}
	small := BFS(adj, []int{assignIdx})
	big := BFS(adj, []int{assignIdx, declIdx})
	for i := range small {
		assert.True(t, big[i], "monotonicity violated for vertex %d", i)
	}
}

func TestPruneDeadCommandsRemovesTriviallyTrueGuardWithNoSurvivingRate(t *testing.T) {
	p, verts, _ := chainProgram()
	included := Set{}
	// Include only the guard; its one update's rate vertex is excluded, and
	// the guard is not trivially true here ("x=0"), so nothing is pruned.
	for i, v := range verts {
		if v.Kind == graph.Guard {
			included[i] = true
		}
	}
	PruneDeadCommands(p, verts, included)
	assert.Len(t, included, 1)

	// Now make the guard trivially true and re-run: with no rate vertex
	// included, the guard should be pruned.
	p.Modules[0].Commands[0].Guard = model.Expr{Text: "true"}
	verts2 := graph.BuildCDGVertices(p)
	included2 := Set{}
	for i, v := range verts2 {
		if v.Kind == graph.Guard {
			included2[i] = true
		}
	}
	PruneDeadCommands(p, verts2, included2)
	assert.Empty(t, included2)
}

func TestByModuleLiftsToAllCDGVerticesOfReachableModules(t *testing.T) {
	p, cverts, cadj := chainProgram()
	mverts := graph.BuildMDGVertices(p)
	madj := graph.BuildMDGEdges(mverts)

	included, err := ByModule(cverts, cadj, mverts, madj, []string{"m"})
	require.NoError(t, err)
	for i, v := range cverts {
		if v.Module == "m" {
			assert.True(t, included[i])
		}
	}
}
