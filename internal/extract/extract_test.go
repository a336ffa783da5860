package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prismslice/internal/model"
)

// buildFixture constructs a minimal two-module program:
//
//	module m1
//	  x : [0..1] init 0;
//	  [a] x=0 -> 0.5:(x'=1) + 0.5:(x'=0);
//	endmodule
//	module m2
//	  y : bool init false;
//	  [a] true -> (y'=true);
//	endmodule
func buildFixture() *model.Program {
	x := &model.Variable{Index: 0, Name: "x"}
	y := &model.Variable{Index: 1, Name: "y"}
	zero := model.Expr{Text: "0"}
	one := model.Expr{Text: "1"}

	m1 := model.Module{
		Name: "m1",
		Ints: []model.VarDecl{{Var: x, Kind: model.IntVar, Low: &zero, High: &one, Init: &zero}},
		Commands: []model.Command{{
			Action: "a",
			Guard:  model.Expr{Text: "x=0", Refs: []*model.Variable{x}},
			Updates: []model.Update{
				{Likelihood: model.Expr{Text: "0.5"}, Assignments: []model.Assignment{{Target: x, Value: one}}},
				{Likelihood: model.Expr{Text: "0.5"}, Assignments: []model.Assignment{{Target: x, Value: zero}}},
			},
		}},
	}
	trueExpr := model.Expr{Text: "true"}
	m2 := model.Module{
		Name:  "m2",
		Bools: []model.VarDecl{{Var: y, Kind: model.BoolVar, Init: &model.Expr{Text: "false"}}},
		Commands: []model.Command{{
			Action: "a",
			Guard:  trueExpr,
			Updates: []model.Update{
				{Likelihood: model.Expr{Text: "1"}, Assignments: []model.Assignment{{Target: y, Value: model.Expr{Text: "true"}}}},
			},
		}},
	}
	return &model.Program{Modules: []model.Module{m1, m2}}
}

func TestModuleDefsIncludesDeclsAndAssignmentTargets(t *testing.T) {
	p := buildFixture()
	defs := ModuleDefs(&p.Modules[0])
	assert.True(t, defs.Has("x"))
}

func TestModuleRefsIncludesGuardAndRangeRefs(t *testing.T) {
	p := buildFixture()
	refs := ModuleRefs(&p.Modules[0])
	assert.True(t, refs.Has("x"))
}

func TestModuleActionsNonEmptyOnly(t *testing.T) {
	p := buildFixture()
	acts := ModuleActions(&p.Modules[1])
	_, ok := acts["a"]
	assert.True(t, ok)
	assert.Len(t, acts, 1)
}

func TestGlobalDefsAndRefs(t *testing.T) {
	c := &model.Variable{Index: 2, Name: "N"}
	p := buildFixture()
	p.Constants = []model.ConstDecl{{Var: c, Type: model.ConstInt, Value: model.Expr{Text: "3"}}}
	defs := GlobalDefs(p)
	assert.True(t, defs.Has("N"))
	refs := GlobalRefs(p)
	assert.True(t, refs.Has("N"))
}

func TestGlobalDefsIncludesInitRefs(t *testing.T) {
	x := &model.Variable{Index: 0, Name: "x"}
	p := &model.Program{Init: &model.InitConstruct{Value: model.Expr{Text: "x=0", Refs: []*model.Variable{x}}}}
	defs := GlobalDefs(p)
	assert.True(t, defs.Has("x"))
}
