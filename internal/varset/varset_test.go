package varset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prismslice/internal/model"
)

func TestAddAndHas(t *testing.T) {
	s := New()
	x := &model.Variable{Index: 0, Name: "x"}
	s.Add(x)
	s.Add(nil)
	assert.True(t, s.Has("x"))
	assert.False(t, s.Has("y"))
}

func TestUnion(t *testing.T) {
	a := New()
	a.Add(&model.Variable{Index: 0, Name: "x"})
	b := New()
	b.Add(&model.Variable{Index: 1, Name: "y"})
	a.Union(b)
	assert.True(t, a.Has("x"))
	assert.True(t, a.Has("y"))
}

func TestIntersectsByNameMatchesByNameNotPointer(t *testing.T) {
	// Two independently-constructed *model.Variable values sharing a Name
	// must still be treated as the same variable.
	a := New()
	a.Add(&model.Variable{Index: 5, Name: "x"})
	b := New()
	b.Add(&model.Variable{Index: 99, Name: "x"})
	assert.True(t, a.IntersectsByName(b))
}

func TestIntersectsByNameNoOverlap(t *testing.T) {
	a := New()
	a.Add(&model.Variable{Index: 0, Name: "x"})
	b := New()
	b.Add(&model.Variable{Index: 1, Name: "y"})
	assert.False(t, a.IntersectsByName(b))
}

func TestNamesSorted(t *testing.T) {
	s := New()
	s.Add(&model.Variable{Index: 0, Name: "z"})
	s.Add(&model.Variable{Index: 1, Name: "a"})
	s.Add(&model.Variable{Index: 2, Name: "m"})
	assert.Equal(t, []string{"a", "m", "z"}, s.Names())
}

func TestFromExprRefsAndAddExprRefsNilSafe(t *testing.T) {
	x := &model.Variable{Index: 0, Name: "x"}
	e := model.Expr{Text: "x>0", Refs: []*model.Variable{x}}
	s := FromExprRefs(e)
	assert.True(t, s.Has("x"))

	s2 := New()
	s2.AddExprRefs(nil)
	assert.Empty(t, s2)
}
