package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprIsTriviallyTrue(t *testing.T) {
	assert.True(t, Expr{Text: "true"}.IsTriviallyTrue())
	assert.False(t, Expr{Text: "x>0"}.IsTriviallyTrue())
	assert.False(t, Expr{Text: "false"}.IsTriviallyTrue())
}

func TestConstTypeString(t *testing.T) {
	assert.Equal(t, "int", ConstInt.String())
	assert.Equal(t, "double", ConstDouble.String())
	assert.Equal(t, "bool", ConstBool.String())
}

func TestModelTypeKeyword(t *testing.T) {
	assert.Equal(t, "dtmc", DTMC.Keyword())
	assert.Equal(t, "mdp", MDP.Keyword())
	assert.Equal(t, "ctmc", CTMC.Keyword())
	assert.Equal(t, "smg", SMG.Keyword())
	assert.Equal(t, "mdp", UnknownModel.Keyword(), "unrecognized type defaults to mdp")
}

func TestProgramModuleByName(t *testing.T) {
	p := &Program{Modules: []Module{{Name: "a"}, {Name: "b"}}}
	assert.Equal(t, "b", p.ModuleByName("b").Name)
	assert.Nil(t, p.ModuleByName("c"))
}
