package prismfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prismslice/internal/model"
)

const sample = `
dtmc

const int N = 3;

module m1
  x : [0..N] init 0;
  [a] x<N -> 0.5:(x'=x+1) + 0.5:(x'=x);
endmodule

init x=0 endinit
`

func TestParseSampleDocument(t *testing.T) {
	prog, err := Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, model.DTMC, prog.Type)

	require.Len(t, prog.Constants, 1)
	assert.Equal(t, "N", prog.Constants[0].Var.Name)
	assert.Equal(t, model.ConstInt, prog.Constants[0].Type)

	require.Len(t, prog.Modules, 1)
	mod := prog.Modules[0]
	assert.Equal(t, "m1", mod.Name)
	require.Len(t, mod.Ints, 1)
	assert.Equal(t, "x", mod.Ints[0].Var.Name)

	require.Len(t, mod.Commands, 1)
	cmd := mod.Commands[0]
	assert.Equal(t, "a", cmd.Action)
	assert.Equal(t, "x < N", cmd.Guard.Text)
	require.Len(t, cmd.Guard.Refs, 2)

	require.Len(t, cmd.Updates, 2)
	require.Len(t, cmd.Updates[0].Assignments, 1)
	assert.Equal(t, "x", cmd.Updates[0].Assignments[0].Target.Name)
	assert.Equal(t, "x + 1", cmd.Updates[0].Assignments[0].Value.Text)

	require.NotNil(t, prog.Init)
	assert.Equal(t, "x = 0", prog.Init.Value.Text)
	require.Len(t, prog.Init.Value.Refs, 1)
	assert.Equal(t, "x", prog.Init.Value.Refs[0].Name)
}

func TestParseImplicitTrueUpdate(t *testing.T) {
	prog, err := Parse(`
module m
  y : bool init false;
  [] true -> (y'=true);
endmodule
`)
	require.NoError(t, err)
	require.Len(t, prog.Modules, 1)
	require.Len(t, prog.Modules[0].Commands, 1)
	cmd := prog.Modules[0].Commands[0]
	assert.Equal(t, "", cmd.Action)
	require.Len(t, cmd.Updates, 1)
	require.Len(t, cmd.Updates[0].Assignments, 1)
	assert.Equal(t, "y", cmd.Updates[0].Assignments[0].Target.Name)
}

func TestParseNoAssignmentsMeansLiteralTrue(t *testing.T) {
	prog, err := Parse(`
module m
  y : bool init false;
  [] y -> true;
endmodule
`)
	require.NoError(t, err)
	cmd := prog.Modules[0].Commands[0]
	require.Len(t, cmd.Updates, 1)
	assert.Empty(t, cmd.Updates[0].Assignments)
}

func TestParseUnexpectedTopLevelTokenIsParseError(t *testing.T) {
	_, err := Parse("bogus 123")
	require.Error(t, err)
}

func TestParseAssignsDistinctCommandGlobalIndexes(t *testing.T) {
	// Successive commands/updates receive distinct, increasing global
	// indices from the parser's own counters, independent of declaration
	// order elsewhere in the document.
	prog, err := Parse(`
module m
  x : [0..1] init 0;
  [] x=0 -> (x'=1);
  [] x=1 -> (x'=0);
endmodule
`)
	require.NoError(t, err)
	cmds := prog.Modules[0].Commands
	require.Len(t, cmds, 2)
	assert.NotEqual(t, cmds[0].GlobalIndex, cmds[1].GlobalIndex)
}
