package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRunFiveVertexExample reproduces the documented benchmark example:
// a->b->c, with d and e isolated. Vertex indices: a=0, b=1, c=2, d=3, e=4.
func TestRunFiveVertexExample(t *testing.T) {
	adj := [][]int{
		{1}, // a -> b
		{2}, // b -> c
		{},  // c
		{},  // d
		{},  // e
	}

	got := Run(adj)

	assert.Equal(t, 2, got.NumEdges)
	assert.Equal(t, 5, got.NumUniqueSlices)
	assert.InDelta(t, 1.6, got.AvgSizeWeighted, 1e-9)
	assert.InDelta(t, 1.6, got.AvgSizeUnweighted, 1e-9)

	want := []SizeBucket{
		{Size: 1, Unique: 3, Crits: 3},
		{Size: 2, Unique: 1, Crits: 1},
		{Size: 3, Unique: 1, Crits: 1},
	}
	assert.Equal(t, want, got.Buckets)
}

func TestRunEmptyGraph(t *testing.T) {
	got := Run(nil)
	assert.Equal(t, 0, got.NumVertices)
	assert.Equal(t, 0, got.NumUniqueSlices)
	assert.Zero(t, got.AvgSizeWeighted)
	assert.Empty(t, got.Buckets)
}

func TestRunSharedReachableSetsAreNotDoubleCounted(t *testing.T) {
	// Vertices 0 and 1 form a two-cycle, so both reach exactly {0,1}:
	// two criteria, one structurally distinct bitmap.
	cycle := [][]int{
		{1}, // 0 -> 1
		{0}, // 1 -> 0
	}
	shared := Run(cycle)
	assert.Equal(t, 1, shared.NumUniqueSlices)
	assert.Equal(t, []SizeBucket{{Size: 2, Unique: 1, Crits: 2}}, shared.Buckets)

	// With a one-way edge instead, the two reachable sets differ.
	adj := [][]int{
		{1}, // 0 -> 1
		{1}, // 1 -> 1 (self loop keeps its own reach set == {1})
	}
	got := Run(adj)
	assert.Equal(t, 2, got.NumVertices)
	// vertex 0 reaches {0,1} (size 2), vertex 1 reaches {1} (size 1) —
	// distinct sizes, so both are unique slices.
	assert.Equal(t, 2, got.NumUniqueSlices)
}
