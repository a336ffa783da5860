// Package bench implements the benchmark mode: for every vertex in turn,
// treated as a lone slicing criterion, compute its reachable set and
// aggregate size/uniqueness statistics across the whole vertex set.
//
// Reachable sets are represented as bitset.BitSet (the teacher's own
// dependency, used the same way in extras/cfg/df.go for per-block
// reaching/live-variable bitmaps): one |V|-bit bitmap per query, compared
// structurally via BitSet.Equal for uniqueness bucketing.
package bench

import (
	"sort"
	"time"

	"github.com/bits-and-blooms/bitset"
)

// SizeBucket aggregates every reachable set of a given cardinality.
type SizeBucket struct {
	Size   int // slice cardinality
	Unique int // number of structurally distinct bitmaps of this size
	Crits  int // number of criteria (vertices) whose slice has this size
}

// Result is the aggregate report for one graph (MDG or CDG).
type Result struct {
	NumVertices       int
	NumEdges          int
	NumUniqueSlices   int
	AvgSizeUnweighted float64 // Σ(s·unique(s)) / Σunique(s)
	AvgSizeWeighted   float64 // Σ(s·crits(s)) / |V|
	Buckets           []SizeBucket // sorted by Size ascending
	Elapsed           time.Duration
}

// Run computes the benchmark Result for a directed adjacency list adj,
// re-using it across all |adj| reachability queries as specified.
func Run(adj [][]int) Result {
	start := time.Now()
	n := len(adj)

	numEdges := 0
	for _, neighbors := range adj {
		numEdges += len(neighbors)
	}

	type aggregate struct {
		unique []*bitset.BitSet
		crits  int
	}
	bySize := make(map[int]*aggregate)

	for v := 0; v < n; v++ {
		reach := reachableBitset(adj, v, n)
		size := int(reach.Count())

		agg, ok := bySize[size]
		if !ok {
			agg = &aggregate{}
			bySize[size] = agg
		}
		agg.crits++

		isNew := true
		for _, seen := range agg.unique {
			if seen.Equal(reach) {
				isNew = false
				break
			}
		}
		if isNew {
			agg.unique = append(agg.unique, reach)
		}
	}

	sizes := make([]int, 0, len(bySize))
	for s := range bySize {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)

	var (
		buckets     []SizeBucket
		totalUnique int
		sumUW       float64
		sumW        float64
	)
	for _, s := range sizes {
		agg := bySize[s]
		u := len(agg.unique)
		totalUnique += u
		sumUW += float64(s * u)
		sumW += float64(s * agg.crits)
		buckets = append(buckets, SizeBucket{Size: s, Unique: u, Crits: agg.crits})
	}

	var avgUW, avgW float64
	if totalUnique > 0 {
		avgUW = sumUW / float64(totalUnique)
	}
	if n > 0 {
		avgW = sumW / float64(n)
	}

	return Result{
		NumVertices:       n,
		NumEdges:          numEdges,
		NumUniqueSlices:   totalUnique,
		AvgSizeUnweighted: avgUW,
		AvgSizeWeighted:   avgW,
		Buckets:           buckets,
		Elapsed:           time.Since(start),
	}
}

// reachableBitset runs forward BFS from start over adj, returning the
// visited set as an n-bit bitmap. Each query allocates its own bitmap and
// FIFO queue, as specified.
func reachableBitset(adj [][]int, start, n int) *bitset.BitSet {
	visited := bitset.New(uint(n))
	visited.Set(uint(start))
	queue := []int{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, neighbor := range adj[v] {
			if !visited.Test(uint(neighbor)) {
				visited.Set(uint(neighbor))
				queue = append(queue, neighbor)
			}
		}
	}
	return visited
}
