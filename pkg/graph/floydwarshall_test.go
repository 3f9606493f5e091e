package graph_test

import (
	"fmt"
	"iter"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/graph"
)

// edges maps each node to its outgoing edges.
type edges map[int]map[int]graph.Weight

func (e edges) adj(node int) iter.Seq2[int, graph.Weight] { return maps.All(e[node]) }

func TestAllPairDistances_Chain(t *testing.T) {
	g := edges{
		0: {1: 1},
		1: {2: 1},
		2: {3: 1},
	}
	d := graph.AllPairDistances(4, g.adj)

	require.Len(t, d, 4)
	assert.Equal(t, graph.Weight(3), d[0][3])
	assert.Equal(t, graph.Weight(2), d[1][3])
	assert.Equal(t, graph.Unreachable, d[3][0])
	for i := range 4 {
		assert.Equal(t, graph.Weight(0), d[i][i])
	}
}

func TestAllPairDistances_LongEdgeLoses(t *testing.T) {
	g := edges{
		0: {1: 1, 3: 10},
		1: {2: 1},
		2: {3: 1},
	}
	d := graph.AllPairDistances(4, g.adj)
	assert.Equal(t, graph.Weight(3), d[0][3])

	for i := range 4 {
		for j := range 4 {
			for k := range 4 {
				if d[i][k] == graph.Unreachable || d[k][j] == graph.Unreachable {
					continue
				}
				assert.LessOrEqual(t, d[i][j], d[i][k]+d[k][j], "triangle %d-%d-%d", i, k, j)
			}
		}
	}
}

func TestAllPairDistances_Shortcut(t *testing.T) {
	g := edges{
		0: {1: 4, 2: 1},
		2: {1: 2},
		1: {3: 5},
		3: {0: 1},
	}
	d := graph.AllPairDistances(4, g.adj)

	assert.Equal(t, graph.Weight(3), d[0][1], "via 2")
	assert.Equal(t, graph.Weight(8), d[0][3])
	assert.Equal(t, graph.Weight(6), d[1][0])
	assert.Equal(t, graph.Weight(7), d[1][2])
}

func TestAllPairDistances_Saturates(t *testing.T) {
	g := edges{
		0: {1: graph.Unreachable - 1},
		1: {2: 10},
	}
	d := graph.AllPairDistances(3, g.adj)

	assert.Equal(t, graph.Unreachable-1, d[0][1])
	assert.Equal(t, graph.Unreachable, d[0][2])
	assert.Equal(t, graph.Weight(10), d[1][2])
}

func TestAllPairDistances_IgnoresStrayEdges(t *testing.T) {
	g := edges{0: {0: 9, 5: 1, -1: 1}}
	d := graph.AllPairDistances(2, g.adj)
	assert.Equal(t, [][]graph.Weight{{0, graph.Unreachable}, {graph.Unreachable, 0}}, d)
	assert.Empty(t, graph.AllPairDistances(0, g.adj))
}

func ExampleAllPairDistances() {
	// Valves connected by tunnels, one minute per tunnel.
	tunnels := [][]int{
		0: {1, 3},
		1: {0, 2},
		2: {1},
		3: {0},
	}
	d := graph.AllPairDistances(len(tunnels), func(v int) iter.Seq2[int, graph.Weight] {
		return func(yield func(int, graph.Weight) bool) {
			for _, to := range tunnels[v] {
				if !yield(to, 1) {
					return
				}
			}
		}
	})
	fmt.Println(d[2][3], d[3][2])
	// Output: 3 3
}
