// Package graph computes shortest-path distances on small dense weighted
// graphs whose nodes are numbered 0..n-1.
package graph

import (
	"iter"
	"math"

	"github.com/jsgonsette/AdventOfCode2024-sub000/internal/satmath"
)

// Weight is an edge length or path distance.
type Weight = uint32

// Unreachable is the distance between two nodes with no connecting path.
const Unreachable Weight = math.MaxUint32

// AllPairDistances runs Floyd-Warshall over the graph whose outgoing edges are
// given by adj. The result D is an n x n matrix where D[i][j] is the length
// of the shortest path from i to j, 0 on the diagonal and [Unreachable] when
// j cannot be reached from i. Sums saturate at [Unreachable], so a path
// through an unreachable leg never looks shorter than it is.
//
// When adj yields several edges between the same pair, the shortest one wins.
// Destinations outside 0..n-1 are ignored.
func AllPairDistances(n int, adj func(node int) iter.Seq2[int, Weight]) [][]Weight {
	dist := make([][]Weight, n)
	for i := range dist {
		dist[i] = make([]Weight, n)
		for j := range dist[i] {
			dist[i][j] = Unreachable
		}
		dist[i][i] = 0
	}

	for i := range n {
		for j, w := range adj(i) {
			if j < 0 || j >= n || i == j {
				continue
			}
			dist[i][j] = min(dist[i][j], w)
		}
	}

	for k := range n {
		for i := range n {
			ik := dist[i][k]
			if ik == Unreachable {
				continue
			}
			for j := range n {
				if d := satmath.Add(ik, dist[k][j]); d < dist[i][j] {
					dist[i][j] = d
				}
			}
		}
	}
	return dist
}
