package grid

import (
	"container/heap"
	"iter"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/geom"
)

// Visit is one step of a [Grid.Dijkstra] traversal: a reached coordinate,
// its cell and the number of steps on the shortest path from the start.
type Visit[T any] struct {
	Coo   geom.Coo
	Cell  T
	Score uint
}

// Dijkstra yields every cell reachable from `from` exactly once, in
// nondecreasing Score order, starting with `from` itself at score 0.
//
// adj returns the coordinates one step away from a cell; it encodes walls,
// slopes or any other movement rule. Coordinates outside the grid are
// ignored, so adj may return raw [geom.Coo.Adjacent4] neighbours.
//
// A cell is settled when it is first popped from the queue. Duplicate queue
// entries left behind by shorter paths are discarded on pop. Stopping the
// range loop early abandons the traversal.
func (g *Grid[T]) Dijkstra(from geom.Coo, adj func(geom.Coo) iter.Seq[geom.Coo]) iter.Seq[Visit[T]] {
	return func(yield func(Visit[T]) bool) {
		if !g.Inside(from) {
			return
		}
		settled := make([]bool, len(g.cells))
		pq := &visitPQ{{coo: from}}

		for pq.Len() > 0 {
			item := heap.Pop(pq).(visitItem)
			idx := item.coo.Y*g.width + item.coo.X
			if settled[idx] {
				continue
			}
			settled[idx] = true

			if !yield(Visit[T]{Coo: item.coo, Cell: g.cells[idx], Score: item.score}) {
				return
			}

			for n := range adj(item.coo) {
				if !g.Inside(n) || settled[n.Y*g.width+n.X] {
					continue
				}
				heap.Push(pq, visitItem{coo: n, score: item.score + 1})
			}
		}
	}
}

// ShortestPath returns the number of steps from `from` to the first reached
// cell satisfying goal.
func (g *Grid[T]) ShortestPath(from geom.Coo, adj func(geom.Coo) iter.Seq[geom.Coo], goal func(Visit[T]) bool) (uint, bool) {
	for v := range g.Dijkstra(from, adj) {
		if goal(v) {
			return v.Score, true
		}
	}
	return 0, false
}

type visitItem struct {
	coo   geom.Coo
	score uint
}

// visitPQ is a min-heap of visitItem ordered by score.
type visitPQ []visitItem

func (pq visitPQ) Len() int           { return len(pq) }
func (pq visitPQ) Less(i, j int) bool { return pq[i].score < pq[j].score }
func (pq visitPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *visitPQ) Push(x any)        { *pq = append(*pq, x.(visitItem)) }

func (pq *visitPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
