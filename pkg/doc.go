// Package pkg provides the reusable libraries behind the aoc puzzle runner.
//
// # Overview
//
// Advent of Code puzzles keep returning to the same handful of structures:
// coordinates on a grid, sets of bits or cells, ranges of integers, shortest
// paths and dependency orders. The pkg directory holds one package per
// structure, plus the solver registry and the benchmark harness that the aoc
// command is built on. It is organized into three areas:
//
//  1. Geometry and sets - [geom], [grid], [bitset], [arrayset], [interval]
//  2. Graph algorithms - [grid] Dijkstra traversal, [graph], [dag]
//  3. Running solvers - [puzzle], [bench], [observability], [numscan]
//
// # Quick Start
//
// A solver parses its input lines with the helpers and returns two answers:
//
//	import (
//	    "github.com/jsgonsette/AdventOfCode2024-sub000/pkg/geom"
//	    "github.com/jsgonsette/AdventOfCode2024-sub000/pkg/grid"
//	    "github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"
//	)
//
//	func solve(lines []string) (puzzle.Solution, puzzle.Solution, error) {
//	    g, err := grid.Runes(lines)
//	    if err != nil {
//	        return puzzle.Solution{}, puzzle.Solution{}, err
//	    }
//	    steps, _ := g.ShortestPath(geom.Coo{}, g.Neighbors4, func(v grid.Visit[rune]) bool {
//	        return v.Cell == 'E'
//	    })
//	    return puzzle.Unsigned(uint64(steps)), puzzle.Text("n/a"), nil
//	}
//
// Solvers are registered per year and benchmarked as a whole:
//
//	year := puzzle.NewTable(2024).Register(1, solve)
//	res, err := bench.BenchmarkYear(ctx, year, 100, bench.WithInputDir("input"))
//	path, err := bench.WriteSVG(ctx, "out", res.Year, bench.RenderSVG(res))
//
// # Main Packages
//
// ## Geometry and Sets
//
// [geom] - Integer 2D coordinates and the four cardinal directions, with
// neighbourhood iterators and wrap-around arithmetic.
//
// [grid] - Rectangular grids of cells parsed from text, with bounds-checked
// access and a breadth-first Dijkstra traversal over unit-cost moves.
//
// [bitset] - Fixed-width bit vectors with bitwise operators and shifts.
//
// [arrayset] - Dense boolean sets over N-dimensional integer boxes.
//
// [interval] - Closed integer intervals and sets of disjoint intervals.
//
// ## Graph Algorithms
//
// [graph] - Floyd-Warshall all-pairs shortest distances with saturating
// arithmetic.
//
// [dag] - Topological sort with cycle reporting, DOT and JSON export, and
// Graphviz rendering.
//
// ## Running Solvers
//
// [puzzle] - Solutions, solvers, per-year tables and input file loading.
//
// [bench] - Timing harness, trimmed means and the SVG histogram report.
//
// [observability] - Hooks for benchmark progress and report events.
//
// [numscan] - Integer extraction from free-form text rows.
//
// [errors] - Coded errors shared by every package above.
//
// [geom]: https://pkg.go.dev/github.com/jsgonsette/AdventOfCode2024-sub000/pkg/geom
// [grid]: https://pkg.go.dev/github.com/jsgonsette/AdventOfCode2024-sub000/pkg/grid
// [bitset]: https://pkg.go.dev/github.com/jsgonsette/AdventOfCode2024-sub000/pkg/bitset
// [arrayset]: https://pkg.go.dev/github.com/jsgonsette/AdventOfCode2024-sub000/pkg/arrayset
// [interval]: https://pkg.go.dev/github.com/jsgonsette/AdventOfCode2024-sub000/pkg/interval
// [graph]: https://pkg.go.dev/github.com/jsgonsette/AdventOfCode2024-sub000/pkg/graph
// [dag]: https://pkg.go.dev/github.com/jsgonsette/AdventOfCode2024-sub000/pkg/dag
// [puzzle]: https://pkg.go.dev/github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle
// [bench]: https://pkg.go.dev/github.com/jsgonsette/AdventOfCode2024-sub000/pkg/bench
// [observability]: https://pkg.go.dev/github.com/jsgonsette/AdventOfCode2024-sub000/pkg/observability
// [numscan]: https://pkg.go.dev/github.com/jsgonsette/AdventOfCode2024-sub000/pkg/numscan
// [errors]: https://pkg.go.dev/github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors
package pkg
