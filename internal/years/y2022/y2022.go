// Package y2022 holds solvers for the 2022 event.
package y2022

import "github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"

// Year returns the 2022 solvers.
func Year() *puzzle.Table {
	return puzzle.NewTable(2022).
		Register(12, Day12).
		Register(15, Day15(2_000_000, 4_000_000))
}
