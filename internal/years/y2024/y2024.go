// Package y2024 holds solvers for the 2024 event.
package y2024

import "github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"

// Year returns the 2024 solvers.
func Year() *puzzle.Table {
	return puzzle.NewTable(2024).
		Register(1, Day01).
		Register(18, Day18(71, 71, 1024))
}
