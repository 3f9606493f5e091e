// Package years wires the solvers of every supported event into a registry.
package years

import (
	"github.com/jsgonsette/AdventOfCode2024-sub000/internal/years/y2022"
	"github.com/jsgonsette/AdventOfCode2024-sub000/internal/years/y2024"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"
)

// Registry returns a registry holding every year with solvers.
func Registry() *puzzle.Registry {
	return puzzle.NewRegistry(y2022.Year(), y2024.Year())
}
