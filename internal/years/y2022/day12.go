package y2022

import (
	"iter"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/geom"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/grid"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"
)

// heightmap is the day 12 terrain: elevations 'a'..'z', with the start S at
// elevation a and the summit E at elevation z.
type heightmap struct {
	g          *grid.Grid[byte]
	start, end geom.Coo
}

func parseHeightmap(lines []string) (*heightmap, error) {
	g, err := grid.Parse(lines, func(r rune) (byte, bool) {
		return byte(r), r == 'S' || r == 'E' || (r >= 'a' && r <= 'z')
	})
	if err != nil {
		return nil, err
	}
	start, err := g.Locate(func(b byte) bool { return b == 'S' }, "start")
	if err != nil {
		return nil, err
	}
	end, err := g.Locate(func(b byte) bool { return b == 'E' }, "summit")
	if err != nil {
		return nil, err
	}
	g.Set(start, 'a')
	g.Set(end, 'z')
	return &heightmap{g: g, start: start, end: end}, nil
}

// climb yields the neighbours reachable from c going up by at most one.
func (h *heightmap) climb(c geom.Coo) iter.Seq[geom.Coo] {
	return h.moves(c, func(from, to byte) bool { return to <= from+1 })
}

// descend is climb in reverse: it yields the neighbours from which c can be reached.
func (h *heightmap) descend(c geom.Coo) iter.Seq[geom.Coo] {
	return h.moves(c, func(from, to byte) bool { return from <= to+1 })
}

func (h *heightmap) moves(c geom.Coo, ok func(from, to byte) bool) iter.Seq[geom.Coo] {
	return func(yield func(geom.Coo) bool) {
		from := h.g.At(c)
		for n := range h.g.Neighbors4(c) {
			if ok(from, h.g.At(n)) && !yield(n) {
				return
			}
		}
	}
}

// Day12 solves "Hill Climbing Algorithm": the fewest steps from S to E, then
// the fewest steps from any lowest square to E.
func Day12(lines []string) (puzzle.Solution, puzzle.Solution, error) {
	h, err := parseHeightmap(lines)
	if err != nil {
		return puzzle.Solution{}, puzzle.Solution{}, err
	}

	a, ok := h.g.ShortestPath(h.start, h.climb, func(v grid.Visit[byte]) bool { return v.Coo == h.end })
	if !ok {
		return puzzle.Solution{}, puzzle.Solution{}, errors.New(errors.ErrCodeNotFound, "no path from %v to %v", h.start, h.end)
	}

	// Searching backwards from the summit reaches the nearest 'a' first.
	b, ok := h.g.ShortestPath(h.end, h.descend, func(v grid.Visit[byte]) bool { return v.Cell == 'a' })
	if !ok {
		return puzzle.Solution{}, puzzle.Solution{}, errors.New(errors.ErrCodeNotFound, "no lowest square reaches %v", h.end)
	}
	return puzzle.Unsigned(uint64(a)), puzzle.Unsigned(uint64(b)), nil
}
