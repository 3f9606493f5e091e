package y2024

import (
	"fmt"
	"iter"
	"sort"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/geom"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/grid"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/numscan"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"
)

// memorySpace is the day 18 maze: a cell is true once a byte has fallen on it.
type memorySpace struct {
	width, height int
	falls         []geom.Coo
}

func parseFalls(lines []string, width, height int) (*memorySpace, error) {
	m := &memorySpace{width: width, height: height}
	for _, line := range lines {
		if line == "" {
			continue
		}
		v, err := numscan.IntsN[uint](line, 2, false)
		if err != nil {
			return nil, err
		}
		c := geom.FromUnsigned(v[0], v[1])
		if c.X >= width || c.Y >= height {
			return nil, errors.New(errors.ErrCodeOutOfRange, "byte %v falls outside the %dx%d space", c, width, height)
		}
		m.falls = append(m.falls, c)
	}
	return m, nil
}

// stepsToExit returns the length of the shortest path from the top-left to
// the bottom-right corner once the first n bytes have fallen.
func (m *memorySpace) stepsToExit(n int) (uint, bool) {
	g := grid.New[bool](m.width, m.height)
	for _, c := range m.falls[:n] {
		g.Set(c, true)
	}
	exit := geom.Coo{X: m.width - 1, Y: m.height - 1}
	if g.At(geom.Coo{}) || g.At(exit) {
		return 0, false
	}

	open := func(c geom.Coo) iter.Seq[geom.Coo] {
		return func(yield func(geom.Coo) bool) {
			for nb := range g.Neighbors4(c) {
				if !g.At(nb) && !yield(nb) {
					return
				}
			}
		}
	}
	return g.ShortestPath(geom.Coo{}, open, func(v grid.Visit[bool]) bool { return v.Coo == exit })
}

// Day18 returns a "RAM Run" solver for a width x height memory space. Part one
// is the number of steps to the exit after the first `fallen` bytes; part two
// is the first byte, as "x,y", that cuts the exit off.
func Day18(width, height, fallen int) puzzle.Solver {
	return func(lines []string) (puzzle.Solution, puzzle.Solution, error) {
		m, err := parseFalls(lines, width, height)
		if err != nil {
			return puzzle.Solution{}, puzzle.Solution{}, err
		}
		if len(m.falls) < fallen {
			return puzzle.Solution{}, puzzle.Solution{}, errors.New(errors.ErrCodeInvalidInput, "need at least %d bytes, got %d", fallen, len(m.falls))
		}

		steps, ok := m.stepsToExit(fallen)
		if !ok {
			return puzzle.Solution{}, puzzle.Solution{}, errors.New(errors.ErrCodeNotFound, "exit unreachable after %d bytes", fallen)
		}

		// Reachability only gets worse as bytes fall, so binary search for
		// the first count that blocks the exit.
		blocked := fallen + sort.Search(len(m.falls)-fallen, func(i int) bool {
			_, ok := m.stepsToExit(fallen + i + 1)
			return !ok
		}) + 1
		if blocked > len(m.falls) {
			return puzzle.Unsigned(uint64(steps)), puzzle.Solution{}, errors.New(errors.ErrCodeNotFound, "the exit is never cut off")
		}
		last := m.falls[blocked-1]
		return puzzle.Unsigned(uint64(steps)), puzzle.Text(fmt.Sprintf("%d,%d", last.X, last.Y)), nil
	}
}
