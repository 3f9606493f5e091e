// Package geom provides the integer plane used by grid puzzles: signed
// coordinates, the four cardinal directions and neighbourhood iterators.
//
// The y axis grows downward, matching the row order of puzzle text: stepping
// [Up] decrements Y.
package geom

import (
	"fmt"
	"iter"
	"math"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
)

// Coo is a signed 2-D integer coordinate.
type Coo struct {
	X, Y int
}

// FromUnsigned builds a coordinate from unsigned components.
// It panics with OUT_OF_RANGE if a component does not fit in an int.
func FromUnsigned(x, y uint) Coo {
	if x > math.MaxInt || y > math.MaxInt {
		errors.Panicf(errors.ErrCodeOutOfRange, "coordinate (%d, %d) does not fit a signed int", x, y)
	}
	return Coo{X: int(x), Y: int(y)}
}

// Unsigned returns the components as unsigned integers.
// It panics with OUT_OF_RANGE if either component is negative.
func (c Coo) Unsigned() (uint, uint) {
	if c.X < 0 || c.Y < 0 {
		errors.Panicf(errors.ErrCodeOutOfRange, "coordinate %v has a negative component", c)
	}
	return uint(c.X), uint(c.Y)
}

// Add returns the component-wise sum c+o.
func (c Coo) Add(o Coo) Coo { return Coo{c.X + o.X, c.Y + o.Y} }

// Sub returns the component-wise difference c-o.
func (c Coo) Sub(o Coo) Coo { return Coo{c.X - o.X, c.Y - o.Y} }

// Next returns the coordinate one step away in direction d.
func (c Coo) Next(d Direction) Coo { return c.Add(d.Step()) }

// TryNext returns the coordinate one step away in direction d, provided it
// lies inside the area [0, width) x [0, height).
func (c Coo) TryNext(d Direction, width, height int) (Coo, bool) {
	n := c.Next(d)
	if n.X < 0 || n.Y < 0 || n.X >= width || n.Y >= height {
		return Coo{}, false
	}
	return n, true
}

// Adjacent4 yields the four cardinal neighbours, in [Directions] order.
func (c Coo) Adjacent4() iter.Seq[Coo] {
	return func(yield func(Coo) bool) {
		for _, d := range directions {
			if !yield(c.Next(d)) {
				return
			}
		}
	}
}

// Adjacent8 yields the eight surrounding coordinates, row by row, excluding c.
func (c Coo) Adjacent8() iter.Seq[Coo] {
	return func(yield func(Coo) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if !yield(Coo{c.X + dx, c.Y + dy}) {
					return
				}
			}
		}
	}
}

// AdjacentManhattan yields every coordinate whose Manhattan distance to c is
// between 1 and radius inclusive. Nothing is yielded when radius < 1.
func (c Coo) AdjacentManhattan(radius int) iter.Seq[Coo] {
	return func(yield func(Coo) bool) {
		for dy := -radius; dy <= radius; dy++ {
			span := radius - abs(dy)
			for dx := -span; dx <= span; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if !yield(Coo{c.X + dx, c.Y + dy}) {
					return
				}
			}
		}
	}
}

// WrapAround maps c into the area [0, width) x [0, height) using the
// Euclidean remainder on both axes, so negative components wrap to the far side.
func (c Coo) WrapAround(width, height int) Coo {
	return Coo{X: euclidMod(c.X, width), Y: euclidMod(c.Y, height)}
}

// ManhattanDistance returns |Δx| + |Δy|.
func (c Coo) ManhattanDistance(o Coo) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func (c Coo) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }

// Extents returns the smallest box containing every coordinate of seq, as its
// top-left and bottom-right corners. ok is false when seq is empty.
func Extents(seq iter.Seq[Coo]) (lo, hi Coo, ok bool) {
	for c := range seq {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	return lo, hi, ok
}

func euclidMod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
