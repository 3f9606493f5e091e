// Package arrayset implements a dense boolean set over an N-dimensional box of
// integer coordinates.
package arrayset

import "github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"

// Set stores one flag per coordinate of the box [lo[i], hi[i]] on every axis.
type Set struct {
	lo      []int
	hi      []int
	strides []int
	cells   []bool
}

// New allocates a cleared set covering lo..hi inclusive on every axis.
// It panics with OUT_OF_RANGE if the bounds have different arities or if a
// maximum is below its minimum.
func New(lo, hi []int) *Set {
	if len(lo) != len(hi) {
		errors.Panicf(errors.ErrCodeOutOfRange, "bounds arity differs: %d and %d", len(lo), len(hi))
	}
	s := &Set{
		lo:      append([]int(nil), lo...),
		hi:      append([]int(nil), hi...),
		strides: make([]int, len(lo)),
	}
	size := 1
	for i := range lo {
		if hi[i] < lo[i] {
			errors.Panicf(errors.ErrCodeOutOfRange, "axis %d: upper bound %d below lower bound %d", i, hi[i], lo[i])
		}
		s.strides[i] = size
		size *= hi[i] - lo[i] + 1
	}
	s.cells = make([]bool, size)
	return s
}

// Dims returns the number of axes.
func (s *Set) Dims() int { return len(s.lo) }

// Test reports whether the coordinate is in the set.
func (s *Set) Test(coord ...int) bool { return s.cells[s.index(coord)] }

// Set adds the coordinate to the set.
func (s *Set) Set(coord ...int) { s.cells[s.index(coord)] = true }

// Clear removes the coordinate from the set.
func (s *Set) Clear(coord ...int) { s.cells[s.index(coord)] = false }

// Toggle flips the membership of the coordinate and returns the new state.
func (s *Set) Toggle(coord ...int) bool {
	i := s.index(coord)
	s.cells[i] = !s.cells[i]
	return s.cells[i]
}

// Count returns the number of coordinates in the set.
func (s *Set) Count() int {
	n := 0
	for _, c := range s.cells {
		if c {
			n++
		}
	}
	return n
}

func (s *Set) index(coord []int) int {
	if len(coord) != len(s.lo) {
		errors.Panicf(errors.ErrCodeOutOfRange, "coordinate has %d axes, set has %d", len(coord), len(s.lo))
	}
	idx := 0
	for i, c := range coord {
		if c < s.lo[i] || c > s.hi[i] {
			errors.Panicf(errors.ErrCodeOutOfRange, "axis %d: %d outside [%d, %d]", i, c, s.lo[i], s.hi[i])
		}
		idx += (c - s.lo[i]) * s.strides[i]
	}
	return idx
}
