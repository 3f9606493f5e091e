// Package grid provides a rectangular, row-major grid of cells addressed by
// [geom.Coo], with text parsing, rendering and a breadth-ordered Dijkstra
// traversal.
//
// # Parsing
//
// [Parse] reads puzzle text one rune per cell. The grid ends at the first
// empty line, so a map followed by a blank line and more input parses as just
// the map. The width is the longest line; shorter lines are padded with the
// blank rune (a space unless [WithBlank] says otherwise) before conversion.
//
//	g, err := grid.Parse(lines, func(r rune) (bool, bool) {
//	    return r == '#', r == '#' || r == '.'
//	})
//
// # Traversal
//
// [Grid.Dijkstra] walks the grid from a start coordinate through a caller
// supplied adjacency function, yielding each reachable cell once in
// nondecreasing step count. See [Visit].
package grid

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/geom"
)

// Grid is a width x height array of cells stored row by row.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// New returns a grid of the given size filled with zero values.
func New[T any](width, height int) *Grid[T] {
	if width < 0 || height < 0 {
		errors.Panicf(errors.ErrCodeOutOfRange, "negative grid size %dx%d", width, height)
	}
	return &Grid[T]{width: width, height: height, cells: make([]T, width*height)}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Area returns the number of cells.
func (g *Grid[T]) Area() int { return len(g.cells) }

// Inside reports whether c addresses a cell of g.
func (g *Grid[T]) Inside(c geom.Coo) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.width && c.Y < g.height
}

// At returns the cell at c. It panics with OUT_OF_RANGE outside the grid.
func (g *Grid[T]) At(c geom.Coo) T { return *g.Ptr(c) }

// Ptr returns a pointer to the cell at c for in-place updates. It panics with
// OUT_OF_RANGE outside the grid.
func (g *Grid[T]) Ptr(c geom.Coo) *T {
	if !g.Inside(c) {
		errors.Panicf(errors.ErrCodeOutOfRange, "%v outside %dx%d grid", c, g.width, g.height)
	}
	return &g.cells[c.Y*g.width+c.X]
}

// Set stores v at c. It panics with OUT_OF_RANGE outside the grid.
func (g *Grid[T]) Set(c geom.Coo, v T) { *g.Ptr(c) = v }

// TryAt returns the cell at c, or false when c is outside the grid.
func (g *Grid[T]) TryAt(c geom.Coo) (T, bool) {
	if !g.Inside(c) {
		var zero T
		return zero, false
	}
	return g.cells[c.Y*g.width+c.X], true
}

// TryPtr returns a pointer to the cell at c, or nil when c is outside the grid.
func (g *Grid[T]) TryPtr(c geom.Coo) *T {
	if !g.Inside(c) {
		return nil
	}
	return &g.cells[c.Y*g.width+c.X]
}

// Wrap maps c onto the grid, wrapping both axes around like a torus.
func (g *Grid[T]) Wrap(c geom.Coo) geom.Coo { return c.WrapAround(g.width, g.height) }

// Coords yields every coordinate in row-major order.
func (g *Grid[T]) Coords() iter.Seq[geom.Coo] {
	return func(yield func(geom.Coo) bool) {
		for y := range g.height {
			for x := range g.width {
				if !yield(geom.Coo{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Cells yields every coordinate with its cell in row-major order.
func (g *Grid[T]) Cells() iter.Seq2[geom.Coo, T] {
	return func(yield func(geom.Coo, T) bool) {
		for i, v := range g.cells {
			if !yield(geom.Coo{X: i % g.width, Y: i / g.width}, v) {
				return
			}
		}
	}
}

// Neighbors4 yields the in-bounds cardinal neighbours of c. It has the shape
// expected by [Grid.Dijkstra] for an unobstructed grid.
func (g *Grid[T]) Neighbors4(c geom.Coo) iter.Seq[geom.Coo] {
	return func(yield func(geom.Coo) bool) {
		for n := range c.Adjacent4() {
			if g.Inside(n) && !yield(n) {
				return
			}
		}
	}
}

// Find returns the first coordinate, in row-major order, whose cell satisfies pred.
func (g *Grid[T]) Find(pred func(T) bool) (geom.Coo, bool) {
	for c, v := range g.Cells() {
		if pred(v) {
			return c, true
		}
	}
	return geom.Coo{}, false
}

// Locate is like [Grid.Find] but returns a NOT_FOUND error naming what was
// looked for when no cell matches.
func (g *Grid[T]) Locate(pred func(T) bool, what string) (geom.Coo, error) {
	if c, ok := g.Find(pred); ok {
		return c, nil
	}
	return geom.Coo{}, errors.New(errors.ErrCodeNotFound, "no %s in %dx%d grid", what, g.width, g.height)
}

// Inflated returns a copy of g surrounded by margin cells on every side, each
// holding fill.
func (g *Grid[T]) Inflated(margin int, fill T) *Grid[T] {
	out := New[T](g.width+2*margin, g.height+2*margin)
	for i := range out.cells {
		out.cells[i] = fill
	}
	offset := geom.Coo{X: margin, Y: margin}
	for c, v := range g.Cells() {
		out.Set(c.Add(offset), v)
	}
	return out
}

// Render draws the grid as text, one line per row, each cell converted by format.
func (g *Grid[T]) Render(format func(T) rune) string {
	var sb strings.Builder
	for y := range g.height {
		for _, v := range g.cells[y*g.width : (y+1)*g.width] {
			sb.WriteRune(format(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Clone returns an independent copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{width: g.width, height: g.height, cells: make([]T, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// ParseOption configures [Parse].
type ParseOption func(*parseConfig)

type parseConfig struct {
	blank rune
}

// WithBlank sets the rune used to pad lines shorter than the grid width.
func WithBlank(r rune) ParseOption {
	return func(c *parseConfig) { c.blank = r }
}

// Parse builds a grid from text lines, converting each rune with parse. The
// second result of parse reports whether the rune is valid; an invalid rune
// fails with an INVALID_INPUT error giving its coordinate. Parsing stops at the
// first empty line, and input with no leading non-empty line is an error.
func Parse[T any](lines []string, parse func(rune) (T, bool), opts ...ParseOption) (*Grid[T], error) {
	cfg := parseConfig{blank: ' '}
	for _, opt := range opts {
		opt(&cfg)
	}

	height, width := 0, 0
	for _, line := range lines {
		if line == "" {
			break
		}
		height++
		width = max(width, utf8.RuneCountInString(line))
	}
	if height == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty grid")
	}

	g := New[T](width, height)
	for y, line := range lines[:height] {
		x := 0
		for _, r := range line {
			if err := g.parseCell(geom.Coo{X: x, Y: y}, r, parse); err != nil {
				return nil, err
			}
			x++
		}
		for ; x < width; x++ {
			if err := g.parseCell(geom.Coo{X: x, Y: y}, cfg.blank, parse); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

func (g *Grid[T]) parseCell(c geom.Coo, r rune, parse func(rune) (T, bool)) error {
	v, ok := parse(r)
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "unexpected character %q at %v", r, c)
	}
	g.cells[c.Y*g.width+c.X] = v
	return nil
}

// Runes parses lines into a grid of raw runes, padding with spaces.
func Runes(lines []string) (*Grid[rune], error) {
	return Parse(lines, func(r rune) (rune, bool) { return r, true })
}
