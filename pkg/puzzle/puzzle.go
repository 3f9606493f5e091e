// Package puzzle defines the contract between daily solvers and the tools
// that run them: answers, solver functions, per-year lookup tables and the
// on-disk layout of puzzle inputs.
//
// # Registering Solvers
//
// A year is usually a [Table] filled at init time:
//
//	func Year() puzzle.Year {
//	    t := puzzle.NewTable(2024)
//	    t.Register(1, day01.Solve)
//	    t.Register(18, day18.Solve)
//	    return t
//	}
//
// Years are gathered in a [Registry] keyed by year id.
//
// # Inputs
//
// Inputs live at <dir>/<year>/<DD>.txt with a zero-padded day, see
// [InputPath] and [ReadInput].
package puzzle

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
)

// Days in an event calendar.
const (
	FirstDay = errors.FirstDay
	LastDay  = errors.LastDay
)

// Solution is one puzzle answer: either an unsigned number or a text.
type Solution struct {
	num    uint64
	text   string
	isText bool
}

// Unsigned returns a numeric answer.
func Unsigned(v uint64) Solution { return Solution{num: v} }

// Text returns a textual answer.
func Text(s string) Solution { return Solution{text: s, isText: true} }

// IsText reports whether s holds a textual answer.
func (s Solution) IsText() bool { return s.isText }

// Uint returns the numeric value and whether s is numeric.
func (s Solution) Uint() (uint64, bool) { return s.num, !s.isText }

func (s Solution) String() string {
	if s.isText {
		return s.text
	}
	return strconv.FormatUint(s.num, 10)
}

// Solver computes both answers of a day from its input lines.
type Solver func(lines []string) (a, b Solution, err error)

// Year gives access to the solvers of one event.
type Year interface {
	// ID returns the event year, e.g. 2024.
	ID() uint32
	// SolverFor returns the solver of a day in 1..25, if one exists.
	SolverFor(day uint32) (Solver, bool)
}

// Table is a [Year] backed by a fixed array of optional solvers.
type Table struct {
	id      uint32
	solvers [LastDay]Solver
}

// NewTable returns an empty table for the given year.
func NewTable(id uint32) *Table { return &Table{id: id} }

// Register sets the solver of a day. It panics with INVALID_DAY outside 1..25,
// which only happens with a typo in the registration code.
func (t *Table) Register(day uint32, s Solver) *Table {
	if err := errors.ValidateDay(day); err != nil {
		panic(err)
	}
	t.solvers[day-1] = s
	return t
}

// ID implements [Year].
func (t *Table) ID() uint32 { return t.id }

// SolverFor implements [Year].
func (t *Table) SolverFor(day uint32) (Solver, bool) {
	if day < FirstDay || day > LastDay || t.solvers[day-1] == nil {
		return nil, false
	}
	return t.solvers[day-1], true
}

// Days returns the days that have a solver, in ascending order.
func Days(y Year) []uint32 {
	var days []uint32
	for d := uint32(FirstDay); d <= LastDay; d++ {
		if _, ok := y.SolverFor(d); ok {
			days = append(days, d)
		}
	}
	return days
}

// Registry maps year ids to years.
type Registry struct {
	years map[uint32]Year
}

// NewRegistry returns a registry holding the given years.
func NewRegistry(years ...Year) *Registry {
	r := &Registry{years: make(map[uint32]Year, len(years))}
	for _, y := range years {
		r.Add(y)
	}
	return r
}

// Add registers y, replacing any year with the same id.
func (r *Registry) Add(y Year) { r.years[y.ID()] = y }

// Lookup returns the year with the given id, or a NOT_FOUND error listing the
// available ones.
func (r *Registry) Lookup(id uint32) (Year, error) {
	if y, ok := r.years[id]; ok {
		return y, nil
	}
	return nil, errors.New(errors.ErrCodeNotFound, "no solvers for year %d (available: %v)", id, r.IDs())
}

// IDs returns the registered year ids in ascending order.
func (r *Registry) IDs() []uint32 { return slices.Sorted(maps.Keys(r.years)) }

// DayName formats a day as its zero-padded input file stem.
func DayName(day uint32) string { return fmt.Sprintf("%02d", day) }
