// Package numscan pulls integers out of free-form puzzle text such as
// "Sensor at x=2, y=-18: closest beacon is at x=-2, y=15".
//
// Every maximal run of ASCII digits is a number and everything else is a
// separator. In signed mode a '-' directly before a run negates it.
package numscan

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
)

// Ints yields the integers of row from left to right. Values that overflow T
// wrap, as with a plain conversion.
func Ints[T constraints.Integer](row string, signed bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(row); {
			if !isDigit(row[i]) {
				i++
				continue
			}
			neg := signed && i > 0 && row[i-1] == '-'
			var v T
			for ; i < len(row) && isDigit(row[i]); i++ {
				v = v*10 + T(row[i]-'0')
			}
			if neg {
				v = -v
			}
			if !yield(v) {
				return
			}
		}
	}
}

// IntsN returns exactly the n integers of row, or an INVALID_INPUT error when
// the row holds a different count.
func IntsN[T constraints.Integer](row string, n int, signed bool) ([]T, error) {
	out := make([]T, 0, n)
	for v := range Ints[T](row, signed) {
		if len(out) == n {
			return nil, errors.New(errors.ErrCodeInvalidInput, "expected %d numbers, found more in %q", n, row)
		}
		out = append(out, v)
	}
	if len(out) != n {
		return nil, errors.New(errors.ErrCodeInvalidInput, "expected %d numbers, found %d in %q", n, len(out), row)
	}
	return out, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
