// Package interval provides closed integer intervals and a set type that
// keeps a union of them as a sorted list of disjoint ranges.
//
// # Ordering
//
// Intervals are only partially ordered: a is before b when a ends strictly
// before b starts. Two distinct intervals that share at least one point are
// unordered, which is exactly the case where [Set.Add] fuses them:
//
//	[3,5] + [4,9] -> [3,9]
//	[3,5] + [6,8] -> [3,5] [6,8]   (adjacent, no shared point)
//
// # Lengths
//
// Lengths count points, so [3,5] has length 3. They are computed in uint64
// and saturate instead of wrapping, which keeps an interval spanning the whole
// int range well defined.
package interval

import (
	"fmt"

	"github.com/jsgonsette/AdventOfCode2024-sub000/internal/satmath"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
)

// Interval is the closed range [Lo, Hi]. Lo <= Hi holds for every value
// returned by this package.
type Interval struct {
	Lo, Hi int
}

// New returns [a, b], or an INVALID_INPUT error when a > b.
func New(a, b int) (Interval, error) {
	if a > b {
		return Interval{}, errors.New(errors.ErrCodeInvalidInput, "interval bounds reversed: [%d, %d]", a, b)
	}
	return Interval{Lo: a, Hi: b}, nil
}

// Compare orders iv against o. It returns -1 when iv ends before o starts,
// +1 when iv starts after o ends and 0 when they are identical. ok is false
// for distinct overlapping intervals, which have no order.
func (iv Interval) Compare(o Interval) (cmp int, ok bool) {
	switch {
	case iv == o:
		return 0, true
	case iv.Hi < o.Lo:
		return -1, true
	case iv.Lo > o.Hi:
		return 1, true
	default:
		return 0, false
	}
}

// Less reports whether iv ends strictly before o starts.
func (iv Interval) Less(o Interval) bool { return iv.Hi < o.Lo }

// Overlaps reports whether iv and o share at least one point.
func (iv Interval) Overlaps(o Interval) bool { return iv.Lo <= o.Hi && o.Lo <= iv.Hi }

// Union returns the smallest interval covering iv and o. It is only defined
// when they overlap; ok is false otherwise.
func (iv Interval) Union(o Interval) (Interval, bool) {
	if !iv.Overlaps(o) {
		return Interval{}, false
	}
	return Interval{Lo: min(iv.Lo, o.Lo), Hi: max(iv.Hi, o.Hi)}, true
}

// Intersection returns the points shared by iv and o; ok is false when there
// are none.
func (iv Interval) Intersection(o Interval) (Interval, bool) {
	if !iv.Overlaps(o) {
		return Interval{}, false
	}
	return Interval{Lo: max(iv.Lo, o.Lo), Hi: min(iv.Hi, o.Hi)}, true
}

// Contains reports whether x lies in iv.
func (iv Interval) Contains(x int) bool { return iv.Lo <= x && x <= iv.Hi }

// Len returns the number of points in iv, saturating at math.MaxUint64.
func (iv Interval) Len() uint64 {
	return satmath.Add(uint64(iv.Hi)-uint64(iv.Lo), 1)
}

func (iv Interval) String() string { return fmt.Sprintf("[%d,%d]", iv.Lo, iv.Hi) }
