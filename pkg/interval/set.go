package interval

import (
	"iter"
	"slices"
	"sort"
	"strings"

	"github.com/jsgonsette/AdventOfCode2024-sub000/internal/satmath"
)

// Set is a union of intervals kept as a sorted slice of pairwise disjoint
// ranges. The zero value is an empty set.
type Set struct {
	ivs []Interval
}

// NewSet returns the union of the given intervals.
func NewSet(ivs ...Interval) *Set {
	s := &Set{}
	for _, iv := range ivs {
		s.Add(iv)
	}
	return s
}

// Add merges iv into the set. Every stored interval sharing a point with iv
// is fused with it into a single range.
func (s *Set) Add(iv Interval) {
	start := sort.Search(len(s.ivs), func(i int) bool { return !s.ivs[i].Less(iv) })
	end := start
	for end < len(s.ivs) && s.ivs[end].Lo <= iv.Hi {
		iv, _ = iv.Union(s.ivs[end])
		end++
	}
	s.ivs = slices.Replace(s.ivs, start, end, iv)
}

// Length returns the number of points covered, saturating at math.MaxUint64.
func (s *Set) Length() uint64 {
	var n uint64
	for _, iv := range s.ivs {
		n = satmath.Add(n, iv.Len())
	}
	return n
}

// NumDisjoint returns the number of disjoint ranges in the set.
func (s *Set) NumDisjoint() int { return len(s.ivs) }

// At returns the i-th disjoint range in ascending order.
func (s *Set) At(i int) Interval { return s.ivs[i] }

// All yields the disjoint ranges in ascending order.
func (s *Set) All() iter.Seq[Interval] { return slices.Values(s.ivs) }

// Contains reports whether x is covered by the set.
func (s *Set) Contains(x int) bool {
	i := sort.Search(len(s.ivs), func(i int) bool { return s.ivs[i].Hi >= x })
	return i < len(s.ivs) && s.ivs[i].Lo <= x
}

// Intersection returns the points covered by both s and o.
func (s *Set) Intersection(o *Set) *Set {
	out := &Set{}
	i, j := 0, 0
	for i < len(s.ivs) && j < len(o.ivs) {
		a, b := s.ivs[i], o.ivs[j]
		if common, ok := a.Intersection(b); ok {
			out.ivs = append(out.ivs, common)
		}
		if a.Hi < b.Hi {
			i++
		} else {
			j++
		}
	}
	return out
}

// Gaps yields, in ascending order, the maximal ranges of bound that the set
// does not cover.
func (s *Set) Gaps(bound Interval) iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		next := bound.Lo
		for _, iv := range s.ivs {
			if iv.Hi < next {
				continue
			}
			if iv.Lo > bound.Hi {
				break
			}
			if iv.Lo > next && !yield(Interval{Lo: next, Hi: iv.Lo - 1}) {
				return
			}
			if iv.Hi >= bound.Hi {
				return
			}
			next = iv.Hi + 1
		}
		if next <= bound.Hi {
			yield(Interval{Lo: next, Hi: bound.Hi})
		}
	}
}

func (s *Set) String() string {
	parts := make([]string, len(s.ivs))
	for i, iv := range s.ivs {
		parts[i] = iv.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
