package dag

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
)

var (
	// ErrCycle is returned by [TopoSort] when the dependencies form a cycle.
	// Match it with [errors.Is] on the CYCLE code or with the standard
	// library's errors.Is against this value.
	ErrCycle = errors.New(errors.ErrCodeCycle, "dependency graph contains a cycle")

	// ErrUnknownPredecessor is returned by [TopoSort] when an element names a
	// predecessor that is not a key of the input.
	ErrUnknownPredecessor = errors.New(errors.ErrCodeNotFound, "unknown predecessor")
)

// Element is anything that can list the ids that must precede it.
type Element[I comparable] interface {
	Before() iter.Seq[I]
}

// Deps is an [Element] backed by a plain slice of predecessor ids.
type Deps[I comparable] []I

// Before yields the predecessors in slice order.
func (d Deps[I]) Before() iter.Seq[I] { return slices.Values(d) }

const (
	white = iota // not reached yet
	gray         // on the current DFS path
	black        // emitted
)

type frame[I comparable] struct {
	id    I
	preds []I
	next  int
}

// TopoSort returns the keys of items ordered so that every id appears after
// all the ids its element lists in Before. The result is a permutation of the
// keys.
//
// The walk is an iterative depth-first search with an explicit stack, so deep
// dependency chains do not grow the goroutine stack.
func TopoSort[I cmp.Ordered, E Element[I]](items map[I]E) ([]I, error) {
	state := make(map[I]uint8, len(items))
	out := make([]I, 0, len(items))

	push := func(stack []frame[I], id I) []frame[I] {
		state[id] = gray
		return append(stack, frame[I]{id: id, preds: slices.Collect(items[id].Before())})
	}

	for _, root := range slices.Sorted(maps.Keys(items)) {
		if state[root] != white {
			continue
		}
		stack := push(nil, root)
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.preds) {
				state[top.id] = black
				out = append(out, top.id)
				stack = stack[:len(stack)-1]
				continue
			}

			pred := top.preds[top.next]
			top.next++
			if _, ok := items[pred]; !ok {
				return nil, fmt.Errorf("%w %v of %v", ErrUnknownPredecessor, pred, top.id)
			}
			switch state[pred] {
			case white:
				stack = push(stack, pred)
			case gray:
				return nil, fmt.Errorf("%w: %v", ErrCycle, cyclePath(stack, pred))
			}
		}
	}
	return out, nil
}

// cyclePath renders the stack segment that starts at the repeated id, in
// dependency order: "a -> b -> a" reads as a needs b, which needs a.
func cyclePath[I comparable](stack []frame[I], repeated I) string {
	start := len(stack) - 1
	for start > 0 && stack[start].id != repeated {
		start--
	}
	parts := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		parts = append(parts, fmt.Sprint(f.id))
	}
	return strings.Join(append(parts, fmt.Sprint(repeated)), " -> ")
}
