package dag_test

import (
	stderrors "errors"
	"iter"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/dag"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
)

// requireOrdered checks that order is a permutation of the keys of items and
// that every predecessor precedes its dependents.
func requireOrdered[I comparable, E dag.Element[I]](t *testing.T, items map[I]E, order []I) {
	t.Helper()
	require.ElementsMatch(t, slices.Collect(maps.Keys(items)), order)
	pos := make(map[I]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for id, e := range items {
		for pred := range e.Before() {
			assert.Less(t, pos[pred], pos[id], "%v must come before %v", pred, id)
		}
	}
}

func TestTopoSort_Chain(t *testing.T) {
	items := map[string]dag.Deps[string]{
		"a": nil,
		"b": {"a"},
		"c": {"b"},
	}
	order, err := dag.TopoSort(items)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestTopoSort_Diamond(t *testing.T) {
	items := map[int]dag.Deps[int]{
		4: {2, 3},
		2: {1},
		3: {1},
		1: nil,
		5: nil,
	}
	order, err := dag.TopoSort(items)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, order)
	requireOrdered(t, items, order)
}

func TestTopoSort_SharedPredecessorsEmittedOnce(t *testing.T) {
	// Every node depends on all lower ones, so naive re-pushing would emit
	// the low ids many times over.
	items := map[int]dag.Deps[int]{}
	for i := range 40 {
		var deps dag.Deps[int]
		for j := i - 1; j >= 0; j-- {
			deps = append(deps, j)
		}
		items[i] = deps
	}
	order, err := dag.TopoSort(items)
	require.NoError(t, err)
	assert.Len(t, order, 40)
	requireOrdered(t, items, order)
}

func TestTopoSort_Deterministic(t *testing.T) {
	items := map[string]dag.Deps[string]{
		"x": {"m", "b"},
		"m": nil,
		"b": nil,
		"q": {"b"},
	}
	first, err := dag.TopoSort(items)
	require.NoError(t, err)
	for range 20 {
		again, err := dag.TopoSort(items)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, []string{"b", "m", "q", "x"}, first)
}

func TestTopoSort_Empty(t *testing.T) {
	order, err := dag.TopoSort(map[string]dag.Deps[string]{})
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopoSort_Cycle(t *testing.T) {
	tests := []struct {
		name  string
		items map[string]dag.Deps[string]
		path  string
	}{
		{"self", map[string]dag.Deps[string]{"a": {"a"}}, "a -> a"},
		{"pair", map[string]dag.Deps[string]{"a": {"b"}, "b": {"a"}}, "a -> b -> a"},
		{"behind a root", map[string]dag.Deps[string]{
			"a": {"b"},
			"b": {"c"},
			"c": {"d"},
			"d": {"b"},
		}, "b -> c -> d -> b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dag.TopoSort(tt.items)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, dag.ErrCycle))
			assert.True(t, errors.Is(err, errors.ErrCodeCycle))
			assert.True(t, strings.HasSuffix(err.Error(), tt.path), "got %q", err)
		})
	}
}

func TestTopoSort_UnknownPredecessor(t *testing.T) {
	_, err := dag.TopoSort(map[string]dag.Deps[string]{"a": {"ghost"}})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, dag.ErrUnknownPredecessor))
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))
	assert.Contains(t, err.Error(), "ghost")
}

// rule is an Element computed on the fly rather than stored as a slice.
type rule struct{ after int }

func (r rule) Before() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := r.after - 1; i >= 0; i -= 2 {
			if !yield(i) {
				return
			}
		}
	}
}

func TestTopoSort_CustomElement(t *testing.T) {
	items := map[int]rule{}
	for i := range 9 {
		items[i] = rule{after: i}
	}
	order, err := dag.TopoSort(items)
	require.NoError(t, err)
	requireOrdered(t, items, order)
}

func TestParseDeps(t *testing.T) {
	items, err := dag.ParseDeps([]string{
		"# build order",
		"app: lib, util",
		"lib: util",
		"",
		"util:",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]dag.Deps[string]{
		"app":  {"lib", "util"},
		"lib":  {"util"},
		"util": nil,
	}, items)

	order, err := dag.TopoSort(items)
	require.NoError(t, err)
	assert.Equal(t, []string{"util", "lib", "app"}, order)
}

func TestParseDeps_Errors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"no colon", []string{"a b c"}},
		{"empty id", []string{": a"}},
		{"duplicate", []string{"a: b", "a: c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dag.ParseDeps(tt.lines)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
		})
	}
}
