// Package dag orders keyed elements that declare what must come before them.
//
// # Overview
//
// Puzzles about build steps, page ordering rules or instruction prerequisites
// all reduce to the same question: given, for every item, the items it
// depends on, produce a sequence where each item follows its dependencies.
// This package answers it with [TopoSort] and can draw the dependency graph
// for inspection.
//
// # Basic Usage
//
// Any type exposing its predecessors through [Element] can be sorted. The
// [Deps] slice type covers the common case:
//
//	items := map[string]dag.Deps[string]{
//	    "a": nil,
//	    "b": {"a"},
//	    "c": {"b"},
//	}
//	order, err := dag.TopoSort(items) // [a b c]
//
// Textual dependency lists in the form "id: dep dep ..." are read with
// [ParseDeps].
//
// # Determinism
//
// Roots are explored in ascending key order and predecessors in the order
// the element yields them, so the same input always produces the same order
// even though Go map iteration is randomised.
//
// # Cycles
//
// A dependency cycle has no valid ordering. The depth-first walk tracks the
// items it is still expanding and fails with an error matching [ErrCycle]
// (code CYCLE) as soon as it reaches one of them again. A predecessor that is
// not a key of the input fails with NOT_FOUND.
//
// # Rendering
//
// [ToDOT] exports the graph in Graphviz DOT format with one edge per
// dependency, drawn from the predecessor to the dependent. [RenderSVG] lays it
// out in-process with [github.com/goccy/go-graphviz].
package dag
