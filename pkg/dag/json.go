package dag

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
)

// jsonGraph is the node-link document read by [ReadJSON] and written by
// [WriteJSON]. An edge runs from a predecessor to the element that needs it.
type jsonGraph struct {
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

type jsonNode struct {
	ID string `json:"id"`
}

type jsonEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteJSON encodes the dependency map as an indented node-link document.
// Nodes and edges are written in the same stable order as [ToDOT].
func WriteJSON[I cmp.Ordered, E Element[I]](items map[I]E, w io.Writer) error {
	var out jsonGraph
	ids := slices.Sorted(maps.Keys(items))
	for _, id := range ids {
		out.Nodes = append(out.Nodes, jsonNode{ID: fmt.Sprint(id)})
	}
	for _, id := range ids {
		for pred := range items[id].Before() {
			out.Edges = append(out.Edges, jsonEdge{From: fmt.Sprint(pred), To: fmt.Sprint(id)})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a node-link document into a dependency map. Edge endpoints
// must be declared nodes; malformed documents fail with INVALID_INPUT.
func ReadJSON(r io.Reader) (map[string]Deps[string], error) {
	var in jsonGraph
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode dependency graph")
	}

	items := make(map[string]Deps[string], len(in.Nodes))
	for _, n := range in.Nodes {
		if n.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "node without id")
		}
		if _, dup := items[n.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "node %q declared twice", n.ID)
		}
		items[n.ID] = nil
	}
	for _, e := range in.Edges {
		deps, ok := items[e.To]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "edge %s -> %s: unknown node %q", e.From, e.To, e.To)
		}
		if _, ok := items[e.From]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "edge %s -> %s: unknown node %q", e.From, e.To, e.From)
		}
		items[e.To] = append(deps, e.From)
	}
	return items, nil
}
