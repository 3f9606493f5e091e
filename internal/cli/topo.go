package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/dag"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"
)

// topoCommand creates the topo command.
func (c *CLI) topoCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "topo FILE",
		Short: "Topologically sort a dependency file",
		Long: `Topo reads a dependency file with one "id: dep, dep" line per element
and prints the elements so that every element comes after its dependencies.
Blank lines and lines starting with '#' are ignored. Files ending in .json
are read as node-link documents instead:

  {"nodes": [{"id": "a"}, {"id": "b"}], "edges": [{"from": "a", "to": "b"}]}

With --dot, --json or --svg the graph itself is printed instead of the order:
in Graphviz DOT format, as a node-link document, or laid out by Graphviz as SVG.`,
		Example: `  aoc topo deps.txt
  aoc topo deps.json --dot
  aoc topo deps.txt --svg > deps.svg`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range []string{"dot", "json", "svg"} {
				if !cmd.Flags().Changed(f) {
					continue
				}
				if format != "" {
					return errors.New(errors.ErrCodeInvalidInput, "--%s and --%s are mutually exclusive", format, f)
				}
				format = f
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTopo(cmd, args[0], format)
		},
	}

	cmd.Flags().Bool("dot", false, "print the graph in DOT format")
	cmd.Flags().Bool("json", false, "print the graph as a node-link JSON document")
	cmd.Flags().Bool("svg", false, "print the graph rendered as SVG")
	return cmd
}

func (c *CLI) runTopo(cmd *cobra.Command, path, format string) error {
	logger := loggerFromContext(cmd.Context())

	items, err := readDeps(path)
	if err != nil {
		return err
	}
	logger.Debug("parsed dependencies", "path", path, "elements", len(items))

	switch format {
	case "dot":
		_, err := fmt.Fprint(stdout, dag.ToDOT(items))
		return err
	case "json":
		return dag.WriteJSON(items, stdout)
	case "svg":
		out, err := dag.RenderSVG(cmd.Context(), dag.ToDOT(items))
		if err != nil {
			return err
		}
		_, err = stdout.Write(out)
		return err
	}

	order, err := dag.TopoSort(items)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, strings.Join(order, "\n"))
	return nil
}

// readDeps loads a dependency file, choosing the parser from its extension.
func readDeps(path string) (map[string]dag.Deps[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}

	var items map[string]dag.Deps[string]
	if strings.EqualFold(filepath.Ext(path), ".json") {
		items, err = dag.ReadJSON(bytes.NewReader(data))
	} else {
		items, err = dag.ParseDeps(puzzle.SplitLines(string(data)))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}
