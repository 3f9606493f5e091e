package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/bench"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/observability"
)

// benchOptions holds the flags of the bench command. Zero values fall back
// to the configuration.
type benchOptions struct {
	inputDir    string
	outputDir   string
	repetitions int
	progress    string
}

// benchCommand creates the bench command.
func (c *CLI) benchCommand() *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench YEAR",
		Short: "Benchmark every solver of a year and render an SVG histogram",
		Long: `Bench runs every registered solver of YEAR repeatedly, one pass over all
days per repetition, and summarises each day with a trimmed mean.

The summary is printed as a table and drawn as a log-scale bar chart in
<output-dir>/perfo-<YEAR>.svg.

Progress modes:
  ticks  '#' every tenth repetition and '.' otherwise (default)
  log    one structured log line per repetition and failure
  none   silent`,
		Example: `  aoc bench 2024
  aoc bench 2022 -n 20 -o reports --progress log`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBench(cmd, args[0], c.resolveBenchOptions(opts))
		},
	}

	cmd.Flags().StringVarP(&opts.inputDir, "input", "i", "", "puzzle input directory (default from config)")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "report directory (default from config)")
	cmd.Flags().IntVarP(&opts.repetitions, "repetitions", "n", 0, "number of repetitions (default from config)")
	cmd.Flags().StringVar(&opts.progress, "progress", "", "progress output: ticks, log or none (default from config)")

	return cmd
}

func (c *CLI) resolveBenchOptions(opts benchOptions) benchOptions {
	opts.inputDir = c.inputDir(opts.inputDir)
	if opts.outputDir == "" {
		opts.outputDir = c.cfg.OutputDir
	}
	if opts.repetitions == 0 {
		opts.repetitions = c.cfg.Repetitions
	}
	if opts.progress == "" {
		opts.progress = c.cfg.Progress
	}
	return opts
}

func (c *CLI) runBench(cmd *cobra.Command, yearArg string, opts benchOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := validateProgress(opts.progress); err != nil {
		return err
	}
	year, err := c.lookupYear(yearArg)
	if err != nil {
		return err
	}

	host, err := bench.DescribeHost()
	if err != nil {
		logger.Debug("host detection incomplete", "err", err)
	}

	var ticks io.Writer = io.Discard
	switch opts.progress {
	case ProgressTicks:
		ticks = stdout
	case ProgressLog:
		observability.SetBenchHooks(logHooks{})
		observability.SetReportHooks(logHooks{})
		defer observability.Reset()
	}

	prog := newProgress(logger)
	res, err := bench.BenchmarkYear(ctx, year, opts.repetitions,
		bench.WithInputDir(opts.inputDir),
		bench.WithProgress(ticks),
		bench.WithHost(host))
	if opts.progress == ProgressTicks {
		fmt.Fprintln(stdout)
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Benchmarked %d", res.Year))

	fmt.Fprintln(stdout, summaryTable(res))
	printKeyValue("Run", res.RunID.String())
	printKeyValue("Host", host)

	svg := bench.RenderSVG(res, bench.WithTitle(fmt.Sprintf("Advent of Code %d", res.Year)))
	path, err := bench.WriteSVG(ctx, opts.outputDir, res.Year, svg)
	if err != nil {
		return err
	}
	printSuccess("Wrote report")
	printFile(path)

	if failed := res.Failed(); len(failed) > 0 {
		printWarning("%d of %d days failed", len(failed), len(res.Days))
	}
	return nil
}
