// Package cli implements the aoc command-line interface.
//
// This package provides commands for solving Advent of Code puzzles,
// benchmarking the solvers of a year and sorting dependency files. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - solve: Run the solvers of a year once and print their answers
//   - bench: Time every solver of a year and write an SVG histogram
//   - topo: Topologically sort a dependency file
//   - config: Print the effective configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo, years.Registry())
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/observability"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Benchmarked 2024 (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Log-based progress
// =============================================================================

// logHooks turns benchmark and report events into structured log lines. It
// backs "aoc bench --progress log", where one line per repetition is easier
// for scripts to consume than tick marks.
type logHooks struct{}

var (
	_ observability.BenchHooks  = logHooks{}
	_ observability.ReportHooks = logHooks{}
)

func (logHooks) OnRunStart(ctx context.Context, year uint32, runID string, repetitions, days int) {
	loggerFromContext(ctx).Info("benchmark started", "year", year, "run", runID, "repetitions", repetitions, "days", days)
}

func (logHooks) OnRepetition(ctx context.Context, year uint32, rep, total int) {
	loggerFromContext(ctx).Info("repetition", "year", year, "rep", rep+1, "of", total)
}

func (logHooks) OnDaySolved(ctx context.Context, year, day uint32, elapsed time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Warn("day failed", "year", year, "day", puzzle.DayName(day), "err", err)
		return
	}
	l.Debug("day solved", "year", year, "day", puzzle.DayName(day), "elapsed", elapsed)
}

func (logHooks) OnRunComplete(ctx context.Context, year uint32, elapsed time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Error("benchmark aborted", "year", year, "elapsed", elapsed.Round(time.Millisecond), "err", err)
		return
	}
	l.Info("benchmark complete", "year", year, "elapsed", elapsed.Round(time.Millisecond))
}

func (logHooks) OnReportWritten(ctx context.Context, year uint32, path string, size int) {
	loggerFromContext(ctx).Info("report written", "year", year, "path", path, "bytes", size)
}
