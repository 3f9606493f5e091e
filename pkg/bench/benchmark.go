package bench

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/observability"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"
)

// DayResult summarises the samples of one day.
type DayResult struct {
	Day     uint32
	Mean    time.Duration // trimmed mean, zero when Err is set
	Samples int           // successful runs before the first failure
	Err     error         // first failure; the day was skipped afterwards
}

// OK reports whether every run of the day succeeded.
func (d DayResult) OK() bool { return d.Err == nil }

// Result is the outcome of a [BenchmarkYear] run.
type Result struct {
	Year        uint32
	RunID       uuid.UUID
	Host        string
	Repetitions int
	Days        []DayResult // ascending day order, registered days only
}

// Failed returns the days that reported an error.
func (r *Result) Failed() []DayResult {
	var out []DayResult
	for _, d := range r.Days {
		if !d.OK() {
			out = append(out, d)
		}
	}
	return out
}

// Option configures [BenchmarkYear].
type Option func(*runner)

// WithInputDir sets the input root; the default is [puzzle.DefaultInputDir].
func WithInputDir(dir string) Option { return func(r *runner) { r.inputDir = dir } }

// WithProgress sets the writer receiving one tick per repetition. Writers
// with a Flush method are flushed after every tick.
func WithProgress(w io.Writer) Option { return func(r *runner) { r.progress = w } }

// WithHost records a description of the machine in the result.
func WithHost(desc string) Option { return func(r *runner) { r.host = desc } }

type runner struct {
	inputDir string
	progress io.Writer
	host     string
}

type flusher interface{ Flush() error }

// daySamples accumulates the runs of one day.
type daySamples struct {
	day     uint32
	solve   puzzle.Solver
	samples []time.Duration
	err     error
}

// BenchmarkYear runs every registered day of year reps times and summarises
// the timings with [TrimmedMean]. Solvers run sequentially, days in
// ascending order within each repetition.
//
// Day failures are recorded in the result and never abort the run. The
// context is checked between solver invocations only: a cancelled run
// returns the context error and no result.
func BenchmarkYear(ctx context.Context, year puzzle.Year, reps int, opts ...Option) (*Result, error) {
	if err := errors.ValidateRepetitions(reps); err != nil {
		return nil, err
	}
	r := runner{inputDir: puzzle.DefaultInputDir, progress: io.Discard}
	for _, opt := range opts {
		opt(&r)
	}

	res := &Result{
		Year:        year.ID(),
		RunID:       uuid.New(),
		Host:        r.host,
		Repetitions: reps,
	}

	var days []*daySamples
	for _, d := range puzzle.Days(year) {
		solve, _ := year.SolverFor(d)
		days = append(days, &daySamples{day: d, solve: solve, samples: make([]time.Duration, 0, reps)})
	}

	hooks := observability.Bench()
	hooks.OnRunStart(ctx, res.Year, res.RunID.String(), reps, len(days))
	start := time.Now()

	for rep := range reps {
		r.tick(rep)
		hooks.OnRepetition(ctx, res.Year, rep, reps)

		for _, ds := range days {
			if ds.err != nil {
				continue
			}
			if err := ctx.Err(); err != nil {
				hooks.OnRunComplete(ctx, res.Year, time.Since(start), err)
				return nil, err
			}

			ans, err := SolveDay(r.inputDir, res.Year, ds.day, ds.solve)
			hooks.OnDaySolved(ctx, res.Year, ds.day, ans.Duration, err)
			if err != nil {
				ds.err = err
				continue
			}
			ds.samples = append(ds.samples, ans.Duration)
		}
	}

	for _, ds := range days {
		dr := DayResult{Day: ds.day, Samples: len(ds.samples), Err: ds.err}
		if ds.err == nil {
			dr.Mean = TrimmedMean(ds.samples)
		}
		res.Days = append(res.Days, dr)
	}
	hooks.OnRunComplete(ctx, res.Year, time.Since(start), nil)
	return res, nil
}

func (r *runner) tick(rep int) {
	mark := "."
	if rep%10 == 0 {
		mark = "#"
	}
	_, _ = io.WriteString(r.progress, mark)
	if f, ok := r.progress.(flusher); ok {
		_ = f.Flush()
	}
}
