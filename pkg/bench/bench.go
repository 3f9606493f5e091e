// Package bench runs puzzle solvers against their inputs, times them and
// renders the timings as an SVG histogram.
//
// # Running
//
// [SolveDay] runs one solver once. [BenchmarkYear] runs every registered day
// of a year N times, with the repetitions as the outer loop so that each day
// is sampled once before any day is sampled again:
//
//	res, err := bench.BenchmarkYear(ctx, year, 100,
//	    bench.WithInputDir("input"),
//	    bench.WithProgress(os.Stdout))
//
// Each repetition prints a tick to the progress writer: '#' every tenth
// repetition and '.' otherwise. A day that fails once keeps its first error
// and is skipped for the rest of the run; other days carry on.
//
// # Reporting
//
// Per-day timings are summarised with [TrimmedMean], which drops the
// slowest and fastest tenth of the samples. [RenderSVG] draws the summary on
// a log scale running from 10µs at the baseline to 1s at the top, and
// [WriteSVG] stores it as <dir>/perfo-<year>.svg.
package bench

import (
	"fmt"
	"slices"
	"time"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"
)

// Answer is the outcome of one solver run.
type Answer struct {
	A, B     puzzle.Solution
	Duration time.Duration
}

// SolveDay reads the day's input from inputDir and runs solve on it. Only the
// solver call is timed; reading the file is not. Input failures are IO_ERROR
// errors, solver failures are returned wrapped with the day.
func SolveDay(inputDir string, year, day uint32, solve puzzle.Solver) (Answer, error) {
	lines, err := puzzle.ReadInput(inputDir, year, day)
	if err != nil {
		return Answer{}, err
	}

	start := time.Now()
	a, b, err := solve(lines)
	elapsed := time.Since(start)
	if err != nil {
		return Answer{}, fmt.Errorf("solve %d day %s: %w", year, puzzle.DayName(day), err)
	}
	return Answer{A: a, B: b, Duration: elapsed}, nil
}

// TrimmedMean returns the mean of samples after discarding the ⌊K/10⌋
// smallest and ⌊K/10⌋ largest of the K samples. The division truncates.
// It returns 0 for an empty slice and does not modify samples.
func TrimmedMean(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	trim := len(samples) / 10
	kept := slices.Sorted(slices.Values(samples))[trim : len(samples)-trim]

	var sum time.Duration
	for _, d := range kept {
		sum += d
	}
	return sum / time.Duration(len(kept))
}
