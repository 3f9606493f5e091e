// Package observability provides hooks for progress reporting, metrics and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about benchmark runs and report generation.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The benchmark harness emits events; the CLI decides what to do with them
// (structured log lines, in the case of `aoc bench --progress log`).
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBenchHooks(&myBenchHooks{})
//	    observability.SetReportHooks(&myReportHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Bench().OnRepetition(ctx, year, rep, total)
//	// ... solve every day once ...
//	observability.Bench().OnDaySolved(ctx, year, day, elapsed, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Bench Hooks
// =============================================================================

// BenchHooks receives events from benchmark runs.
type BenchHooks interface {
	// OnRunStart records the start of a run over the given days.
	OnRunStart(ctx context.Context, year uint32, runID string, repetitions, days int)

	// OnRepetition records the start of repetition rep (0-based) out of total.
	OnRepetition(ctx context.Context, year uint32, rep, total int)

	// OnDaySolved records one solver invocation. err is non-nil when the day
	// failed; the day is skipped for the rest of the run.
	OnDaySolved(ctx context.Context, year, day uint32, elapsed time.Duration, err error)

	// OnRunComplete records the end of a run, cut short or not.
	OnRunComplete(ctx context.Context, year uint32, elapsed time.Duration, err error)
}

// =============================================================================
// Report Hooks
// =============================================================================

// ReportHooks receives events from report generation.
type ReportHooks interface {
	// OnReportWritten records a report file written to disk.
	OnReportWritten(ctx context.Context, year uint32, path string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopBenchHooks is a no-op implementation of BenchHooks.
type NoopBenchHooks struct{}

func (NoopBenchHooks) OnRunStart(context.Context, uint32, string, int, int)              {}
func (NoopBenchHooks) OnRepetition(context.Context, uint32, int, int)                    {}
func (NoopBenchHooks) OnDaySolved(context.Context, uint32, uint32, time.Duration, error) {}
func (NoopBenchHooks) OnRunComplete(context.Context, uint32, time.Duration, error)       {}

// NoopReportHooks is a no-op implementation of ReportHooks.
type NoopReportHooks struct{}

func (NoopReportHooks) OnReportWritten(context.Context, uint32, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	benchHooks  BenchHooks  = NoopBenchHooks{}
	reportHooks ReportHooks = NoopReportHooks{}
	hooksMu     sync.RWMutex
)

// SetBenchHooks registers custom benchmark hooks.
// This should be called once at application startup before any benchmark runs.
func SetBenchHooks(h BenchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		benchHooks = h
	}
}

// SetReportHooks registers custom report hooks.
func SetReportHooks(h ReportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		reportHooks = h
	}
}

// Bench returns the registered benchmark hooks.
func Bench() BenchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return benchHooks
}

// Report returns the registered report hooks.
func Report() ReportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return reportHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	benchHooks = NoopBenchHooks{}
	reportHooks = NoopReportHooks{}
}
