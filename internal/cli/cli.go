package cli

import (
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/buildinfo"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "aoc"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	years      *puzzle.Registry
	cfg        Config
	configPath string
}

// New creates a new CLI instance serving the given years.
func New(w io.Writer, level log.Level, years *puzzle.Registry) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		years:  years,
		cfg:    DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The returned command loads the configuration file and attaches the logger
// to the command context before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "aoc solves and benchmarks Advent of Code puzzles",
		Long:         `aoc runs the registered Advent of Code solvers against their puzzle inputs, benchmarks them and renders the timings as an SVG histogram.`,
		Version:      buildinfo.Read().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cfg, path, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			if path != "" {
				c.Logger.Debug("loaded config", "path", path)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./aoc.toml, then $XDG_CONFIG_HOME/aoc/config.toml)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.topoCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Argument Helpers
// =============================================================================

// lookupYear resolves a YEAR argument against the registry.
func (c *CLI) lookupYear(arg string) (puzzle.Year, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid year %q", arg)
	}
	return c.years.Lookup(uint32(id))
}

// selectDays returns the days named by expr, or every registered day of y
// when expr is empty.
func selectDays(y puzzle.Year, expr string) ([]uint32, error) {
	if expr == "" {
		return puzzle.Days(y), nil
	}
	return errors.ValidateDayRange(expr)
}

// inputDir returns the flag value when set, the configured directory otherwise.
func (c *CLI) inputDir(flag string) string {
	if flag != "" {
		return flag
	}
	return c.cfg.InputDir
}

// stdout is where command results are printed.
var stdout io.Writer = os.Stdout
