package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"
)

// Progress modes for "aoc bench".
const (
	ProgressTicks = "ticks"
	ProgressLog   = "log"
	ProgressNone  = "none"
)

// Config holds the settings that can be stored in aoc.toml.
type Config struct {
	InputDir    string `toml:"input_dir"`
	OutputDir   string `toml:"output_dir"`
	Repetitions int    `toml:"repetitions"`
	Progress    string `toml:"progress"`
}

// DefaultConfig returns the settings used when no file overrides them.
func DefaultConfig() Config {
	return Config{
		InputDir:    puzzle.DefaultInputDir,
		OutputDir:   "out",
		Repetitions: 100,
		Progress:    ProgressTicks,
	}
}

// Validate checks the values that have a restricted domain.
func (c Config) Validate() error {
	if err := errors.ValidateRepetitions(c.Repetitions); err != nil {
		return err
	}
	return validateProgress(c.Progress)
}

func validateProgress(mode string) error {
	switch mode {
	case ProgressTicks, ProgressLog, ProgressNone:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput, "progress must be %s, %s or %s, got %q",
		ProgressTicks, ProgressLog, ProgressNone, mode)
}

// LoadConfig reads the configuration file and layers it over the defaults.
// An explicit path must exist; otherwise ./aoc.toml and the user config file
// are tried in turn and a missing file is not an error. It returns the path
// of the file that was read, or "" when none was.
func LoadConfig(explicit string) (Config, string, error) {
	cfg := DefaultConfig()

	candidates := []string{explicit}
	if explicit == "" {
		candidates = configCandidates()
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			if explicit != "" {
				return cfg, "", errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
			}
			continue
		}
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, "", fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, path, nil
	}
	return cfg, "", nil
}

// configCandidates lists ./aoc.toml then the XDG location
// ($XDG_CONFIG_HOME/aoc/config.toml, falling back to ~/.config/aoc/config.toml).
func configCandidates() []string {
	paths := []string{appName + ".toml"}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return append(paths, filepath.Join(dir, appName, "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}
	return paths
}

// configCommand creates the config command, which prints the effective configuration.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(stdout).Encode(c.cfg)
		},
	}
}
