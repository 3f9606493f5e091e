package cli

import (
	"github.com/spf13/cobra"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/bench"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"
)

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var inputDir string

	cmd := &cobra.Command{
		Use:   "solve YEAR [DAYS]",
		Short: "Solve the puzzles of a year and print their answers",
		Long: `Solve runs the registered solvers of YEAR once each and prints both answers
with the time taken. DAYS selects a subset: "3", "1-10" or "1,4,7-9".

Inputs are read from <input-dir>/<YEAR>/<DD>.txt. A day that fails is
reported and the remaining days still run.`,
		Example: `  aoc solve 2024
  aoc solve 2022 12,15 --input ~/aoc/input`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var days string
			if len(args) == 2 {
				days = args[1]
			}
			return c.runSolve(cmd, args[0], days, c.inputDir(inputDir))
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "puzzle input directory (default from config)")
	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, yearArg, daysArg, inputDir string) error {
	logger := loggerFromContext(cmd.Context())

	year, err := c.lookupYear(yearArg)
	if err != nil {
		return err
	}
	days, err := selectDays(year, daysArg)
	if err != nil {
		return err
	}
	logger.Debug("solving", "year", year.ID(), "days", len(days), "input", inputDir)

	for _, day := range days {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		solve, ok := year.SolverFor(day)
		if !ok {
			printWarning("Day %s has no solver", puzzle.DayName(day))
			continue
		}
		spin := newSpinner(cmd.Context(), spinnerOutput(), "Solving day "+puzzle.DayName(day))
		spin.Start()
		ans, err := bench.SolveDay(inputDir, year.ID(), day, solve)
		spin.Stop()
		if err != nil {
			printError("Day %s  %s", puzzle.DayName(day), errors.UserMessage(err))
			continue
		}
		printAnswer(day, ans)
	}
	return nil
}
