package puzzle

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
)

// DefaultInputDir is the input root used when none is configured.
const DefaultInputDir = "input"

// InputPath returns <dir>/<year>/<DD>.txt.
func InputPath(dir string, year, day uint32) string {
	return filepath.Join(dir, strconv.FormatUint(uint64(year), 10), DayName(day)+".txt")
}

// ReadInput loads a day's input and splits it into lines. Line endings may be
// "\n" or "\r\n" and the final newline is optional. A missing or unreadable
// file fails with IO_ERROR.
func ReadInput(dir string, year, day uint32) ([]string, error) {
	path := InputPath(dir, year, day)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read input %s", path)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text into lines, dropping a trailing "\r" from each and
// the empty line after a final newline.
func SplitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
