package errors

import (
	"slices"
	"strconv"
	"strings"
)

// Days span a single Advent calendar.
const (
	FirstDay = 1
	LastDay  = 25
)

// ValidateDay checks that day designates a calendar day in [FirstDay, LastDay].
func ValidateDay(day uint32) error {
	if day < FirstDay || day > LastDay {
		return New(ErrCodeInvalidDay, "day %d is outside %d..%d", day, FirstDay, LastDay)
	}
	return nil
}

// ValidateRepetitions checks that a benchmark repetition count is usable.
func ValidateRepetitions(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidInput, "repetition count must be at least 1, got %d", n)
	}
	return nil
}

// ValidateDayRange parses a day selection and returns the selected days in
// ascending order without duplicates.
//
// Accepted forms are a single day ("3"), an inclusive range ("1-25") and
// comma-separated combinations of both ("1,4,7-9"). An empty expression
// selects every day of the calendar.
func ValidateDayRange(expr string) ([]uint32, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		days := make([]uint32, 0, LastDay)
		for d := uint32(FirstDay); d <= LastDay; d++ {
			days = append(days, d)
		}
		return days, nil
	}

	var days []uint32
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")

		first, err := parseDay(lo)
		if err != nil {
			return nil, err
		}
		last := first
		if isRange {
			if last, err = parseDay(hi); err != nil {
				return nil, err
			}
			if last < first {
				return nil, New(ErrCodeInvalidDay, "day range %q is reversed", part)
			}
		}
		for d := first; d <= last; d++ {
			days = append(days, d)
		}
	}

	slices.Sort(days)
	return slices.Compact(days), nil
}

func parseDay(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidDay, err, "invalid day %q", s)
	}
	day := uint32(v)
	if err := ValidateDay(day); err != nil {
		return 0, err
	}
	return day, nil
}
