package y2024

import (
	"slices"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/numscan"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"
)

// twoLists splits the "left   right" rows into two columns.
func twoLists(lines []string) (left, right []uint64, err error) {
	for _, line := range lines {
		if line == "" {
			continue
		}
		v, err := numscan.IntsN[uint64](line, 2, false)
		if err != nil {
			return nil, nil, err
		}
		left = append(left, v[0])
		right = append(right, v[1])
	}
	return left, right, nil
}

// Day01 solves "Historian Hysteria": the total distance between the sorted
// lists, then the similarity score of the left list against the right one.
func Day01(lines []string) (puzzle.Solution, puzzle.Solution, error) {
	left, right, err := twoLists(lines)
	if err != nil {
		return puzzle.Solution{}, puzzle.Solution{}, err
	}

	occurrences := make(map[uint64]uint64, len(right))
	for _, v := range right {
		occurrences[v]++
	}
	var similarity uint64
	for _, v := range left {
		similarity += v * occurrences[v]
	}

	slices.Sort(left)
	slices.Sort(right)
	var distance uint64
	for i := range left {
		distance += max(left[i], right[i]) - min(left[i], right[i])
	}

	return puzzle.Unsigned(distance), puzzle.Unsigned(similarity), nil
}
