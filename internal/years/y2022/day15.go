package y2022

import (
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/geom"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/interval"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/numscan"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"
)

type sensor struct {
	pos, beacon geom.Coo
	radius      int
}

func parseSensors(lines []string) ([]sensor, error) {
	var sensors []sensor
	for _, line := range lines {
		if line == "" {
			continue
		}
		v, err := numscan.IntsN[int](line, 4, true)
		if err != nil {
			return nil, err
		}
		s := sensor{pos: geom.Coo{X: v[0], Y: v[1]}, beacon: geom.Coo{X: v[2], Y: v[3]}}
		s.radius = s.pos.ManhattanDistance(s.beacon)
		sensors = append(sensors, s)
	}
	return sensors, nil
}

// coverage returns the positions of row y that lie within reach of a sensor.
func coverage(sensors []sensor, y int) *interval.Set {
	set := interval.NewSet()
	for _, s := range sensors {
		half := s.radius - abs(s.pos.Y-y)
		if half < 0 {
			continue
		}
		set.Add(interval.Interval{Lo: s.pos.X - half, Hi: s.pos.X + half})
	}
	return set
}

// Day15 returns a "Beacon Exclusion Zone" solver. Part one counts the
// positions of row where no beacon can be; part two finds the only position
// with both coordinates in [0, limit] that no sensor covers, and returns its
// tuning frequency x*4000000 + y.
func Day15(row, limit int) puzzle.Solver {
	return func(lines []string) (puzzle.Solution, puzzle.Solution, error) {
		sensors, err := parseSensors(lines)
		if err != nil {
			return puzzle.Solution{}, puzzle.Solution{}, err
		}

		covered := coverage(sensors, row)
		beacons := make(map[int]struct{})
		for _, s := range sensors {
			if s.beacon.Y == row && covered.Contains(s.beacon.X) {
				beacons[s.beacon.X] = struct{}{}
			}
		}
		a := covered.Length() - uint64(len(beacons))

		bound := interval.Interval{Lo: 0, Hi: limit}
		for y := range limit + 1 {
			for gap := range coverage(sensors, y).Gaps(bound) {
				freq := uint64(gap.Lo)*4_000_000 + uint64(y)
				return puzzle.Unsigned(a), puzzle.Unsigned(freq), nil
			}
		}
		return puzzle.Solution{}, puzzle.Solution{}, errors.New(errors.ErrCodeNotFound, "every position up to %d is covered", limit)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
