package numscan_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/numscan"
)

func TestInts(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		signed bool
		want   []int
	}{
		{"empty", "", true, nil},
		{"no digits", "abc - def", true, nil},
		{"spaced", "3   4", false, []int{3, 4}},
		{"signed", "x=2, y=-18: x=-2, y=15", true, []int{2, -18, -2, 15}},
		{"unsigned ignores minus", "x=2, y=-18", false, []int{2, 18}},
		{"range dash", "2-4,6-8", false, []int{2, 4, 6, 8}},
		{"range dash signed", "2-4", true, []int{2, -4}},
		{"leading and trailing", "12abc345", false, []int{12, 345}},
		{"double minus", "--7", true, []int{-7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(numscan.Ints[int](tt.row, tt.signed)))
		})
	}
}

func TestInts_Typed(t *testing.T) {
	got := slices.Collect(numscan.Ints[uint64]("move 18446744073709551615 from 2", false))
	assert.Equal(t, []uint64{18446744073709551615, 2}, got)

	for v := range numscan.Ints[int8]("1 2 3", false) {
		assert.Equal(t, int8(1), v)
		break
	}
}

func TestIntsN(t *testing.T) {
	got, err := numscan.IntsN[int]("move 3 from 1 to 7", 3, false)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 7}, got)

	for _, row := range []string{"move 3 from 1", "move 3 from 1 to 7 or 9"} {
		_, err := numscan.IntsN[int](row, 3, false)
		require.Error(t, err, row)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	}
}

func ExampleInts() {
	for v := range numscan.Ints[int]("Sensor at x=2, y=-18: closest beacon is at x=-2, y=15", true) {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 2 -18 -2 15
}
