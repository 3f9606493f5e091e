package puzzle_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"
)

func constant(a, b puzzle.Solution) puzzle.Solver {
	return func([]string) (puzzle.Solution, puzzle.Solution, error) { return a, b, nil }
}

func TestSolution(t *testing.T) {
	n := puzzle.Unsigned(42)
	v, ok := n.Uint()
	assert.True(t, ok)
	assert.Equal(t, uint64(42), v)
	assert.False(t, n.IsText())
	assert.Equal(t, "42", n.String())

	s := puzzle.Text("6,1")
	_, ok = s.Uint()
	assert.False(t, ok)
	assert.True(t, s.IsText())
	assert.Equal(t, "6,1", s.String())

	assert.NotEqual(t, puzzle.Unsigned(0), puzzle.Text(""))
}

func TestTable(t *testing.T) {
	tbl := puzzle.NewTable(2024).
		Register(1, constant(puzzle.Unsigned(1), puzzle.Unsigned(2))).
		Register(25, constant(puzzle.Text("x"), puzzle.Text("y")))

	assert.Equal(t, uint32(2024), tbl.ID())
	assert.Equal(t, []uint32{1, 25}, puzzle.Days(tbl))

	s, ok := tbl.SolverFor(25)
	require.True(t, ok)
	a, b, err := s(nil)
	require.NoError(t, err)
	assert.Equal(t, "x y", a.String()+" "+b.String())

	for _, day := range []uint32{0, 2, 26} {
		_, ok := tbl.SolverFor(day)
		assert.False(t, ok, "day %d", day)
	}

	assert.Panics(t, func() { tbl.Register(26, constant(puzzle.Unsigned(0), puzzle.Unsigned(0))) })
}

func TestRegistry(t *testing.T) {
	r := puzzle.NewRegistry(puzzle.NewTable(2024), puzzle.NewTable(2022))
	assert.Equal(t, []uint32{2022, 2024}, r.IDs())

	y, err := r.Lookup(2022)
	require.NoError(t, err)
	assert.Equal(t, uint32(2022), y.ID())

	_, err = r.Lookup(2015)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))
	assert.Contains(t, err.Error(), "2022 2024")
}

func TestInputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("input", "2024", "03.txt"), puzzle.InputPath("input", 2024, 3))
	assert.Equal(t, filepath.Join("in", "2022", "17.txt"), puzzle.InputPath("in", 2022, 17))
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "2024"), 0o755))
	require.NoError(t, os.WriteFile(puzzle.InputPath(dir, 2024, 1), []byte("3   4\r\n4   3\r\n\r\nend"), 0o644))

	lines, err := puzzle.ReadInput(dir, 2024, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"3   4", "4   3", "", "end"}, lines)

	_, err = puzzle.ReadInput(dir, 2024, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeIO))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\n\nb\n", []string{"a", "", "b"}},
		{"a\r\nb", []string{"a", "b"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, puzzle.SplitLines(tt.in), "SplitLines(%q)", tt.in)
	}
}
