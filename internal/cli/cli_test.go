package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/puzzle"
)

// testRegistry serves year 2024 with three days: day 1 counts lines,
// day 2 always fails and day 3 has no input file.
func testRegistry(t *testing.T) (*puzzle.Registry, string) {
	t.Helper()
	dir := t.TempDir()
	for day, content := range map[uint32]string{1: "a\nb\nc\n", 2: "x\n"} {
		path := puzzle.InputPath(dir, 2024, day)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	count := func(lines []string) (puzzle.Solution, puzzle.Solution, error) {
		return puzzle.Unsigned(uint64(len(lines))), puzzle.Text(lines[0]), nil
	}
	year := puzzle.NewTable(2024).
		Register(1, count).
		Register(2, func([]string) (puzzle.Solution, puzzle.Solution, error) {
			return puzzle.Solution{}, puzzle.Solution{}, stderrors.New("unsolvable")
		}).
		Register(3, count)
	return puzzle.NewRegistry(year), dir
}

// execute runs the command line and returns what it printed to stdout.
func execute(t *testing.T, reg *puzzle.Registry, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	old := stdout
	stdout = &out
	t.Cleanup(func() { stdout = old })

	var logs bytes.Buffer
	root := New(&logs, LogInfo, reg).RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	reg, dir := testRegistry(t)

	out, err := execute(t, reg, "solve", "2024", "--input", dir)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	for _, want := range []string{"Day 01", "3", "a", "Day 02", "unsolvable", "Day 03"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestSolveCommandDaySelection(t *testing.T) {
	reg, dir := testRegistry(t)

	out, err := execute(t, reg, "solve", "2024", "1,9", "-i", dir)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !strings.Contains(out, "Day 01") || strings.Contains(out, "Day 02") {
		t.Errorf("output %q, want day 01 only", out)
	}
	if !strings.Contains(out, "Day 09 has no solver") {
		t.Errorf("output %q missing warning for day 09", out)
	}
}

func TestSolveCommandErrors(t *testing.T) {
	reg, _ := testRegistry(t)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown year", []string{"solve", "2015"}, errors.ErrCodeNotFound},
		{"bad year", []string{"solve", "twenty"}, errors.ErrCodeInvalidInput},
		{"bad days", []string{"solve", "2024", "0-3"}, errors.ErrCodeInvalidDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, reg, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestBenchCommand(t *testing.T) {
	reg, dir := testRegistry(t)
	outDir := filepath.Join(t.TempDir(), "reports")

	out, err := execute(t, reg, "bench", "2024", "-n", "12", "-i", dir, "-o", outDir)
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	if !strings.HasPrefix(out, "#.........#.\n") {
		t.Errorf("output %q does not start with the progress ticks", out)
	}
	for _, want := range []string{"Mean", "01", "unsolvable", "perfo-2024.svg", "2 of 3 days failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}

	svg, err := os.ReadFile(filepath.Join(outDir, "perfo-2024.svg"))
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !bytes.Contains(svg, []byte("<title>Advent of Code 2024</title>")) {
		t.Error("report is missing its title")
	}
}

func TestBenchCommandQuiet(t *testing.T) {
	reg, dir := testRegistry(t)

	out, err := execute(t, reg, "bench", "2024", "-n", "2", "-i", dir, "-o", t.TempDir(), "--progress", "none")
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	if strings.Contains(out, "#") {
		t.Errorf("output %q contains progress ticks with --progress none", out)
	}
}

func TestBenchCommandRejectsProgressMode(t *testing.T) {
	reg, dir := testRegistry(t)

	_, err := execute(t, reg, "bench", "2024", "-i", dir, "--progress", "bar")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func writeDeps(t *testing.T, content string) string {
	t.Helper()
	return writeDepsFile(t, "deps.txt", content)
}

func writeDepsFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTopoCommand(t *testing.T) {
	path := writeDeps(t, "# build graph\nlink: compile, fetch\ncompile: fetch\nfetch:\n")

	out, err := execute(t, nil, "topo", path)
	if err != nil {
		t.Fatalf("topo: %v", err)
	}
	if want := "fetch\ncompile\nlink\n"; out != want {
		t.Errorf("topo output = %q, want %q", out, want)
	}
}

func TestTopoCommandDOT(t *testing.T) {
	path := writeDeps(t, "b: a\na:\n")

	out, err := execute(t, nil, "topo", path, "--dot")
	if err != nil {
		t.Fatalf("topo --dot: %v", err)
	}
	if !strings.HasPrefix(out, "digraph") || !strings.Contains(out, `"a" -> "b"`) {
		t.Errorf("topo --dot output = %q", out)
	}
}

func TestTopoCommandJSON(t *testing.T) {
	path := writeDepsFile(t, "deps.json", `{
		"nodes": [{"id": "link"}, {"id": "compile"}, {"id": "fetch"}],
		"edges": [{"from": "fetch", "to": "compile"}, {"from": "compile", "to": "link"}]
	}`)

	out, err := execute(t, nil, "topo", path)
	if err != nil {
		t.Fatalf("topo: %v", err)
	}
	if want := "fetch\ncompile\nlink\n"; out != want {
		t.Errorf("topo output = %q, want %q", out, want)
	}

	out, err = execute(t, nil, "topo", writeDeps(t, "b: a\na:\n"), "--json")
	if err != nil {
		t.Fatalf("topo --json: %v", err)
	}
	if !strings.Contains(out, `"from": "a"`) || !strings.Contains(out, `"to": "b"`) {
		t.Errorf("topo --json output = %q", out)
	}
}

func TestTopoCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
		code    errors.Code
	}{
		{"cycle", "a: b\nb: a\n", nil, errors.ErrCodeCycle},
		{"unknown dependency", "a: ghost\n", nil, errors.ErrCodeNotFound},
		{"malformed line", "no colon here\n", nil, errors.ErrCodeInvalidInput},
		{"exclusive flags", "a:\n", []string{"--dot", "--svg"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"topo", writeDeps(t, tt.content)}, tt.args...)
			_, err := execute(t, nil, args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestTopoCommandMissingFile(t *testing.T) {
	_, err := execute(t, nil, "topo", filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("err = %v, want IO_ERROR", err)
	}
}
