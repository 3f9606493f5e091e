package dag

import (
	"strings"
	"unicode"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
)

// ParseDeps reads dependency lines of the form
//
//	id: dep dep ...
//
// where dependencies are separated by spaces or commas and may be absent.
// Blank lines and lines starting with '#' are skipped. A line without a colon,
// an empty id or an id declared twice fails with INVALID_INPUT.
func ParseDeps(lines []string) (map[string]Deps[string], error) {
	items := make(map[string]Deps[string])
	for n, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		id, rest, ok := strings.Cut(line, ":")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "line %d: expected \"id: deps\", got %q", n+1, line)
		}
		if _, dup := items[id]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "line %d: %q declared twice", n+1, id)
		}

		var deps Deps[string]
		for _, dep := range strings.FieldsFunc(rest, isSeparator) {
			deps = append(deps, dep)
		}
		items[id] = deps
	}
	return items, nil
}

func isSeparator(r rune) bool { return r == ',' || unicode.IsSpace(r) }
