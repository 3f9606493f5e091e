package buildinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestReadKeepsLdflags(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "v1.2.3", "abc123", "2024-12-25T00:00:00Z"
	got := Read()
	if got.Version != "v1.2.3" || got.Commit != "abc123" || got.Date != "2024-12-25T00:00:00Z" {
		t.Errorf("Read() = %+v, want the ldflags values", got)
	}
	if got.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", got.GoVersion, runtime.Version())
	}
}

func TestStringAndTemplate(t *testing.T) {
	oldV := Version
	t.Cleanup(func() { Version = oldV })
	Version = "v0.9.0"

	if s := String(); !strings.HasPrefix(s, "version: v0.9.0\n") || !strings.Contains(s, "\ngo: ") {
		t.Errorf("String() = %q", s)
	}
	if tmpl := Template(); !strings.HasPrefix(tmpl, "{{.Name}} version v0.9.0\n") {
		t.Errorf("Template() = %q", tmpl)
	}
}
