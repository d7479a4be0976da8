package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelWarn,
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := parseLevel(in)
		if err != nil {
			t.Errorf("parseLevel(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := parseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestResolveLogLevel(t *testing.T) {
	t.Setenv("DOCNAV_HOME", t.TempDir())
	t.Cleanup(func() { flagLogLevel = "" })

	t.Setenv("DOCNAV_LOG_LEVEL", "")
	flagLogLevel = ""
	level, set, err := resolveLogLevel()
	if err != nil || set || level != slog.LevelWarn {
		t.Fatalf("default: got %v %v %v", level, set, err)
	}

	t.Setenv("DOCNAV_LOG_LEVEL", "debug")
	level, set, err = resolveLogLevel()
	if err != nil || !set || level != slog.LevelDebug {
		t.Fatalf("env: got %v %v %v", level, set, err)
	}

	flagLogLevel = "error"
	level, set, err = resolveLogLevel()
	if err != nil || !set || level != slog.LevelError {
		t.Fatalf("flag: got %v %v %v", level, set, err)
	}
}

func TestServerLogLevel(t *testing.T) {
	t.Cleanup(func() { logLevel, logLevelSet = slog.LevelWarn, false })

	logLevel, logLevelSet = slog.LevelWarn, false
	if got := serverLogLevel(); got != slog.LevelInfo {
		t.Errorf("unset level: got %v, want info", got)
	}
	logLevel, logLevelSet = slog.LevelError, true
	if got := serverLogLevel(); got != slog.LevelError {
		t.Errorf("explicit level: got %v, want error", got)
	}
}

func TestReadState(t *testing.T) {
	dir := t.TempDir()

	if _, err := readState(filepath.Join(dir, "missing.json")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	good := filepath.Join(dir, "state.json")
	if err := os.WriteFile(good, []byte(`{"active_section":"rest","expanded_sections":["rest"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	st, err := readState(good)
	if err != nil {
		t.Fatalf("readState: %v", err)
	}
	if st.ActiveSection != "rest" || !st.IsSectionExpanded("rest") {
		t.Errorf("unexpected state: %+v", st)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readState(bad); err == nil {
		t.Error("expected error for corrupt state")
	}
}

func TestSchemaProblem(t *testing.T) {
	valid := writeTemp(t, "ok.yaml", "sections:\n  - id: a\n    title: A\n    subtopics: []\n")
	if msg := schemaProblem(valid); msg != "" {
		t.Errorf("expected valid file, got %q", msg)
	}

	invalid := writeTemp(t, "bad.yaml", "sections:\n  - title: A\n    subtopics: []\n")
	msg := schemaProblem(invalid)
	if msg == "" {
		t.Fatal("expected a schema problem for a section without id")
	}
	if !strings.Contains(msg, "$.sections.0") {
		t.Errorf("expected the failing location in %q", msg)
	}
}
