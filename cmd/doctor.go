package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/kamusis/docnav/internal/catalog"
	"github.com/kamusis/docnav/internal/config"
	"github.com/kamusis/docnav/internal/docs"
	"github.com/kamusis/docnav/internal/session"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run environment and data checks",
	Long: `Check that docnav's configuration, data files and session state are usable.
Run this command when something seems wrong, or before filing a bug report.`,
	RunE: runDoctor,
}

var doctorFixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Automatically fix detected issues",
	Long: `Fix detected issues in the docnav environment.

Currently fixes:
  - Corrupt session state: rewrites the state file with the initial state
  - Missing data directories: creates them

Run 'docnav doctor' first to see what will be fixed.`,
	RunE: runDoctorFix,
}

func init() {
	doctorCmd.AddCommand(doctorFixCmd)
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("docnav doctor")
	fmt.Println()

	// ── Check 1: home directory and config ────────────────────────────────────
	fmt.Println("[ docnav.yaml ]")
	cfgPath, err := config.ConfigPath()
	if err != nil {
		failD("cannot determine home directory: %v", err)
	} else if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		printWarn("", fmt.Sprintf("%s not found, using defaults (run 'docnav init')", cfgPath))
	} else {
		printOK("", fmt.Sprintf("found: %s", cfgPath))
	}
	cfg, loadErr := config.LoadOrDefault()
	if loadErr != nil {
		failD("cannot load config: %v", loadErr)
		fmt.Println()
		return doctorSummary(allOK)
	}
	printOK("", fmt.Sprintf("%d data path(s), default section %q, search limit %d",
		len(cfg.DataPaths), cfg.DefaultSection, cfg.SearchLimit))
	fmt.Println()

	// ── Check 2: data paths exist ─────────────────────────────────────────────
	fmt.Println("[ Data paths ]")
	if len(cfg.DataPaths) == 0 {
		failD("data_paths is empty")
	}
	for _, p := range cfg.DataPaths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			printMiss("", fmt.Sprintf("%s (missing)", p))
		} else if err != nil {
			failD("%s: %v", p, err)
		} else {
			printOK("", p)
		}
	}
	fmt.Println()

	// ── Check 3: document files parse and validate ────────────────────────────
	fmt.Println("[ Documents ]")
	files, err := catalog.CollectFiles(cfg.DataPaths, slog.Default())
	if err != nil {
		failD("cannot list documents: %v", err)
	}
	if len(files) == 0 {
		printWarn("", "no document files found")
	}
	opts := cfg.NormalizeOptions()
	var sections []docs.Section
	for _, f := range files {
		if !catalog.IsMarkdown(f) {
			if msg := schemaProblem(f); msg != "" {
				failD("%s: %s", f, msg)
				continue
			}
		}
		secs, err := catalog.LoadFile(f, opts)
		if err != nil {
			failD("%v", err)
			continue
		}
		printOK(f, fmt.Sprintf("%d section(s)", len(secs)))
		sections = append(sections, secs...)
	}
	seen := make(map[string]bool, len(sections))
	for _, s := range sections {
		if seen[s.ID] {
			printWarn(s.ID, "duplicate section id, only the first is used")
		}
		seen[s.ID] = true
	}
	fmt.Println()

	// ── Check 4: default section resolves ─────────────────────────────────────
	fmt.Println("[ Default section ]")
	if seen[cfg.DefaultSection] {
		printOK("", cfg.DefaultSection)
	} else {
		printWarn("", fmt.Sprintf("%q is not a loaded section", cfg.DefaultSection))
	}
	fmt.Println()

	// ── Check 5: session state ────────────────────────────────────────────────
	fmt.Println("[ Session state ]")
	store := stateStore(cfg)
	switch _, err := readState(store.Path()); {
	case os.IsNotExist(err):
		printSkip("", fmt.Sprintf("%s not created yet", store.Path()))
	case err != nil:
		failD("%s: %v (run 'docnav doctor fix')", store.Path(), err)
	default:
		printOK("", store.Path())
	}
	lock := flock.New(store.LockPath())
	if locked, err := lock.TryLock(); err != nil {
		printWarn("", fmt.Sprintf("cannot check lock %s: %v", store.LockPath(), err))
	} else if !locked {
		printWarn("", fmt.Sprintf("state is locked by another docnav process: %s", store.LockPath()))
	} else {
		_ = lock.Unlock()
		printOK("", "state lock is free")
	}
	fmt.Println()

	return doctorSummary(allOK)
}

func doctorSummary(allOK bool) error {
	if allOK {
		fmt.Println("✓  All checks passed.")
		return nil
	}
	return fmt.Errorf("one or more checks failed")
}

func runDoctorFix(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return fmt.Errorf("cannot load config: %w\nRun 'docnav init' first.", err)
	}

	printSection("docnav doctor fix")

	fmt.Println("\n[ Data paths ]")
	for _, p := range cfg.DataPaths {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			continue
		}
		if !catalog.IsDocument(p) {
			if err := os.MkdirAll(p, 0o755); err != nil {
				printErr("", fmt.Sprintf("cannot create %s: %v", p, err))
				continue
			}
			printOK("", fmt.Sprintf("created %s", p))
		}
	}

	fmt.Println("\n[ Session state ]")
	store := stateStore(cfg)
	if _, err := readState(store.Path()); err == nil || os.IsNotExist(err) {
		printOK("", "state file healthy — nothing to fix")
		return nil
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), stateLockTimeout)
	defer cancel()
	if err := store.Reset(ctx); err != nil {
		return err
	}
	printOK("", fmt.Sprintf("rewrote %s with the initial state", store.Path()))
	return nil
}

// schemaProblem returns a one-line description of why path fails schema
// validation, or "" when it passes.
func schemaProblem(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return err.Error()
	}
	issues, err := docs.Validate(data)
	if err != nil {
		return err.Error()
	}
	switch len(issues) {
	case 0:
		return ""
	case 1:
		return issues[0].String()
	}
	return fmt.Sprintf("%s (and %d more; run 'docnav validate %s')", issues[0], len(issues)-1, path)
}

// readState decodes the state file strictly, without the fallback Store.Get
// applies.
func readState(path string) (session.State, error) {
	var st session.State
	data, err := os.ReadFile(path)
	if err != nil {
		return st, err
	}
	err = json.Unmarshal(data, &st)
	return st, err
}
