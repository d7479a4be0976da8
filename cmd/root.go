package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamusis/docnav/internal/catalog"
	"github.com/kamusis/docnav/internal/config"
	"github.com/kamusis/docnav/internal/session"
)

var flagLogLevel string

var rootCmd = &cobra.Command{
	Use:          "docnav",
	Short:        "docnav — browse and search structured documentation",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `docnav loads documentation sections from YAML, JSON and Markdown files,
normalizes legacy flat documents into sections and subtopics, and lets you
list, read and search them from the terminal or over a small JSON API.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from DOCNAV_LOG_LEVEL or warn)")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// logLevel is the level resolved by setupLogging. logLevelSet reports
// whether it came from --log-level or DOCNAV_LOG_LEVEL rather than the
// default.
var (
	logLevel    = slog.LevelWarn
	logLevelSet bool
)

// setupLogging installs a text slog handler on stderr as the default logger.
func setupLogging() error {
	level, set, err := resolveLogLevel()
	if err != nil {
		return err
	}
	logLevel, logLevelSet = level, set
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// resolveLogLevel reads --log-level, falling back to DOCNAV_LOG_LEVEL.
func resolveLogLevel() (slog.Level, bool, error) {
	lvl := flagLogLevel
	if lvl == "" {
		v, err := config.GetConfigValue("DOCNAV_LOG_LEVEL")
		if err != nil {
			return 0, false, err
		}
		lvl = v
	}
	level, err := parseLevel(lvl)
	if err != nil {
		return 0, false, err
	}
	return level, strings.TrimSpace(lvl) != "", nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// loadCatalog loads the configuration and every configured document.
func loadCatalog() (*config.Config, *catalog.Catalog, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load config: %w\nRun 'docnav init' first.", err)
	}
	cat, err := catalog.Load(cfg.DataPaths, cfg.NormalizeOptions(), slog.Default())
	if err != nil {
		return nil, nil, err
	}
	return cfg, cat, nil
}

// stateStore returns the persisted session state store for cfg.
func stateStore(cfg *config.Config) *session.Store[session.State] {
	return session.NewStore(cfg.StatePath, session.Initial(cfg.DefaultSection), slog.Default())
}
