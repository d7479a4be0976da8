package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamusis/docnav/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the docnav home directory, config and .env template",
	Long: `Initialize docnav at ~/.docnav/ (or $DOCNAV_HOME).

Writes docnav.yaml with default settings, a .env template and the default
docs/ data directory. Existing files are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	// ── 1. Resolve ~/.docnav directory ─────────────────────────────────────────
	dir, err := config.DocnavDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	// ── 2. Create ~/.docnav/ if it doesn't exist ──────────────────────────────
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK("", fmt.Sprintf("docnav directory ready: %s", dir))

	// ── 3. Write docnav.yaml if missing ───────────────────────────────────────
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("Config written: %s", cfgPath))
	} else {
		printSkip("", fmt.Sprintf("Config already exists: %s", cfgPath))
	}

	// ── 4. Write .env template if missing ─────────────────────────────────────
	envPath, err := config.DotEnvPath()
	if err != nil {
		return err
	}
	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}
	printOK("", fmt.Sprintf("Dotenv file ready: %s", envPath))

	// ── 5. Create data directories ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	for _, p := range cfg.DataPaths {
		if isRegularFile(p) {
			continue
		}
		if err := os.MkdirAll(p, 0o755); err != nil {
			return fmt.Errorf("cannot create data dir %s: %w", p, err)
		}
		printOK("", fmt.Sprintf("Data directory ready: %s", p))
	}

	fmt.Println("\n✓  docnav init complete. Add documents to the data directory, then run 'docnav doctor'.")
	return nil
}

// isRegularFile reports whether p names an existing regular file.
func isRegularFile(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && !fi.IsDir()
}
