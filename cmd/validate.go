package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamusis/docnav/internal/catalog"
	"github.com/kamusis/docnav/internal/config"
	"github.com/kamusis/docnav/internal/docs"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Validate document files against the docnav schema",
	Long: `Validate YAML and JSON document files against the embedded JSON Schema.

Without arguments every file under the configured data_paths is checked.
Markdown files are skipped; they are parsed rather than validated.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	files := args
	if len(files) == 0 {
		cfg, err := config.LoadOrDefault()
		if err != nil {
			return fmt.Errorf("cannot load config: %w", err)
		}
		files, err = catalog.CollectFiles(cfg.DataPaths, slog.Default())
		if err != nil {
			return err
		}
	}
	if len(files) == 0 {
		printMiss("", "No document files found.")
		return nil
	}

	printSection("Validate")
	failed := 0
	for _, f := range files {
		ok, err := validateFile(f)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", failed, len(files))
	}
	fmt.Println("\n✓  All files valid.")
	return nil
}

// validateFile prints the result for one file and reports whether it passed.
func validateFile(path string) (bool, error) {
	if catalog.IsMarkdown(path) {
		printSkip(path, "markdown")
		return true, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("cannot read %s: %w", path, err)
	}
	issues, err := docs.Validate(data)
	if err != nil {
		printErr(path, err.Error())
		return false, nil
	}
	if len(issues) == 0 {
		printOK(path, "valid")
		return true, nil
	}
	for _, is := range issues {
		printErr(path, is.String())
	}
	return false, nil
}
