package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamusis/docnav/internal/catalog"
	"github.com/kamusis/docnav/internal/config"
	"github.com/kamusis/docnav/internal/docs"
	"github.com/kamusis/docnav/internal/normalize"
)

var (
	flagNormOutput            string
	flagNormItemsPerSubtopic  int
	flagNormPreserveStructure bool
	flagNormNoIcons           bool
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <legacy-file>",
	Short: "Convert a legacy or Markdown document into hierarchical YAML",
	Long: `Convert a flat legacy document into sections and subtopics.

The input is a Markdown file or a YAML/JSON file with a "legacy" list.
Sections already in hierarchical form are copied through unchanged.
Defaults come from docnav.yaml; flags override them.`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVarP(&flagNormOutput, "output", "o", "", "Write the result to this file instead of stdout")
	normalizeCmd.Flags().IntVar(&flagNormItemsPerSubtopic, "items-per-subtopic", normalize.DefaultItemsPerSubtopic, "Items per subtopic when chunking")
	normalizeCmd.Flags().BoolVar(&flagNormPreserveStructure, "preserve-structure", false, "Group items by category instead of chunking")
	normalizeCmd.Flags().BoolVar(&flagNormNoIcons, "no-icons", false, "Do not assign section and subtopic icons")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	opts := cfg.NormalizeOptions()
	if cmd.Flags().Changed("items-per-subtopic") {
		opts.ItemsPerSubtopic = flagNormItemsPerSubtopic
	}
	if cmd.Flags().Changed("preserve-structure") {
		opts.PreserveStructure = flagNormPreserveStructure
	}
	if flagNormNoIcons {
		opts.GenerateIcons = false
	}

	out, err := normalizeFile(args[0], opts)
	if err != nil {
		return err
	}

	if flagNormOutput == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(flagNormOutput, out, 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", flagNormOutput, err)
	}
	printOK("", fmt.Sprintf("Wrote %s", flagNormOutput))
	return nil
}

// normalizeFile loads path with opts and encodes the resulting sections as a
// hierarchical YAML document.
func normalizeFile(path string, opts normalize.Options) ([]byte, error) {
	if !catalog.IsDocument(path) {
		return nil, fmt.Errorf("unsupported document type: %s", path)
	}
	sections, err := catalog.LoadFile(path, opts)
	if err != nil {
		return nil, err
	}
	return docs.Encode(&docs.File{Sections: sections})
}
