package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var flagListAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sections (and subtopics of expanded sections)",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&flagListAll, "all", "a", false, "List the subtopics of every section, not only expanded ones")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, cat, err := loadCatalog()
	if err != nil {
		return err
	}
	if len(cat.Sections()) == 0 {
		printMiss("", "No sections loaded. Check data_paths in docnav.yaml or run 'docnav doctor'.")
		return nil
	}
	st := stateStore(cfg).Get()
	return renderSectionTable(os.Stdout, cat.Sections(), st, flagListAll)
}
