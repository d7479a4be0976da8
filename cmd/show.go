package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamusis/docnav/internal/docs"
	"github.com/kamusis/docnav/internal/session"
)

var (
	flagShowAll       bool
	flagShowHighlight []string
)

var showCmd = &cobra.Command{
	Use:   "show <sectionId> [subtopicId]",
	Short: "Show a section and the content of its active subtopic",
	Long: `Show a section by its id.

Without a subtopic id the active subtopic is shown: the one already active
when it belongs to this section, otherwise the section's first subtopic.
The selection is saved to the session state. --highlight marks terms in
the rendered text, bullets and captions.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&flagShowAll, "all", "a", false, "Show the content of every subtopic")
	showCmd.Flags().StringArrayVar(&flagShowHighlight, "highlight", nil, "Highlight this term in the content (repeatable)")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, cat, err := loadCatalog()
	if err != nil {
		return err
	}
	sec, err := cat.MustSection(args[0])
	if err != nil {
		return err
	}

	var u session.Update[session.State]
	if len(args) == 2 {
		subID := args[1]
		if _, ok := sec.Subtopic(subID); !ok {
			return fmt.Errorf("subtopic %q not found in section %q", subID, sec.ID)
		}
		u = session.Updater(func(s session.State) session.State { return s.SelectSubtopic(sec.ID, subID) })
	} else {
		sections := cat.Sections()
		u = session.Updater(func(s session.State) session.State { return s.SelectSection(sections, sec.ID) })
	}

	st, err := updateState(cmd, cfg, u)
	if err != nil {
		// Rendering does not depend on persistence; fall back to the
		// in-memory selection.
		printWarn("session", err.Error())
		st = u.Apply(stateStore(cfg).Get())
	}

	m := marker{terms: flagShowHighlight}
	m.open, m.close = highlightMarkers(os.Stdout)

	renderSectionHeader(os.Stdout, sec, st.ActiveSubtopic)
	for _, sub := range subtopicsToShow(sec, st.ActiveSubtopic, flagShowAll) {
		renderSubtopic(os.Stdout, sub, m)
	}
	return nil
}

func subtopicsToShow(sec docs.Section, active string, all bool) []docs.Subtopic {
	if all {
		return sec.Subtopics
	}
	if sub, ok := sec.Subtopic(active); ok {
		return []docs.Subtopic{sub}
	}
	return nil
}
