package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamusis/docnav/internal/catalog"
	"github.com/kamusis/docnav/internal/config"
	"github.com/kamusis/docnav/internal/session"
)

// stateLockTimeout bounds how long a command waits for another docnav
// process to release the state file.
const stateLockTimeout = 2 * time.Second

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Show or change the persisted browsing position",
	Args:  cobra.NoArgs,
	RunE:  runSessionShow,
}

var sessionToggleCmd = &cobra.Command{
	Use:   "toggle <sectionId|subtopicId>",
	Short: "Expand or collapse a section or subtopic",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionToggle,
}

var sessionNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Move to the next subtopic",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, _ []string) error { return runSessionStep(cmd, 1) },
}

var sessionPrevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Move to the previous subtopic",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, _ []string) error { return runSessionStep(cmd, -1) },
}

var sessionResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the initial session state",
	Args:  cobra.NoArgs,
	RunE:  runSessionReset,
}

func init() {
	sessionCmd.AddCommand(sessionToggleCmd, sessionNextCmd, sessionPrevCmd, sessionResetCmd)
	rootCmd.AddCommand(sessionCmd)
}

// updateState applies u to the persisted session state.
func updateState(cmd *cobra.Command, cfg *config.Config, u session.Update[session.State]) (session.State, error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), stateLockTimeout)
	defer cancel()
	return stateStore(cfg).Set(ctx, u)
}

// positionLabel renders the active section and subtopic as "section / subtopic".
func positionLabel(st session.State) string {
	if st.ActiveSection == "" {
		return "(none)"
	}
	if st.ActiveSubtopic == "" {
		return st.ActiveSection
	}
	return st.ActiveSection + " / " + st.ActiveSubtopic
}

func runSessionShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	store := stateStore(cfg)
	st := store.Get()

	printSection("Session")
	printInfo("", fmt.Sprintf("State file: %s", store.Path()))
	printInfo("", fmt.Sprintf("Active:     %s", positionLabel(st)))
	printInfo("", fmt.Sprintf("Expanded:   %s", joinOrNone(st.ExpandedSections)))
	printInfo("", fmt.Sprintf("Subtopics:  %s", joinOrNone(st.ExpandedSubtopics)))
	return nil
}

func runSessionToggle(cmd *cobra.Command, args []string) error {
	cfg, cat, err := loadCatalog()
	if err != nil {
		return err
	}
	id := args[0]

	var u session.Update[session.State]
	switch {
	case hasSection(cat, id):
		u = session.Updater(func(s session.State) session.State { return s.ToggleSection(id) })
	case hasSubtopic(cat, id):
		u = session.Updater(func(s session.State) session.State { return s.ToggleSubtopic(id) })
	default:
		return fmt.Errorf("%w: %s", catalog.ErrSectionNotFound, id)
	}

	st, err := updateState(cmd, cfg, u)
	if err != nil {
		return err
	}
	expanded := st.IsSectionExpanded(id) || st.IsSubtopicExpanded(id)
	if expanded {
		printInfo(id, "expanded")
	} else {
		printInfo(id, "collapsed")
	}
	return nil
}

func runSessionStep(cmd *cobra.Command, delta int) error {
	cfg, cat, err := loadCatalog()
	if err != nil {
		return err
	}
	sections := cat.Sections()
	st, err := updateState(cmd, cfg, session.Updater(func(s session.State) session.State {
		return s.Step(sections, delta)
	}))
	if err != nil {
		return err
	}
	printInfo("", fmt.Sprintf("Active: %s", positionLabel(st)))
	return nil
}

func runSessionReset(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), stateLockTimeout)
	defer cancel()
	if err := stateStore(cfg).Reset(ctx); err != nil {
		return err
	}
	printOK("", "Session reset.")
	return nil
}

func hasSection(cat *catalog.Catalog, id string) bool {
	_, ok := cat.Section(id)
	return ok
}

func hasSubtopic(cat *catalog.Catalog, id string) bool {
	for _, ref := range cat.Subtopics() {
		if ref.ID == id {
			return true
		}
	}
	return false
}

func joinOrNone(ids []string) string {
	if len(ids) == 0 {
		return "(none)"
	}
	return strings.Join(ids, ", ")
}
