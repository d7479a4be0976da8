package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamusis/docnav/internal/search"
	"github.com/kamusis/docnav/internal/session"
)

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

var (
	flagSearchLimit  int
	flagSearchJSON   bool
	flagSearchSelect int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search sections, subtopics and content",
	Long: `Search every loaded section for the query (case-insensitive substring).

Results are ranked: exact title matches first, then prefix matches, then by
kind (section, subtopic, item, text, code), then shorter text first.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&flagSearchLimit, "limit", 0, "Maximum number of results to show (default from config search_limit)")
	searchCmd.Flags().BoolVar(&flagSearchJSON, "json", false, "Print results as JSON")
	searchCmd.Flags().IntVar(&flagSearchSelect, "select", 0, "Select result N (1-based) as the active position in the session")
	rootCmd.AddCommand(searchCmd)
}

type searchHit struct {
	search.Result
	Segments []search.Segment `json:"segments"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	query := strings.Join(args, " ")

	cfg, cat, err := loadCatalog()
	if err != nil {
		return err
	}

	limit := cfg.SearchLimit
	if cmd.Flags().Changed("limit") {
		limit = flagSearchLimit
	}

	all := search.Search(cat.Sections(), query)
	results := search.Limit(all, limit)

	if flagSearchSelect != 0 {
		if flagSearchSelect < 1 || flagSearchSelect > len(results) {
			return fmt.Errorf("--select %d out of range (1-%d)", flagSearchSelect, len(results))
		}
		r := results[flagSearchSelect-1]
		sections := cat.Sections()
		st, err := updateState(cmd, cfg, session.Updater(func(s session.State) session.State {
			return s.SelectResult(sections, r)
		}))
		if err != nil {
			return err
		}
		if !flagSearchJSON {
			printInfo("", fmt.Sprintf("Active: %s", positionLabel(st)))
		}
	}

	if flagSearchJSON {
		return writeSearchJSON(os.Stdout, query, len(all), results)
	}

	if len(results) == 0 {
		printMiss("", fmt.Sprintf("No results for %q", query))
		return nil
	}

	open, close := highlightMarkers(os.Stdout)
	width := terminalWidth(os.Stdout)
	printSection(fmt.Sprintf("Search: %q (%d of %d)", query, len(results), len(all)))
	renderResults(os.Stdout, results, query, open, close, width)
	return nil
}

func writeSearchJSON(w io.Writer, query string, total int, results []search.Result) error {
	hits := make([]searchHit, 0, len(results))
	for _, r := range results {
		hits = append(hits, searchHit{Result: r, Segments: search.Highlight(r.DisplayText, query)})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"query":   query,
		"total":   total,
		"results": hits,
	})
}

// renderResults writes one numbered line per result followed by its
// breadcrumb. When width > 0 the display text is shortened to fit.
func renderResults(w io.Writer, results []search.Result, query, open, close string, width int) {
	for i, r := range results {
		prefix := fmt.Sprintf("  %2d. %-8s ", i+1, r.Kind)
		text := r.DisplayText
		if width > 0 {
			if room := width - len(prefix); room > 0 {
				text = search.Truncate(text, room)
			}
		}
		fmt.Fprintf(w, "%s%s\n", prefix, search.Render(search.Highlight(text, query), open, close))
		fmt.Fprintf(w, "      %s\n", strings.Join(r.Path, " › "))
	}
}
