// Package search matches a query against the documentation tree and ranks
// the matches.
package search

import (
	"strings"

	"github.com/kamusis/docnav/internal/docs"
)

// DisplayTextLimit is the length display text excerpts are truncated to.
const DisplayTextLimit = 100

// Search returns every case-insensitive substring match of query in
// sections, ranked by SortResults. A blank query returns an empty slice
// without scanning anything. Each matching field yields its own result, so
// one item may contribute several.
func Search(sections []docs.Section, query string) []Result {
	if strings.TrimSpace(query) == "" {
		return []Result{}
	}
	q := strings.ToLower(query)
	contains := func(s string) bool {
		return s != "" && strings.Contains(strings.ToLower(s), q)
	}

	var out []Result
	for _, sec := range sections {
		if contains(sec.Title) {
			out = append(out, Result{
				SectionID:   sec.ID,
				DisplayText: sec.Title,
				Kind:        KindSection,
				Path:        []string{sec.Title},
			})
		}
		if contains(sec.Description) {
			out = append(out, Result{
				SectionID:   sec.ID,
				DisplayText: sec.Title + " - " + sec.Description,
				Kind:        KindSection,
				Path:        []string{sec.Title},
			})
		}

		for _, st := range sec.Subtopics {
			if contains(st.Title) {
				out = append(out, Result{
					SectionID:   sec.ID,
					DisplayText: st.Title,
					Kind:        KindSubtopic,
					SubtopicID:  st.ID,
					Path:        []string{sec.Title, st.Title},
				})
			}

			for _, it := range st.Items {
				hit := func(kind Kind, display string) {
					out = append(out, Result{
						SectionID:   sec.ID,
						DisplayText: display,
						Kind:        kind,
						SubtopicID:  st.ID,
						Path:        []string{sec.Title, st.Title, it.Subtitle},
					})
				}
				if contains(it.Subtitle) {
					hit(KindItem, it.Subtitle)
				}
				if contains(it.Text) {
					hit(KindText, it.Subtitle+" - "+Truncate(it.Text, DisplayTextLimit))
				}
				if contains(it.Code) {
					hit(KindCode, "Code in "+it.Subtitle)
				}
				for _, b := range it.Bullets {
					if contains(b) {
						hit(KindItem, it.Subtitle+" - "+Truncate(b, DisplayTextLimit))
					}
				}
			}
		}
	}

	if out == nil {
		return []Result{}
	}
	SortResults(out, query)
	return out
}

// Limit returns at most n results; n <= 0 means no limit.
func Limit(results []Result, n int) []Result {
	if n > 0 && len(results) > n {
		return results[:n]
	}
	return results
}
