package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/kamusis/docnav/internal/docs"
	"github.com/kamusis/docnav/internal/search"
	"github.com/kamusis/docnav/internal/session"
)

// marker highlights terms in rendered prose. The zero value leaves text
// unchanged.
type marker struct {
	terms       []string
	open, close string
}

func (m marker) apply(s string) string {
	if len(m.terms) == 0 {
		return s
	}
	return search.Mark(s, m.terms, m.open, m.close)
}

// highlightMarkers returns ANSI bold markers when f is a terminal and
// brackets otherwise.
func highlightMarkers(f *os.File) (open, close string) {
	if terminalWidth(f) > 0 {
		return ansiBold, ansiReset
	}
	return "[", "]"
}

// renderSectionTable writes one row per section. Expanded sections are
// followed by their subtopics; the active position is marked with "▸".
func renderSectionTable(w io.Writer, sections []docs.Section, st session.State, all bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  \tICON\tID\tTITLE\tSUBTOPICS\tITEMS")
	for _, sec := range sections {
		mark := " "
		if sec.ID == st.ActiveSection {
			mark = "▸"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\n",
			mark, sec.Icon, sec.ID, sec.Title, len(sec.Subtopics), sec.ItemCount())

		if !all && !st.IsSectionExpanded(sec.ID) {
			continue
		}
		for _, sub := range sec.Subtopics {
			subMark := " "
			if sec.ID == st.ActiveSection && sub.ID == st.ActiveSubtopic {
				subMark = "▸"
			}
			fmt.Fprintf(tw, "\t\t  %s %s\t%s %s\t\t%d\n",
				subMark, sub.ID, sub.Icon, sub.Title, len(sub.Items))
		}
	}
	return tw.Flush()
}

// renderSectionHeader writes the section title, description and subtopic
// index with the active subtopic marked.
func renderSectionHeader(w io.Writer, sec docs.Section, activeSubtopic string) {
	fmt.Fprintf(w, "%s\n", strings.TrimSpace(sec.Icon+" "+sec.Title))
	if sec.Description != "" {
		fmt.Fprintf(w, "%s\n", sec.Description)
	}
	if len(sec.Subtopics) == 0 {
		fmt.Fprintln(w, "\n  (no subtopics)")
		return
	}
	fmt.Fprintln(w)
	for _, sub := range sec.Subtopics {
		mark := " "
		if sub.ID == activeSubtopic {
			mark = "▸"
		}
		fmt.Fprintf(w, "  %s %s %s  (%s)\n", mark, sub.Icon, sub.Title, sub.ID)
	}
}

// renderSubtopic writes every item of sub: subtitle, text, bullets, a fenced
// code block tagged with its language, and the image reference. m marks
// terms in everything except code.
func renderSubtopic(w io.Writer, sub docs.Subtopic, m marker) {
	fmt.Fprintf(w, "\n## %s\n", strings.TrimSpace(sub.Icon+" "+sub.Title))
	for _, item := range sub.Items {
		if item.Subtitle != "" {
			fmt.Fprintf(w, "\n### %s\n", m.apply(item.Subtitle))
		}
		if item.Text != "" {
			fmt.Fprintf(w, "\n%s\n", m.apply(item.Text))
		}
		if item.HasBullets() {
			fmt.Fprintln(w)
			for _, b := range item.Bullets {
				fmt.Fprintf(w, "  • %s\n", m.apply(b))
			}
		}
		if item.HasCode() {
			fmt.Fprintf(w, "\n```%s\n%s\n```\n", item.CodeLanguage(), strings.TrimRight(item.Code, "\n"))
		}
		if item.HasImage() {
			caption := item.ImageCaption
			if caption == "" {
				caption = "image"
			}
			fmt.Fprintf(w, "\n[%s](%s)\n", m.apply(caption), item.Image)
		}
	}
}
