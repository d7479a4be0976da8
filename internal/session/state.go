// Package session holds the browsing state of the shell: which section and
// subtopic are active and which ones are expanded. The search engine never
// reads it; commands pass it through explicitly and persist it with Store.
package session

import (
	"slices"

	"github.com/kamusis/docnav/internal/docs"
	"github.com/kamusis/docnav/internal/search"
)

// State is the persisted browsing state. Methods never modify the receiver;
// they return an updated copy.
type State struct {
	ActiveSection     string   `json:"active_section"`
	ActiveSubtopic    string   `json:"active_subtopic,omitempty"`
	ExpandedSections  []string `json:"expanded_sections,omitempty"`
	ExpandedSubtopics []string `json:"expanded_subtopics,omitempty"`
}

// Initial returns the state of a first run: defaultSection active and
// expanded.
func Initial(defaultSection string) State {
	s := State{ActiveSection: defaultSection}
	if defaultSection != "" {
		s.ExpandedSections = []string{defaultSection}
	}
	return s
}

func (s State) clone() State {
	s.ExpandedSections = slices.Clone(s.ExpandedSections)
	s.ExpandedSubtopics = slices.Clone(s.ExpandedSubtopics)
	return s
}

// IsSectionExpanded reports whether the section id is expanded.
func (s State) IsSectionExpanded(id string) bool {
	return slices.Contains(s.ExpandedSections, id)
}

// IsSubtopicExpanded reports whether the subtopic id is expanded.
func (s State) IsSubtopicExpanded(id string) bool {
	return slices.Contains(s.ExpandedSubtopics, id)
}

// SelectResult activates the section of r and expands it. The subtopic of
// r becomes active when r has one; otherwise the active subtopic is chosen
// as in SelectSection.
func (s State) SelectResult(sections []docs.Section, r search.Result) State {
	if r.SubtopicID == "" {
		return s.SelectSection(sections, r.SectionID)
	}
	return s.SelectSubtopic(r.SectionID, r.SubtopicID)
}

// SelectSection activates section id and expands it. When the active
// subtopic does not belong to that section the section's first subtopic is
// selected instead (none when it has no subtopics).
func (s State) SelectSection(sections []docs.Section, id string) State {
	out := s.clone()
	out.ActiveSection = id
	if !out.IsSectionExpanded(id) {
		out.ExpandedSections = append(out.ExpandedSections, id)
	}
	out.ActiveSubtopic = autoSubtopic(sections, id, out.ActiveSubtopic)
	return out
}

func autoSubtopic(sections []docs.Section, sectionID, current string) string {
	for _, sec := range sections {
		if sec.ID != sectionID {
			continue
		}
		if _, ok := sec.Subtopic(current); ok {
			return current
		}
		if len(sec.Subtopics) > 0 {
			return sec.Subtopics[0].ID
		}
		return ""
	}
	return current
}

// SelectSubtopic activates a subtopic within its section.
func (s State) SelectSubtopic(sectionID, subtopicID string) State {
	out := s.clone()
	out.ActiveSection = sectionID
	out.ActiveSubtopic = subtopicID
	if !out.IsSectionExpanded(sectionID) {
		out.ExpandedSections = append(out.ExpandedSections, sectionID)
	}
	return out
}

// ToggleSection expands a collapsed section or collapses an expanded one.
func (s State) ToggleSection(id string) State {
	out := s.clone()
	out.ExpandedSections = toggle(out.ExpandedSections, id)
	return out
}

// ToggleSubtopic expands a collapsed subtopic or collapses an expanded one.
func (s State) ToggleSubtopic(id string) State {
	out := s.clone()
	out.ExpandedSubtopics = toggle(out.ExpandedSubtopics, id)
	return out
}

func toggle(set []string, id string) []string {
	if i := slices.Index(set, id); i >= 0 {
		return slices.Delete(set, i, i+1)
	}
	return append(set, id)
}

type position struct {
	section  string
	subtopic string
}

// Step moves the active subtopic delta positions through the reading order
// of all sections, wrapping at both ends. A section without subtopics is a
// single stop of its own. From an unknown position a forward step lands on
// the first stop and a backward step on the last.
func (s State) Step(sections []docs.Section, delta int) State {
	var order []position
	for _, sec := range sections {
		if len(sec.Subtopics) == 0 {
			order = append(order, position{section: sec.ID})
			continue
		}
		for _, st := range sec.Subtopics {
			order = append(order, position{section: sec.ID, subtopic: st.ID})
		}
	}
	if len(order) == 0 || delta == 0 {
		return s.clone()
	}

	cur := slices.Index(order, position{section: s.ActiveSection, subtopic: s.ActiveSubtopic})
	var next int
	switch {
	case cur < 0 && delta > 0:
		next = 0
	case cur < 0:
		next = len(order) - 1
	default:
		n := len(order)
		next = ((cur+delta)%n + n) % n
	}

	p := order[next]
	return s.SelectSubtopic(p.section, p.subtopic)
}
