// Package normalize converts flat legacy sections into the hierarchical
// Section → Subtopic → ContentItem tree.
package normalize

import (
	"fmt"
	"strings"

	"github.com/kamusis/docnav/internal/docs"
)

// DefaultItemsPerSubtopic is the chunk size used when Options does not set
// a positive one.
const DefaultItemsPerSubtopic = 3

// Options controls how legacy sections are grouped into subtopics.
type Options struct {
	// ItemsPerSubtopic is the chunk size for automatic chunking.
	ItemsPerSubtopic int
	// GenerateIcons assigns section and subtopic icons.
	GenerateIcons bool
	// PreserveStructure groups items by category instead of chunking.
	PreserveStructure bool
}

// DefaultOptions returns chunking by three with icons enabled.
func DefaultOptions() Options {
	return Options{
		ItemsPerSubtopic: DefaultItemsPerSubtopic,
		GenerateIcons:    true,
	}
}

// Normalize converts legacy sections into hierarchical sections. Input is
// assumed well-formed and is never validated; a section with no content
// yields a section with no subtopics.
func Normalize(legacy []docs.LegacySection, opts Options) []docs.Section {
	if opts.ItemsPerSubtopic <= 0 {
		opts.ItemsPerSubtopic = DefaultItemsPerSubtopic
	}
	out := make([]docs.Section, 0, len(legacy))
	for _, ls := range legacy {
		out = append(out, normalizeSection(ls, opts))
	}
	return out
}

func normalizeSection(ls docs.LegacySection, opts Options) docs.Section {
	var subtopics []docs.Subtopic
	if opts.PreserveStructure {
		subtopics = groupByCategory(ls, opts)
	} else {
		subtopics = chunk(ls, opts)
	}

	sec := docs.Section{
		ID:          ls.ID,
		Title:       ls.Title,
		Description: Describe(ls.Content),
		Subtopics:   subtopics,
	}
	if opts.GenerateIcons {
		sec.Icon = SectionIcon(ls.ID)
	}
	return sec
}

func groupByCategory(ls docs.LegacySection, opts Options) []docs.Subtopic {
	var order []string
	groups := make(map[string][]docs.ContentItem)
	for _, it := range ls.Content {
		cat := Category(it.Subtitle)
		if _, ok := groups[cat]; !ok {
			order = append(order, cat)
		}
		groups[cat] = append(groups[cat], it)
	}

	out := make([]docs.Subtopic, 0, len(order))
	for _, cat := range order {
		st := docs.Subtopic{
			ID:    ls.ID + "-" + Slug(cat),
			Title: cat,
			Items: groups[cat],
		}
		if opts.GenerateIcons {
			st.Icon = SubtopicIcon(cat)
		}
		out = append(out, st)
	}
	return out
}

func chunk(ls docs.LegacySection, opts Options) []docs.Subtopic {
	size := opts.ItemsPerSubtopic
	out := make([]docs.Subtopic, 0, (len(ls.Content)+size-1)/size)
	for start := 0; start < len(ls.Content); start += size {
		end := min(start+size, len(ls.Content))
		k := start/size + 1

		title := chunkTitle(ls.Content[start].Subtitle, k)
		st := docs.Subtopic{
			ID:    fmt.Sprintf("%s-subtopic-%d", ls.ID, k),
			Title: title,
			Items: ls.Content[start:end:end],
		}
		if opts.GenerateIcons {
			st.Icon = SubtopicIcon(title)
		}
		out = append(out, st)
	}
	return out
}

func chunkTitle(firstSubtitle string, k int) string {
	if !strings.Contains(firstSubtitle, "-") {
		return fmt.Sprintf("Subtopic %d", k)
	}
	head := beforeHyphen(firstSubtitle)
	if head == "" {
		head = "Subtopic"
	}
	return fmt.Sprintf("%s %d", head, k)
}

// Describe summarises a section's items, e.g. "5 elements with code, lists".
// Content kinds are listed in the order they are first seen.
func Describe(items []docs.ContentItem) string {
	var kinds []string
	seen := map[string]bool{}
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	for _, it := range items {
		if it.HasCode() {
			add("code")
		}
		if it.HasImage() {
			add("images")
		}
		if it.HasBullets() {
			add("lists")
		}
	}

	desc := fmt.Sprintf("%d elements", len(items))
	if len(kinds) > 0 {
		desc += " with " + strings.Join(kinds, ", ")
	}
	return desc
}
