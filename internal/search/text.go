package search

import (
	"regexp"
	"sort"
	"strings"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// Truncate shortens text to at most maxLength runes, ellipsis included,
// cutting at the last space that leaves room for the ellipsis. Text that
// already fits is returned unchanged, which makes Truncate idempotent.
func Truncate(text string, maxLength int) string {
	r := []rune(text)
	if len(r) <= maxLength {
		return text
	}
	if maxLength <= len(Ellipsis) {
		return string(r[:max(maxLength, 0)])
	}

	limit := maxLength - len(Ellipsis)
	cut := limit
	for i := limit; i > 0; i-- {
		if r[i] == ' ' {
			cut = i
			break
		}
	}
	return string(r[:cut]) + Ellipsis
}

// Highlight splits text into matching and non-matching segments for query,
// compared case-insensitively. Original casing is kept and empty segments
// are dropped. A blank query yields text as a single non-matching segment.
func Highlight(text, query string) []Segment {
	if strings.TrimSpace(query) == "" {
		return []Segment{{Text: text}}
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))

	var out []Segment
	last := 0
	for _, m := range re.FindAllStringIndex(text, -1) {
		if m[0] > last {
			out = append(out, Segment{Text: text[last:m[0]]})
		}
		out = append(out, Segment{Text: text[m[0]:m[1]], Match: true})
		last = m[1]
	}
	if last < len(text) {
		out = append(out, Segment{Text: text[last:]})
	}
	if len(out) == 0 {
		return []Segment{{Text: text}}
	}
	return out
}

// Mark wraps every case-insensitive occurrence of each non-blank term in
// open and close. All terms are matched in a single pass, longest first, so
// inserted markers are never matched again and overlapping terms mark the
// longer span.
func Mark(text string, terms []string, open, close string) string {
	var alts []string
	for _, term := range terms {
		if strings.TrimSpace(term) == "" {
			continue
		}
		alts = append(alts, regexp.QuoteMeta(term))
	}
	if len(alts) == 0 {
		return text
	}
	sort.SliceStable(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })
	re := regexp.MustCompile("(?i)" + strings.Join(alts, "|"))
	return re.ReplaceAllStringFunc(text, func(m string) string {
		return open + m + close
	})
}

// Render joins segments, wrapping matching ones in open and close.
func Render(segs []Segment, open, close string) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Match {
			b.WriteString(open)
			b.WriteString(s.Text)
			b.WriteString(close)
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}
