package search

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// SortResults orders results by relevance to query: exact matches of the
// display text first, then prefix matches, then kind priority, then shorter
// display text. Results that tie on all four keep their relative order.
func SortResults(results []Result, query string) {
	q := strings.ToLower(query)
	type key struct {
		exact, prefix bool
		priority      int
		length        int
	}
	keys := make([]key, len(results))
	for i, r := range results {
		d := strings.ToLower(r.DisplayText)
		keys[i] = key{
			exact:    d == q,
			prefix:   strings.HasPrefix(d, q),
			priority: r.Kind.Priority(),
			length:   utf8.RuneCountInString(r.DisplayText),
		}
	}

	idx := make([]int, len(results))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if ka.exact != kb.exact {
			return ka.exact
		}
		if ka.prefix != kb.prefix {
			return ka.prefix
		}
		if ka.priority != kb.priority {
			return ka.priority > kb.priority
		}
		return ka.length < kb.length
	})

	sorted := make([]Result, len(results))
	for i, j := range idx {
		sorted[i] = results[j]
	}
	copy(results, sorted)
}
