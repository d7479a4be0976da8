package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kamusis/docnav/internal/search"
)

type sectionSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Subtopics   int    `json:"subtopics"`
	Items       int    `json:"items"`
}

// handleListSections lists every section without its content.
func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	secs := s.catalog.Sections()
	out := make([]sectionSummary, 0, len(secs))
	for _, sec := range secs {
		out = append(out, sectionSummary{
			ID:          sec.ID,
			Title:       sec.Title,
			Description: sec.Description,
			Icon:        sec.Icon,
			Subtopics:   len(sec.Subtopics),
			Items:       sec.ItemCount(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"sections": out})
}

// handleGetSection returns one section with all of its content.
func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sectionID")
	sec, ok := s.catalog.Section(id)
	if !ok {
		jsonError(w, "section not found: "+id, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

type searchHit struct {
	search.Result
	Segments []search.Segment `json:"segments"`
}

// handleSearch runs a query and returns the top results with highlight
// segments for their display text.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	limit := s.searchLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			jsonError(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	all := search.Search(s.catalog.Sections(), q)
	results := search.Limit(all, limit)
	hits := make([]searchHit, 0, len(results))
	for _, res := range results {
		hits = append(hits, searchHit{Result: res, Segments: search.Highlight(res.DisplayText, q)})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query":   q,
		"total":   len(all),
		"results": hits,
	})
}
