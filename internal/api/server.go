// Package api serves the documentation catalog and search over HTTP as
// read-only JSON.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kamusis/docnav/internal/catalog"
)

// Server is the HTTP API server for docnav.
type Server struct {
	router      chi.Router
	catalog     *catalog.Catalog
	log         *slog.Logger
	searchLimit int
}

// NewServer creates and configures the HTTP server. searchLimit is the
// default number of search results returned when the request sets none.
// A nil log uses slog.Default().
func NewServer(cat *catalog.Catalog, log *slog.Logger, searchLimit int) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		catalog:     cat,
		log:         log,
		searchLimit: searchLimit,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/sections", s.handleListSections)
		r.Get("/sections/{sectionID}", s.handleGetSection)
		r.Get("/search", s.handleSearch)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sections": len(s.catalog.Sections()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
