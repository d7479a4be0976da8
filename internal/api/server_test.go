package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamusis/docnav/internal/catalog"
	"github.com/kamusis/docnav/internal/docs"
)

func newTestServer() *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat := catalog.New([]docs.Section{
		{
			ID:    "api-methods",
			Title: "API Methods",
			Subtopics: []docs.Subtopic{{
				ID:    "rest-api",
				Title: "REST API",
				Items: []docs.ContentItem{{Subtitle: "What is REST?", Text: "REST uses HTTP."}},
			}},
		},
		{ID: "rest", Title: "REST"},
	}, log)
	return NewServer(cat, log, 20)
}

func get(t *testing.T, s *Server, url string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHealth(t *testing.T) {
	rec, body := get(t, newTestServer(), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 2, body["sections"])
}

func TestListSections(t *testing.T) {
	rec, body := get(t, newTestServer(), "/api/sections")
	assert.Equal(t, http.StatusOK, rec.Code)
	secs := body["sections"].([]any)
	require.Len(t, secs, 2)
	first := secs[0].(map[string]any)
	assert.Equal(t, "api-methods", first["id"])
	assert.EqualValues(t, 1, first["items"])
}

func TestGetSection(t *testing.T) {
	rec, body := get(t, newTestServer(), "/api/sections/api-methods")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "API Methods", body["title"])

	rec, body = get(t, newTestServer(), "/api/sections/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, body["error"], "nope")
}

func TestSearch(t *testing.T) {
	rec, body := get(t, newTestServer(), "/api/search?q=rest")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 4, body["total"])

	results := body["results"].([]any)
	require.Len(t, results, 4)
	top := results[0].(map[string]any)
	assert.Equal(t, "REST", top["display_text"])
	assert.Equal(t, "section", top["kind"])
	segs := top["segments"].([]any)
	require.Len(t, segs, 1)
	assert.Equal(t, true, segs[0].(map[string]any)["match"])
}

func TestSearch_LimitAndBlank(t *testing.T) {
	_, body := get(t, newTestServer(), "/api/search?q=rest&limit=2")
	assert.Len(t, body["results"].([]any), 2)

	_, body = get(t, newTestServer(), "/api/search?q=+")
	assert.EqualValues(t, 0, body["total"])
	assert.Empty(t, body["results"])

	rec, _ := get(t, newTestServer(), "/api/search?q=rest&limit=x")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewServer_NilLogger(t *testing.T) {
	cat := catalog.New([]docs.Section{{ID: "rest", Title: "REST"}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s := NewServer(cat, nil, 0)

	rec, body := get(t, s, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, body["sections"])
}
