package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Recorder receives every query answered over HTTP.
type Recorder interface {
	Record(ctx context.Context, query string, resultCount int) error
}

// RegisterRoutes mounts the page search API routes. rec may be nil.
func RegisterRoutes(r chi.Router, c *Catalog, rec Recorder) {
	r.Get("/api/search", handleSearch(c, rec))
	r.Get("/api/pages", handlePages(c))
	r.Get("/api/years/{year}", handleYear(c))
}

type searchResponse struct {
	Query   string      `json:"query"`
	Count   int         `json:"count"`
	Results []PageEntry `json:"results"`
}

func handleSearch(c *Catalog, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		results := c.Search(query)

		if rec != nil {
			if err := rec.Record(r.Context(), query, len(results)); err != nil {
				slog.WarnContext(r.Context(), "recording search query failed", "query", query, "error", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(searchResponse{
			Query:   query,
			Count:   len(results),
			Results: results,
		})
	}
}

func handlePages(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(c.Entries())
	}
}

type yearResponse struct {
	Year    int    `json:"year"`
	Locator string `json:"locator"`
	Title   string `json:"title"`
}

func handleYear(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		year, err := strconv.Atoi(chi.URLParam(r, "year"))
		if err != nil {
			http.Error(w, `{"error":"year must be a number"}`, http.StatusBadRequest)
			return
		}
		page, ok := c.ByYear(year)
		if !ok {
			http.Error(w, `{"error":"no page for that year"}`, http.StatusNotFound)
			return
		}

		json.NewEncoder(w).Encode(yearResponse{
			Year:    year,
			Locator: page.Locator,
			Title:   page.Title,
		})
	}
}
