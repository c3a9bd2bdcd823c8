package querylog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the query log API routes.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/queries", func(r chi.Router) {
		r.Get("/top", handleTop(store))
		r.Get("/recent", handleRecent(store))
	})
}

func limitParam(r *http.Request) int {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}

func handleTop(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := store.Top(r.Context(), limitParam(r))
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if stats == nil {
			stats = []KeywordStat{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}

func handleRecent(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		queries, err := store.Recent(r.Context(), limitParam(r))
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if queries == nil {
			queries = []Query{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(queries)
	}
}
