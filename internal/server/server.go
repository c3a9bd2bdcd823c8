package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/ww2site/internal/catalog"
	"github.com/ziadkadry99/ww2site/internal/querylog"
)

// Config holds server configuration.
type Config struct {
	Port     int
	SiteDir  string // built static site served at /; empty disables it
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server serves the page search API and, optionally, the built site.
type Server struct {
	cfg        Config
	catalog    *catalog.Catalog
	queries    *querylog.Store
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over the given catalog. queries may be nil, in which
// case searches are not logged and the query log routes are not mounted.
func New(cfg Config, cat *catalog.Catalog, queries *querylog.Store) *Server {
	s := &Server{
		cfg:     cfg,
		catalog: cat,
		queries: queries,
	}

	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if s.queries != nil {
		catalog.RegisterRoutes(r, s.catalog, s.queries)
		querylog.RegisterRoutes(r, s.queries)
	} else {
		catalog.RegisterRoutes(r, s.catalog, nil)
	}

	// Static files (must be registered after API routes).
	if s.cfg.SiteDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.cfg.SiteDir)))
	}

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Catalog returns the catalog the server searches.
func (s *Server) Catalog() *catalog.Catalog { return s.catalog }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
// It returns http.ErrServerClosed once Shutdown has been called, even if
// Shutdown ran first.
func (s *Server) Start() error {
	slog.Info("ww2site server listening", "addr", s.httpServer.Addr, "pages", s.catalog.Len(), "site_dir", s.cfg.SiteDir)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
