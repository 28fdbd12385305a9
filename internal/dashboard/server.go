// Package dashboard serves the read-only query API over the persisted
// customer store: aggregate overview, demographic and purchase
// breakdowns, and the yearly new-customer trend.
//
// The store is re-read on every request. The importer overwrites the
// document wholesale per run, so caching across requests would serve
// stale data with no way to invalidate it.
package dashboard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/crmkit/custimport/internal/config"
)

// Server is the dashboard HTTP server.
type Server struct {
	storePath string
	router    *chi.Mux
	server    *http.Server
}

// NewServer creates a Server reading the customer store at the
// configured path.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		storePath: cfg.Import.StorePath,
		router:    chi.NewRouter(),
	}
	s.setupMiddleware(cfg)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware(cfg *config.Config) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// The dashboard frontend is served from a different origin.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/overview", s.handleOverview)
		r.Get("/demographics", s.handleDemographics)
		r.Get("/purchase-behavior", s.handlePurchaseBehavior)
		r.Get("/trends", s.handleTrends)
	})
}

// Handler returns the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins listening. Blocks until the server stops.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
