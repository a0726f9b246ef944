// Package server provides HTTP server management and lifecycle handling for
// the medicine API. It wires the middleware chain (request id, real IP,
// logging, metrics, size limits, access policy, rate limiting), mounts the
// API routes and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medebd/medicine-api/config"
	"github.com/medebd/medicine-api/handlers"
	"github.com/medebd/medicine-api/interfaces"
	"github.com/medebd/medicine-api/logging"
	"github.com/medebd/medicine-api/metrics"
)

// Server represents the HTTP server
type Server struct {
	server  *http.Server
	router  chi.Router
	store   interfaces.CatalogStore
	config  *config.Config
	limiter *RateLimiter
	policy  *AccessPolicy
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, store interfaces.CatalogStore) *Server {
	router := chi.NewRouter()

	s := &Server{
		server: &http.Server{
			Handler:      router,
			Addr:         cfg.Address + ":" + cfg.Port,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router:  router,
		store:   store,
		config:  cfg,
		limiter: NewRateLimiter(cfg.RateLimitRate, cfg.RateLimitCapacity),
		policy:  NewAccessPolicy(cfg),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures all middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(RealIPMiddleware)
	s.router.Use(logging.LoggingMiddleware(logging.DefaultLoggingService.Logger))
	s.router.Use(middleware.RedirectSlashes)
	s.router.Use(middleware.Recoverer)
	s.router.Use(metrics.Middleware)
	s.router.Use(RequestSizeMiddleware(s.config))

	corsOrigins := s.config.AllowedOrigins
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	s.router.Use(s.policy.Middleware(s.limiter))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Route("/api/v2/medicine", func(r chi.Router) {
		r.Get("/", handlers.GetAllMedicine(s.store))
		r.Get("/search", handlers.SearchMedicine(s.store))
		r.Get("/generic", handlers.DisplayGeneric(s.store))
		r.Get("/searchByGeneric", handlers.SearchByGeneric(s.store))
		r.Get("/company", handlers.DisplayCompany(s.store))
		r.Get("/searchByCompanyId", handlers.SearchByCompanyID(s.store))
		r.Get("/{brandId}", handlers.GetMedicineDetails(s.store))
	})

	s.router.Get("/health", handlers.HealthCheck(s.store))
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "Medicine API is running")
	})
}

// Start starts the server
func (s *Server) Start() error {
	// Start profiling server if in development mode
	if s.config.Env == "dev" {
		s.startProfilingServer()
	}

	logging.Info(fmt.Sprintf("Starting server at: %s:%s", s.config.Address, s.config.Port))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	s.limiter.Stop()

	if err := s.server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
		// If graceful shutdown fails, force close
		if err := s.server.Close(); err != nil {
			logging.Error("Server close error", "error", err)
			return err
		}
	}

	logging.Info("Server shutdown complete")
	return nil
}

// Router exposes the handler for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// startProfilingServer starts the pprof profiling server in development mode
func (s *Server) startProfilingServer() {
	go func() {
		logging.Info("Profiling server started at http://localhost:6060/debug/pprof/")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			logging.Error("Profiling server failed", "error", err)
		}
	}()
}
