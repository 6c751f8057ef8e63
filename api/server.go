// ABOUTME: HTTP server assembly for the news hub API
// ABOUTME: Wires routes, middleware, and graceful shutdown

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newshub-api/api/handlers"
	"newshub-api/api/middleware"
	"newshub-api/core/interfaces"
)

// Version is set at build time via -ldflags
var Version = "dev"

// Config holds the server configuration
type Config struct {
	Port      string
	RateLimit int
	RateBurst int
}

// Services groups the handlers' dependencies
type Services struct {
	Articles  handlers.ArticleFetcher
	Favorites handlers.FavoriteKeeper
	Logger    interfaces.Logger
}

// Server is the HTTP API server
type Server struct {
	config Config
	logger interfaces.Logger
	http   *http.Server
}

// NewServer creates a fully routed HTTP server
func NewServer(config Config, services Services) *Server {
	router := chi.NewRouter()

	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(middleware.RequestLogging(services.Logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.RateLimit(middleware.NewRateLimiter(config.RateLimit, config.RateBurst)))

	articlesHandler := handlers.NewArticlesHandler(services.Articles, services.Logger)
	favoritesHandler := handlers.NewFavoritesHandler(services.Favorites, services.Logger)

	router.Get("/articles", articlesHandler.List)
	router.Post("/cache/clear", articlesHandler.ClearCache)

	router.Route("/favorites", func(r chi.Router) {
		r.Get("/", favoritesHandler.List)
		r.Post("/", favoritesHandler.Save)
		r.Get("/{id}", favoritesHandler.Status)
		r.Delete("/{id}", favoritesHandler.Remove)
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok","version":%q}`, Version)
	})
	router.Handle("/metrics", promhttp.Handler())

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"not_found","message":"Route not found"}`)
	})

	return &Server{
		config: config,
		logger: services.Logger,
		http: &http.Server{
			Addr:         ":" + config.Port,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start begins serving requests and blocks until the server stops
func (s *Server) Start() error {
	if s.logger != nil {
		s.logger.Info("Starting HTTP server", map[string]interface{}{
			"port":    s.config.Port,
			"version": Version,
		})
	}

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.logger != nil {
		s.logger.Info("Shutting down HTTP server", nil)
	}
	return s.http.Shutdown(ctx)
}
