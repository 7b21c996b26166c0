// ABOUTME: HTTP router configuration and setup
// ABOUTME: Wires CORS, logging, and rate limiting middleware around the API routes

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"readstash-api/api/middleware"
	"readstash-api/core/interfaces"
)

// RouteRegistrar registers a handler's routes on a router
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger    interfaces.Logger
	RateLimit int // requests per second per client; 0 disables limiting
}

// NewRouter creates a router with the standard middleware stack applied
func NewRouter(cfg APIConfig) chi.Router {
	router := chi.NewRouter()

	// CORS must run before everything else
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimit*2)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	return router
}

// Register mounts each handler's routes on the router
func Register(router chi.Router, handlers ...RouteRegistrar) {
	for _, h := range handlers {
		h.RegisterRoutes(router)
	}
}
