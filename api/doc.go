// Package api provides the HTTP API layer for the ReadStash application.
// It uses chi for routing with middleware for cross-cutting concerns.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: router configuration and middleware setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Middleware
//
// The router stack includes:
// - CORS handling
// - Request logging with unique request IDs
// - Rate limiting per IP address
//
// # Usage Example
//
//	router := api.NewRouter(api.APIConfig{
//	    Logger:    logger,
//	    RateLimit: 10,
//	})
//	api.Register(router,
//	    handlers.NewArticleHandler(articleStore, extractService, logger),
//	    handlers.NewFeedHandler(importService, logger),
//	)
//	http.ListenAndServe(":8080", router)
//
// # Error Handling
//
// Handlers return a consistent JSON error format:
//
//	{"error": "article not found: a-1"}
//
// Domain errors are mapped to HTTP status codes: validation errors to 400,
// missing resources to 404, storage faults to 503, and everything else
// to 500 with the detail hidden from the client.
package api
