// Package api provides the HTTP API layer for the news hub application.
// It uses chi for routing and exposes the article and favorites services
// over a small JSON API.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: router assembly, middleware stack, and server lifecycle
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//	GET    /articles         fetch a page of articles (category, page, refresh query params)
//	POST   /cache/clear      drop every cached article query
//	GET    /favorites        list saved articles
//	POST   /favorites        save an article
//	GET    /favorites/{id}   check whether an article is saved
//	DELETE /favorites/{id}   remove a saved article
//	GET    /healthz          liveness probe
//	GET    /metrics          Prometheus metrics
//
// Errors from the core services are translated to HTTP status codes in
// handlers/errors.go; every error body carries a machine-readable code
// and a human-readable message.
package api
