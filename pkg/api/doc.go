// Package api provides the HTTP API layer for the cookbook service.
//
// This package is a thin wrapper around the reusable pkg/server package. It
// builds a cookbook.Cookbook, optionally seeds it from a catalog document,
// and registers the application routes.
//
// # Usage
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/cookbook/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - POST /v1/parse   - Normalize a free-form name: {"input": "..."} -> {"msg": "..."}
//   - POST /v1/entry   - Register an ingredient or recipe (JSON or YAML body)
//   - GET  /v1/entry   - List entries as a Catalog, or one entry with ?name=
//   - GET  /v1/summary - Expand the recipe given by ?name= into ingredients and cook time
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl -X POST http://localhost:8080/v1/entry \
//	  -H "Content-Type: application/json" \
//	  -d '{"type":"ingredient","name":"Flour","cookTime":2}'
//
//	curl "http://localhost:8080/v1/summary?name=Pancake"
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - CATALOG_FILE: Catalog document (path or http(s) URL) loaded at startup
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/cookbook/pkg/api.version=1.0.0'"
package api
