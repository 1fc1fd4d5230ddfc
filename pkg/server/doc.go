// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides the HTTP front end used by the cookbook API.
//
// # Architecture
//
// Each configured route is wrapped in the same middleware chain, outermost
// first:
//
//   - metrics: Prometheus RED metrics keyed by route pattern
//   - version: API version negotiation and the X-API-Version header
//   - request ID: X-Request-Id propagation (UUID) or generation
//   - panic recovery: INTERNAL error response and a counter
//   - rate limiting: token bucket (golang.org/x/time/rate), 429 with Retry-After
//   - logging: one slog record per completed request
//
// /health, /ready and /metrics bypass the chain. "/" lists the routes and
// answers NOT_FOUND for anything unmatched.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("cookbookd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/entry":   cb.HandleEntry,
//	        "/v1/summary": cb.HandleSummary,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run returns after SIGINT, SIGTERM or ctx cancellation, once in-flight
// requests have drained or ShutdownTimeout has passed.
//
// # Configuration
//
// NewConfig reads these environment variables:
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget (default 30)
//	RATE_LIMIT                requests per second (default 100)
//	RATE_LIMIT_BURST          token bucket size (default 200)
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr. Both emit
//
//	{
//	  "code": "UNKNOWN_ENTRY",
//	  "message": "no entry with the given name",
//	  "details": {"name": "Waffle"},
//	  "requestId": "6f0c...",
//	  "timestamp": "2025-01-15T10:30:00Z",
//	  "retryable": false
//	}
//
// HTTPStatusFromCode maps error codes to statuses: validation codes to 400,
// UNKNOWN_ENTRY to 404, DUPLICATE_NAME to 409 and CYCLIC_REFERENCE to 422.
package server
