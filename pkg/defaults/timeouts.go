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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// EntryHandlerTimeout is the timeout for entry registration requests.
	EntryHandlerTimeout = 10 * time.Second

	// SummaryHandlerTimeout is the timeout for recipe summary requests.
	SummaryHandlerTimeout = 30 * time.Second

	// CatalogLoadTimeout bounds loading a catalog seed file at startup.
	CatalogLoadTimeout = 1 * time.Minute
)

// Request limits for HTTP request processing.
const (
	// MaxRequestBodyBytes caps the size of entry and parse request bodies.
	MaxRequestBodyBytes = 1 << 20

	// MaxCatalogBytes caps the size of a catalog file read from disk or a URL.
	MaxCatalogBytes = 16 << 20
)

// HTTP client timeouts for fetching remote catalog files.
const (
	// HTTPClientTimeout is the total timeout for a catalog download.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout bounds establishing the TCP connection.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout bounds the TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout bounds waiting for response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is how long idle connections stay pooled.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive period for client connections.
	HTTPKeepAlive = 30 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)
