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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/NVIDIA/cookbook/pkg/cookbook"
	"github.com/NVIDIA/cookbook/pkg/defaults"
	"github.com/NVIDIA/cookbook/pkg/logging"
	"github.com/NVIDIA/cookbook/pkg/normalize"
	"github.com/NVIDIA/cookbook/pkg/server"
)

const (
	name           = "cookbookd"
	versionDefault = "dev"

	// EnvCatalogFile names a catalog document (path or http(s) URL) loaded
	// at startup.
	EnvCatalogFile = "CATALOG_FILE"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/cookbook/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Option configures Run.
type Option func(*options)

type options struct {
	catalog string
	port    int
	version string
}

// WithCatalog seeds the catalog from path before serving.
func WithCatalog(path string) Option {
	return func(o *options) {
		o.catalog = path
	}
}

// WithPort overrides the listen port. Zero keeps the server default.
func WithPort(port int) Option {
	return func(o *options) {
		o.port = port
	}
}

// WithVersion overrides the reported service version.
func WithVersion(v string) Option {
	return func(o *options) {
		o.version = v
	}
}

// Routes returns the API handlers for cb.
func Routes(cb *cookbook.Cookbook, version string) map[string]http.HandlerFunc {
	h := cookbook.NewHandler(cb, version)
	return map[string]http.HandlerFunc{
		"/v1/parse":   normalize.HandleParse,
		"/v1/entry":   h.HandleEntry,
		"/v1/summary": h.HandleSummary,
	}
}

// Serve starts the API server and blocks until shutdown.
// The catalog is seeded from CATALOG_FILE when it is set.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	return Run(context.Background(), WithCatalog(os.Getenv(EnvCatalogFile)))
}

// Run builds a Cookbook, optionally seeds it, and serves it until ctx is
// canceled or the process is signaled.
func Run(ctx context.Context, opts ...Option) error {
	o := &options{version: version}
	for _, opt := range opts {
		opt(o)
	}

	cb, err := newCookbook(ctx, o.catalog)
	if err != nil {
		return err
	}

	cfg := server.NewConfig()
	if o.port > 0 {
		cfg.Port = o.port
	}

	s := server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(o.version),
		server.WithHandler(Routes(cb, o.version)),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

func newCookbook(ctx context.Context, catalog string) (*cookbook.Cookbook, error) {
	cb := cookbook.New()
	if catalog == "" {
		return cb, nil
	}

	loadCtx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
	defer cancel()

	n, err := cookbook.LoadCatalog(loadCtx, cb, catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", catalog, err)
	}

	slog.Info("catalog loaded", "path", catalog, "entries", n)
	return cb, nil
}
