package server

import (
	"log/slog"
	"net/http"
	"sort"
	"time"

	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/serializer"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	rootPath    = "/"
	healthPath  = "/health"
	readyPath   = "/ready"
	metricsPath = "/metrics"
)

// setupRoutes registers system endpoints directly and every configured
// handler behind the middleware chain.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc(healthPath, s.handleHealth)
	mux.HandleFunc(readyPath, s.handleReady)
	mux.Handle(metricsPath, promhttp.Handler())

	for pattern, handler := range s.config.Handlers {
		mux.HandleFunc(pattern, s.withMiddleware(handler))
	}

	return mux
}

// routes returns the configured API routes followed by the system routes.
func (s *Server) routes() []string {
	api := make([]string, 0, len(s.config.Handlers))
	for pattern := range s.config.Handlers {
		if pattern != rootPath {
			api = append(api, pattern)
		}
	}
	sort.Strings(api)
	return append(api, healthPath, readyPath, metricsPath)
}

type rootResponse struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Ready     bool     `json:"ready"`
	Timestamp string   `json:"timestamp"`
	Routes    []string `json:"routes"`
}

// handleDefault serves service information at "/" and NOT_FOUND for every
// path no other route matched.
func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != rootPath {
		WriteError(w, r, http.StatusNotFound, cberrors.ErrCodeNotFound,
			"Route not found", false, map[string]any{
				"path": r.URL.Path,
			})
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	slog.Debug("handling default route",
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	serializer.RespondJSON(w, http.StatusOK, rootResponse{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.isReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    s.routes(),
	})
}
