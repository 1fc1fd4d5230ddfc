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

package cookbook

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/cookbook/pkg/defaults"
	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/serializer"
	"github.com/NVIDIA/cookbook/pkg/server"
)

// Handler exposes a Cookbook over HTTP.
type Handler struct {
	cookbook *Cookbook
	version  string
}

// NewHandler returns a Handler serving c. version is stamped on catalog
// listings.
func NewHandler(c *Cookbook, version string) *Handler {
	return &Handler{
		cookbook: c,
		version:  version,
	}
}

// HandleEntry registers entries on POST and lists them on GET.
// POST accepts a JSON or YAML entry payload, selected by Content-Type.
// GET without parameters returns every entry as a Catalog document;
// GET with ?name= returns that single entry.
func (h *Handler) HandleEntry(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getEntry(w, r)
	case http.MethodPost:
		h.postEntry(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, cberrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET", "POST"},
			})
	}
}

func (h *Handler) postEntry(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.EntryHandlerTimeout)
	defer cancel()

	body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
	defer body.Close()

	reader, err := serializer.NewReader(serializer.FormatFromContentType(r.Header.Get("Content-Type")), body)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"Unsupported request body format", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	var p EntryPayload
	if err := reader.Deserialize(&p); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"Invalid entry payload", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	if err := ctx.Err(); err != nil {
		server.WriteErrorFromErr(w, r,
			cberrors.Wrap(cberrors.ErrCodeTimeout, "entry registration canceled", err),
			"Failed to register entry", nil)
		return
	}

	if err := h.cookbook.RegisterEntry(&p); err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to register entry", nil)
		return
	}

	slog.Debug("entry registered",
		"name", p.Name,
		"type", p.Type,
		"requestId", server.RequestIDFromContext(r.Context()),
	)

	serializer.RespondJSON(w, http.StatusOK, struct{}{})
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		serializer.RespondJSON(w, http.StatusOK, NewCatalog(h.version, h.cookbook.Entries()))
		return
	}

	e, ok := h.cookbook.Get(name)
	if !ok {
		server.WriteError(w, r, http.StatusNotFound, cberrors.ErrCodeUnknownEntry,
			"no entry with the given name", false, map[string]any{
				"name": name,
			})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, PayloadOf(e))
}

// HandleSummary serves GET ?name= with the expanded summary of a recipe.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, cberrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet},
			})
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		server.WriteError(w, r, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"name query parameter is required", false, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.SummaryHandlerTimeout)
	defer cancel()

	s, err := h.cookbook.Summarize(ctx, name)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to summarize recipe", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, s)
}
