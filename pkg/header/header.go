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

package header

import (
	"fmt"
	"time"
)

// APIVersion is the schema version written to and accepted in cookbook documents.
const APIVersion = "cookbook.nvidia.com/v1alpha1"

// Kind identifies the type of a cookbook document.
type Kind string

const (
	// KindCatalog marks a catalog seed file.
	KindCatalog Kind = "Catalog"
	// KindSummary marks a rendered recipe summary.
	KindSummary Kind = "Summary"
	// KindValidation marks a catalog validation report.
	KindValidation Kind = "ValidationReport"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindCatalog, KindSummary, KindValidation:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata adds a metadata key-value pair.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind sets the document kind.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion overrides the default API version.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// Header carries the kind, schema version and free-form metadata of a
// cookbook document. It is embedded inline in documents.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// New creates a Header with the current APIVersion and applies opts.
func New(opts ...Option) *Header {
	h := &Header{
		APIVersion: APIVersion,
		Metadata:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Init resets h to the given kind with a creation timestamp and, when set,
// the tool version in Metadata.
func (h *Header) Init(kind Kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata["version"] = version
	}
}

// Check verifies that a decoded document declares the expected kind and a
// supported API version. An empty kind or version is accepted so that
// hand-written files may omit the header.
func (h *Header) Check(want Kind) error {
	if h.Kind != "" && h.Kind != want {
		return fmt.Errorf("unexpected document kind %q, want %q", h.Kind, want)
	}
	if h.APIVersion != "" && h.APIVersion != APIVersion {
		return fmt.Errorf("unsupported apiVersion %q, want %q", h.APIVersion, APIVersion)
	}
	return nil
}
