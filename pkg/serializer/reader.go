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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/NVIDIA/cookbook/pkg/defaults"
	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the format from a file extension.
// URLs are matched on their path, ignoring query and fragment.
// .json maps to JSON, .yaml and .yml to YAML, .table and .txt to table.
// Anything else defaults to JSON.
func FormatFromPath(path string) Format {
	p := path
	if isRemote(path) {
		if u, err := url.Parse(path); err == nil {
			p = u.Path
		}
	}

	lower := strings.ToLower(p)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lower, ".table"), strings.HasSuffix(lower, ".txt"):
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "path", path)
		return FormatJSON
	}
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Reader decodes JSON or YAML documents from an io.Reader.
// Close releases the underlying source when it is closeable.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a Reader over input. Table format cannot be decoded.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, errors.New("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// NewFileReader creates a Reader over a local file or an http(s) URL.
// Remote documents are fetched with an HTTPReader. Both sources are read in
// full and rejected when larger than defaults.MaxCatalogBytes.
func NewFileReader(ctx context.Context, format Format, path string) (*Reader, error) {
	if isRemote(path) {
		data, err := NewHTTPReader().ReadWithContext(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch remote file: %w", err)
		}
		return NewReader(format, bytes.NewReader(data))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := readCapped(file, defaults.MaxCatalogBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return NewReader(format, bytes.NewReader(data))
}

// readCapped reads all of src and fails when it holds more than limit bytes.
func readCapped(src io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("content exceeds %d bytes", limit)
	}
	return data, nil
}

// Deserialize decodes the next document from the source into v, which must
// be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return errors.New("reader is nil")
	}
	if r.input == nil {
		return errors.New("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return errors.New("failed to decode YAML: empty document")
			}
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases the source. Safe to call on a nil Reader and more than once.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile loads a document of type T from a local path or http(s) URL,
// detecting the format from the extension.
//
//	cat, err := FromFile[cookbook.Catalog](ctx, "catalog.yaml")
func FromFile[T any](ctx context.Context, path string) (*T, error) {
	format := FormatFromPath(path)
	slog.Debug("determined file format", "path", path, "format", format)

	reader, err := NewFileReader(ctx, format, path)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", path, err)
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "error", closeErr, "path", path)
		}
	}()

	var v T
	if err := reader.Deserialize(&v); err != nil {
		return nil, fmt.Errorf("failed to deserialize %q: %w", path, err)
	}
	return &v, nil
}
