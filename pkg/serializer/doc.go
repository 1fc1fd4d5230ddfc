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

// Package serializer encodes and decodes cookbook documents in JSON, YAML, and
// table form.
//
// # Formats
//
//   - json: indented JSON, also used for every HTTP response body
//   - yaml: gopkg.in/yaml.v3, used for catalog files and YAML request bodies
//   - table: tab-aligned text for terminals, write-only
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatTable, outputPath)
//	defer w.Close()
//	if err := w.Serialize(ctx, summary); err != nil {
//	    return err
//	}
//
// Values implementing TableRenderer control their own table layout. Anything
// else is flattened into dotted FIELD/VALUE rows.
//
// # Reading
//
// FromFile picks the format from the file extension and accepts local paths
// as well as http:// and https:// URLs:
//
//	cat, err := serializer.FromFile[cookbook.Catalog](ctx, "catalog.yaml")
//
// Request bodies are decoded with NewReader and FormatFromContentType.
//
// # HTTP
//
// RespondJSON buffers the encoded body before writing headers so a failed
// encode never leaves a half-written response.
package serializer
