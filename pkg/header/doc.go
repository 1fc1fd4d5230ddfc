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

// Package header provides the common header embedded in cookbook documents.
//
// Catalog seed files, rendered summaries and validation reports start with
// the same three fields, in the style of Kubernetes resources:
//
//	kind: Catalog
//	apiVersion: cookbook.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//
// Documents embed Header inline:
//
//	type Catalog struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Entries []EntryPayload `json:"entries" yaml:"entries"`
//	}
//
// Readers call Check after decoding to reject documents of the wrong kind or
// an unsupported apiVersion. Both fields may be omitted.
package header
