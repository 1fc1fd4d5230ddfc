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
	"fmt"

	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/header"
	"github.com/NVIDIA/cookbook/pkg/serializer"
)

// Catalog is a seed document listing entries to register in order.
type Catalog struct {
	header.Header `json:",inline" yaml:",inline"`

	Entries []EntryPayload `json:"entries" yaml:"entries"`
}

// NewCatalog returns a Catalog document holding the wire form of entries.
func NewCatalog(version string, entries []Entry) *Catalog {
	c := &Catalog{
		Entries: make([]EntryPayload, 0, len(entries)),
	}
	c.Init(header.KindCatalog, version)
	for _, e := range entries {
		c.Entries = append(c.Entries, PayloadOf(e))
	}
	return c
}

// Register adds every entry of cat to c in document order and stops at the
// first rejection. Entries registered before the failure stay registered.
// It returns the number of entries added.
func (c *Cookbook) Register(ctx context.Context, cat *Catalog) (int, error) {
	if cat == nil {
		return 0, cberrors.New(cberrors.ErrCodeInvalidRequest, "catalog is required")
	}
	if err := cat.Check(header.KindCatalog); err != nil {
		return 0, cberrors.Wrap(cberrors.ErrCodeInvalidRequest, "invalid catalog header", err)
	}

	for i := range cat.Entries {
		if err := ctx.Err(); err != nil {
			return i, cberrors.Wrap(cberrors.ErrCodeTimeout, "catalog registration canceled", err)
		}

		p := &cat.Entries[i]
		if err := c.RegisterEntry(p); err != nil {
			code := cberrors.CodeOf(err)
			if code == "" {
				code = cberrors.ErrCodeInternal
			}
			return i, cberrors.WrapWithContext(code,
				fmt.Sprintf("catalog entry %d (%q) rejected", i, p.Name), err, map[string]any{
					"index": i,
					"name":  p.Name,
				})
		}
	}
	return len(cat.Entries), nil
}

// LoadCatalog reads the catalog document at path (a local file or an
// http(s) URL) and registers its entries into c.
func LoadCatalog(ctx context.Context, c *Cookbook, path string) (int, error) {
	cat, err := serializer.FromFile[Catalog](ctx, path)
	if err != nil {
		return 0, cberrors.WrapWithContext(cberrors.ErrCodeInvalidRequest,
			"failed to read catalog", err, map[string]any{
				"path": path,
			})
	}
	return c.Register(ctx, cat)
}
