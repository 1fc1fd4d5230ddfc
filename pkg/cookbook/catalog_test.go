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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/cookbook/pkg/defaults"
	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/header"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pancakeCatalogYAML = `kind: Catalog
apiVersion: cookbook.nvidia.com/v1alpha1
entries:
  - {type: ingredient, name: Flour, cookTime: 2}
  - {type: ingredient, name: Egg, cookTime: 1}
  - type: recipe
    name: Pancake
    requiredItems:
      - {name: Flour, quantity: 2}
      - {name: Egg, quantity: 1}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCatalogYAML(t *testing.T) {
	cb := New()
	path := writeFile(t, "catalog.yaml", pancakeCatalogYAML)

	n, err := LoadCatalog(context.Background(), cb, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	s, err := cb.Summarize(context.Background(), "Pancake")
	require.NoError(t, err)
	assert.Equal(t, 5.0, s.CookTime)
}

func TestLoadCatalogJSON(t *testing.T) {
	src := New()
	mustRegister(t, src,
		ingredient("Flour", 2),
		ingredient("Egg", 1),
		recipe("Pancake", item("Flour", 2), item("Egg", 1)),
	)

	data, err := json.Marshal(NewCatalog("v0.1.0", src.Entries()))
	require.NoError(t, err)
	path := writeFile(t, "catalog.json", string(data))

	dst := New()
	n, err := LoadCatalog(context.Background(), dst, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, src.Entries(), dst.Entries())
}

func TestLoadCatalogRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(pancakeCatalogYAML))
	}))
	defer srv.Close()

	cb := New()
	n, err := LoadCatalog(context.Background(), cb, srv.URL+"/catalog.yaml")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, cb.Has("Pancake"))
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(context.Background(), New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, cberrors.ErrCodeInvalidRequest, cberrors.CodeOf(err))
}

func TestLoadCatalogStopsAtFirstFailure(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `entries:
  - {type: ingredient, name: Flour, cookTime: 2}
  - {type: ingredient, name: Salt, cookTime: -1}
  - {type: ingredient, name: Egg, cookTime: 1}
`)

	cb := New()
	n, err := LoadCatalog(context.Background(), cb, path)
	require.Error(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, cberrors.ErrCodeInvalidCookTime, cberrors.CodeOf(err))
	var se *cberrors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Context["index"])
	assert.Equal(t, "Salt", se.Context["name"])

	assert.True(t, cb.Has("Flour"))
	assert.False(t, cb.Has("Egg"))
}

func TestLoadCatalogRejectsOversizedFile(t *testing.T) {
	var b strings.Builder
	b.WriteString(pancakeCatalogYAML)
	for i := 0; int64(b.Len()) <= defaults.MaxCatalogBytes; i++ {
		fmt.Fprintf(&b, "  - {type: ingredient, name: Spice%07d, cookTime: 1}\n", i)
	}
	path := writeFile(t, "huge.yaml", b.String())

	cb := New()
	n, err := LoadCatalog(context.Background(), cb, path)
	require.Error(t, err)
	assert.Equal(t, cberrors.ErrCodeInvalidRequest, cberrors.CodeOf(err))
	assert.Contains(t, err.Error(), "exceeds")
	assert.Zero(t, n)
	assert.Zero(t, cb.Len())
}

func TestRegisterCatalogHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  header.Header
		wantErr bool
	}{
		{"empty header", header.Header{}, false},
		{"catalog kind", header.Header{Kind: header.KindCatalog, APIVersion: header.APIVersion}, false},
		{"summary kind", header.Header{Kind: header.KindSummary}, true},
		{"unsupported version", header.Header{APIVersion: "cookbook.nvidia.com/v9"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := New()
			cat := &Catalog{
				Header:  tt.header,
				Entries: []EntryPayload{*ingredient("Flour", 2)},
			}

			n, err := cb.Register(context.Background(), cat)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, cberrors.ErrCodeInvalidRequest, cberrors.CodeOf(err))
				assert.Equal(t, 0, cb.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	}
}

func TestRegisterCatalogNil(t *testing.T) {
	_, err := New().Register(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, cberrors.ErrCodeInvalidRequest, cberrors.CodeOf(err))
}

func TestRegisterCatalogCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cb := New()
	n, err := cb.Register(ctx, &Catalog{Entries: []EntryPayload{*ingredient("Flour", 2)}})
	require.Error(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, cberrors.ErrCodeTimeout, cberrors.CodeOf(err))
}

func TestNewCatalog(t *testing.T) {
	cat := NewCatalog("v1.2.3", []Entry{
		&Ingredient{Name: "Flour", CookTime: 2},
		&Recipe{Name: "Bread", RequiredItems: []RequiredItem{item("Flour", 3)}},
	})

	assert.Equal(t, header.KindCatalog, cat.Kind)
	assert.Equal(t, header.APIVersion, cat.APIVersion)
	assert.Equal(t, "v1.2.3", cat.Metadata["version"])
	require.Len(t, cat.Entries, 2)
	assert.Equal(t, "recipe", cat.Entries[1].Type)
}
