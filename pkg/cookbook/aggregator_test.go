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
	"testing"

	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAggregatorWith(t *testing.T, entries ...Entry) *Aggregator {
	t.Helper()
	store := NewStore()
	for _, e := range entries {
		require.NoError(t, store.Insert(e))
	}
	return NewAggregator(store)
}

func TestExpandLinearity(t *testing.T) {
	a := newAggregatorWith(t,
		&Ingredient{Name: "C", CookTime: 1},
		&Recipe{Name: "A", RequiredItems: []RequiredItem{item("C", 1)}},
		&Recipe{Name: "B", RequiredItems: []RequiredItem{item("C", 1)}},
		&Recipe{Name: "R", RequiredItems: []RequiredItem{item("A", 2), item("B", 3)}},
	)

	q, err := a.Expand("R")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"C": 5}, q.Map())
}

func TestExpandMultiplicativeNesting(t *testing.T) {
	a := newAggregatorWith(t,
		&Ingredient{Name: "I", CookTime: 4},
		&Recipe{Name: "S", RequiredItems: []RequiredItem{item("I", 3)}},
		&Recipe{Name: "R", RequiredItems: []RequiredItem{item("S", 2)}},
	)

	q, err := a.Expand("R")
	require.NoError(t, err)
	assert.Equal(t, 6.0, q.Get("I"))
	assert.Equal(t, 1, q.Len())
}

func TestExpandDeepNesting(t *testing.T) {
	a := newAggregatorWith(t,
		&Ingredient{Name: "Salt", CookTime: 0},
		&Ingredient{Name: "Water", CookTime: 1},
		&Recipe{Name: "Brine", RequiredItems: []RequiredItem{item("Salt", 2), item("Water", 5)}},
		&Recipe{Name: "Pickle", RequiredItems: []RequiredItem{item("Brine", 3), item("Salt", 1)}},
		&Recipe{Name: "Jar", RequiredItems: []RequiredItem{item("Pickle", 2)}},
	)

	q, err := a.Expand("Jar")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Salt": 14, "Water": 30}, q.Map())
}

func TestExpandFirstEncounterOrder(t *testing.T) {
	a := newAggregatorWith(t,
		&Ingredient{Name: "Egg", CookTime: 1},
		&Ingredient{Name: "Flour", CookTime: 2},
		&Ingredient{Name: "Milk", CookTime: 1},
		&Recipe{Name: "Batter", RequiredItems: []RequiredItem{item("Milk", 1), item("Egg", 1)}},
		&Recipe{Name: "Crepe", RequiredItems: []RequiredItem{item("Flour", 1), item("Batter", 2), item("Egg", 1)}},
	)

	q, err := a.Expand("Crepe")
	require.NoError(t, err)
	assert.Equal(t, []string{"Flour", "Milk", "Egg"}, q.Names())
	assert.Equal(t, 3.0, q.Get("Egg"))
}

func TestExpandSharedSubRecipe(t *testing.T) {
	a := newAggregatorWith(t,
		&Ingredient{Name: "Flour", CookTime: 2},
		&Recipe{Name: "Dough", RequiredItems: []RequiredItem{item("Flour", 2)}},
		&Recipe{Name: "Base", RequiredItems: []RequiredItem{item("Dough", 1)}},
		&Recipe{Name: "Pizza", RequiredItems: []RequiredItem{item("Dough", 1), item("Base", 1)}},
	)

	q, err := a.Expand("Pizza")
	require.NoError(t, err)
	assert.Equal(t, 4.0, q.Get("Flour"))
}

func TestExpandEmptyRecipe(t *testing.T) {
	a := newAggregatorWith(t, &Recipe{Name: "Air"})

	q, err := a.Expand("Air")
	require.NoError(t, err)
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Names())
}

func TestExpandErrors(t *testing.T) {
	a := newAggregatorWith(t,
		&Ingredient{Name: "Flour", CookTime: 2},
		&Recipe{Name: "R", RequiredItems: []RequiredItem{item("S", 1)}},
		&Recipe{Name: "S", RequiredItems: []RequiredItem{item("R", 1)}},
		&Recipe{Name: "Self", RequiredItems: []RequiredItem{item("Flour", 1), item("Self", 1)}},
		&Recipe{Name: "Outer", RequiredItems: []RequiredItem{item("R", 1)}},
		&Recipe{Name: "Broken", RequiredItems: []RequiredItem{item("Flour", 1), item("Missing", 1)}},
		&Recipe{Name: "Wrapper", RequiredItems: []RequiredItem{item("Broken", 2)}},
	)

	tests := []struct {
		name  string
		root  string
		want  cberrors.ErrorCode
		cycle string
	}{
		{"two recipe cycle", "R", cberrors.ErrCodeCyclicReference, "R -> S -> R"},
		{"self reference", "Self", cberrors.ErrCodeCyclicReference, "Self -> Self"},
		{"cycle below root", "Outer", cberrors.ErrCodeCyclicReference, "Outer -> R -> S -> R"},
		{"unknown root", "Nope", cberrors.ErrCodeUnknownEntry, ""},
		{"ingredient root", "Flour", cberrors.ErrCodeNotARecipe, ""},
		{"unknown required item", "Broken", cberrors.ErrCodeUnknownEntry, ""},
		{"unknown nested item", "Wrapper", cberrors.ErrCodeUnknownEntry, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := a.Expand(tt.root)
			require.Error(t, err)
			assert.Nil(t, q)
			assert.Equal(t, tt.want, cberrors.CodeOf(err))

			if tt.cycle != "" {
				var se *cberrors.StructuredError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, tt.cycle, se.Context["cycle"])
			}
		})
	}
}

func TestExpandUnknownItemContext(t *testing.T) {
	a := newAggregatorWith(t,
		&Recipe{Name: "Broken", RequiredItems: []RequiredItem{item("Missing", 1)}},
	)

	_, err := a.Expand("Broken")
	var se *cberrors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Missing", se.Context["name"])
	assert.Equal(t, "Broken", se.Context["recipe"])
}

func TestQuantitiesCopies(t *testing.T) {
	q := newQuantities()
	q.add("Egg", 1)
	q.add("Egg", 2)

	m := q.Map()
	m["Egg"] = 100
	names := q.Names()
	names[0] = "Changed"

	assert.Equal(t, 3.0, q.Get("Egg"))
	assert.Equal(t, []string{"Egg"}, q.Names())
}

func TestExpandFractionalQuantities(t *testing.T) {
	a := newAggregatorWith(t,
		&Ingredient{Name: "Egg", CookTime: 2},
		&Ingredient{Name: "Butter", CookTime: 1},
		&Recipe{Name: "Glaze", RequiredItems: []RequiredItem{item("Egg", 0.5), item("Butter", 1.5)}},
		&Recipe{Name: "Tart", RequiredItems: []RequiredItem{item("Glaze", 0.5), item("Butter", 0.25)}},
	)

	q, err := a.Expand("Tart")
	require.NoError(t, err)
	assert.Equal(t, []string{"Egg", "Butter"}, q.Names())
	assert.Equal(t, map[string]float64{"Egg": 0.25, "Butter": 1}, q.Map())
}
