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
	"strconv"

	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
)

// IngredientQuantity is one line of a Summary.
type IngredientQuantity struct {
	Name     string  `json:"name" yaml:"name"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
}

// Summary is the fully expanded view of a recipe. CookTime is fractional
// when any quantity on the way down is.
type Summary struct {
	Name        string               `json:"name" yaml:"name"`
	CookTime    float64              `json:"cookTime" yaml:"cookTime"`
	Ingredients []IngredientQuantity `json:"ingredients" yaml:"ingredients"`
}

// TableHeader implements serializer.TableRenderer.
func (s *Summary) TableHeader() []string {
	return []string{"INGREDIENT", "QUANTITY"}
}

// TableRows implements serializer.TableRenderer. The last row carries the
// total cook time.
func (s *Summary) TableRows() [][]string {
	rows := make([][]string, 0, len(s.Ingredients)+1)
	for _, iq := range s.Ingredients {
		rows = append(rows, []string{iq.Name, formatQuantity(iq.Quantity)})
	}
	return append(rows, []string{"TOTAL COOK TIME", formatQuantity(s.CookTime)})
}

// formatQuantity prints whole numbers without a fraction.
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SummaryBuilder combines aggregated quantities with ingredient cook times.
type SummaryBuilder struct {
	store      *Store
	aggregator *Aggregator
}

// NewSummaryBuilder returns a SummaryBuilder over store.
func NewSummaryBuilder(store *Store, aggregator *Aggregator) *SummaryBuilder {
	return &SummaryBuilder{
		store:      store,
		aggregator: aggregator,
	}
}

// Build summarizes the recipe named name. Ingredients are listed in the
// order the expansion first reached them.
func (b *SummaryBuilder) Build(ctx context.Context, name string) (*Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, cberrors.Wrap(cberrors.ErrCodeTimeout, "summary canceled", err)
	}

	quantities, err := b.aggregator.Expand(name)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		Name:        name,
		Ingredients: make([]IngredientQuantity, 0, quantities.Len()),
	}

	for _, ingredientName := range quantities.order {
		qty := quantities.totals[ingredientName]

		// Expand already resolved every name; re-checked here.
		e, ok := b.store.Get(ingredientName)
		if !ok {
			return nil, cberrors.NewWithContext(cberrors.ErrCodeUnknownEntry,
				"no ingredient found with name", map[string]any{
					"name":   ingredientName,
					"recipe": name,
				})
		}
		ing, ok := e.(*Ingredient)
		if !ok {
			return nil, cberrors.NewWithContext(cberrors.ErrCodeInternal,
				"expanded item is not an ingredient", map[string]any{
					"name":   ingredientName,
					"recipe": name,
				})
		}

		s.CookTime += float64(ing.CookTime) * qty
		s.Ingredients = append(s.Ingredients, IngredientQuantity{
			Name:     ingredientName,
			Quantity: qty,
		})
	}

	return s, nil
}
