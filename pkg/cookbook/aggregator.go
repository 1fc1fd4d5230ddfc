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
	"strings"

	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
)

// Quantities maps base ingredient names to total quantities and remembers
// the order in which each name was first reached.
type Quantities struct {
	order  []string
	totals map[string]float64
}

func newQuantities() *Quantities {
	return &Quantities{totals: make(map[string]float64)}
}

func (q *Quantities) add(name string, n float64) {
	if _, ok := q.totals[name]; !ok {
		q.order = append(q.order, name)
	}
	q.totals[name] += n
}

// Get returns the total for name, or zero when name was never reached.
func (q *Quantities) Get(name string) float64 {
	return q.totals[name]
}

// Len returns the number of distinct base ingredients.
func (q *Quantities) Len() int {
	return len(q.order)
}

// Names returns the ingredient names in first-encounter order.
func (q *Quantities) Names() []string {
	return append([]string(nil), q.order...)
}

// Map returns a copy of the totals.
func (q *Quantities) Map() map[string]float64 {
	out := make(map[string]float64, len(q.totals))
	for k, v := range q.totals {
		out[k] = v
	}
	return out
}

// Aggregator flattens recipes into base ingredient quantities.
type Aggregator struct {
	store *Store
}

// NewAggregator returns an Aggregator reading from store.
func NewAggregator(store *Store) *Aggregator {
	return &Aggregator{store: store}
}

// Expand returns the base ingredients needed for one unit of the recipe
// named root.
//
// Required items are visited depth first. An ingredient adds its quantity;
// a recipe is expanded on its own and each of its totals is added multiplied
// by the referencing quantity. Shared sub-recipes are expanded once per
// reference. A recipe that is reached again while it is still being
// expanded fails with CYCLIC_REFERENCE.
func (a *Aggregator) Expand(root string) (*Quantities, error) {
	e, ok := a.store.Get(root)
	if !ok {
		return nil, cberrors.NewWithContext(cberrors.ErrCodeUnknownEntry,
			"no entry with the given name", map[string]any{
				"name": root,
			})
	}

	r, ok := e.(*Recipe)
	if !ok {
		return nil, cberrors.NewWithContext(cberrors.ErrCodeNotARecipe,
			"summary is only available for recipes", map[string]any{
				"name": root,
				"kind": e.EntryKind(),
			})
	}

	return a.expand(r, []string{r.Name})
}

// expand resolves r. path holds the recipes currently being expanded,
// outermost first, with r last.
func (a *Aggregator) expand(r *Recipe, path []string) (*Quantities, error) {
	acc := newQuantities()

	for _, item := range r.RequiredItems {
		e, ok := a.store.Get(item.Name)
		if !ok {
			return nil, cberrors.NewWithContext(cberrors.ErrCodeUnknownEntry,
				"required item is not in the catalog", map[string]any{
					"name":   item.Name,
					"recipe": r.Name,
				})
		}

		switch v := e.(type) {
		case *Ingredient:
			acc.add(v.Name, item.Quantity)
		case *Recipe:
			if onPath(path, v.Name) {
				cycle := append(append([]string(nil), path...), v.Name)
				return nil, cberrors.NewWithContext(cberrors.ErrCodeCyclicReference,
					"recipe references itself", map[string]any{
						"name":  v.Name,
						"cycle": strings.Join(cycle, " -> "),
					})
			}

			sub, err := a.expand(v, append(path, v.Name))
			if err != nil {
				return nil, err
			}
			for _, name := range sub.order {
				acc.add(name, item.Quantity*sub.totals[name])
			}
		}
	}

	return acc, nil
}

func onPath(path []string, name string) bool {
	for _, p := range path {
		if p == name {
			return true
		}
	}
	return false
}
