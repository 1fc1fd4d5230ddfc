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
	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
)

// Validator checks entry payloads and hands accepted entries to a Store.
type Validator struct {
	store *Store
}

// NewValidator returns a Validator bound to store.
func NewValidator(store *Store) *Validator {
	return &Validator{store: store}
}

// Validate checks p and returns the canonical entry it describes. The
// duplicate name check runs before any type-specific rule.
func (v *Validator) Validate(p *EntryPayload) (Entry, error) {
	if p == nil {
		return nil, cberrors.New(cberrors.ErrCodeInvalidRequest, "entry payload is required")
	}

	kind, err := ParseKind(p.Type)
	if err != nil {
		return nil, cberrors.WrapWithContext(cberrors.ErrCodeInvalidKind,
			"entry type must be 'recipe' or 'ingredient'", err, map[string]any{
				"type": p.Type,
			})
	}

	if p.Name == "" {
		return nil, cberrors.New(cberrors.ErrCodeInvalidName, "entry name must not be empty")
	}

	if v.store.Has(p.Name) {
		return nil, cberrors.NewWithContext(cberrors.ErrCodeDuplicateName,
			"an entry with this name already exists", map[string]any{
				"name": p.Name,
			})
	}

	switch kind {
	case KindIngredient:
		return validateIngredient(p)
	case KindRecipe:
		return validateRecipe(p)
	default:
		return nil, cberrors.New(cberrors.ErrCodeInternal, "unhandled entry kind")
	}
}

func validateIngredient(p *EntryPayload) (*Ingredient, error) {
	if p.CookTime == nil {
		return nil, cberrors.NewWithContext(cberrors.ErrCodeInvalidCookTime,
			"cookTime is required for ingredients", map[string]any{
				"name": p.Name,
			})
	}
	if *p.CookTime < 0 {
		return nil, cberrors.NewWithContext(cberrors.ErrCodeInvalidCookTime,
			"cookTime must be >= 0", map[string]any{
				"name":     p.Name,
				"cookTime": *p.CookTime,
			})
	}

	return &Ingredient{
		Name:     p.Name,
		CookTime: *p.CookTime,
	}, nil
}

func validateRecipe(p *EntryPayload) (*Recipe, error) {
	seen := make(map[string]struct{}, len(p.RequiredItems))
	for _, item := range p.RequiredItems {
		if _, dup := seen[item.Name]; dup {
			return nil, cberrors.NewWithContext(cberrors.ErrCodeDuplicateRequiredItem,
				"each required item may appear only once", map[string]any{
					"name": p.Name,
					"item": item.Name,
				})
		}
		seen[item.Name] = struct{}{}
	}

	return &Recipe{
		Name:          p.Name,
		RequiredItems: append(make([]RequiredItem, 0, len(p.RequiredItems)), p.RequiredItems...),
	}, nil
}

// Register validates p and inserts the resulting entry. Nothing is stored
// when validation fails.
func (v *Validator) Register(p *EntryPayload) (Entry, error) {
	e, err := v.Validate(p)
	if err != nil {
		return nil, err
	}
	if err := v.store.Insert(e); err != nil {
		return nil, err
	}
	return e, nil
}
