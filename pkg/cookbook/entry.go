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
	"fmt"
)

// Kind discriminates the two entry variants.
type Kind string

const (
	// KindIngredient marks a base ingredient with an atomic cook time.
	KindIngredient Kind = "ingredient"
	// KindRecipe marks a recipe composed of required items.
	KindRecipe Kind = "recipe"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// ParseKind maps a type tag to a Kind. Matching is exact.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindIngredient, KindRecipe:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("invalid entry type %q: must be %q or %q", s, KindIngredient, KindRecipe)
	}
}

// Entry is a named catalog item. It is implemented only by *Ingredient and
// *Recipe; use a type switch to tell them apart.
type Entry interface {
	EntryName() string
	EntryKind() Kind

	sealed()
}

// Ingredient is a base entry with no sub-components.
type Ingredient struct {
	Name     string `json:"name" yaml:"name"`
	CookTime int    `json:"cookTime" yaml:"cookTime"`
}

// EntryName implements Entry.
func (i *Ingredient) EntryName() string { return i.Name }

// EntryKind implements Entry.
func (i *Ingredient) EntryKind() Kind { return KindIngredient }

func (i *Ingredient) sealed() {}

// RequiredItem references another entry by name with a per-unit quantity.
// Quantities may be fractional.
type RequiredItem struct {
	Name     string  `json:"name" yaml:"name"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
}

// Recipe is a composite entry. RequiredItems keep their registration order and
// are resolved only when the recipe is expanded.
type Recipe struct {
	Name          string         `json:"name" yaml:"name"`
	RequiredItems []RequiredItem `json:"requiredItems" yaml:"requiredItems"`
}

// EntryName implements Entry.
func (r *Recipe) EntryName() string { return r.Name }

// EntryKind implements Entry.
func (r *Recipe) EntryKind() Kind { return KindRecipe }

func (r *Recipe) sealed() {}

// EntryPayload is the wire form of an entry, as posted to the API or listed
// in a catalog file. CookTime is a pointer so that a missing value can be
// told apart from zero.
type EntryPayload struct {
	Type          string         `json:"type" yaml:"type"`
	Name          string         `json:"name" yaml:"name"`
	CookTime      *int           `json:"cookTime,omitempty" yaml:"cookTime,omitempty"`
	RequiredItems []RequiredItem `json:"requiredItems,omitempty" yaml:"requiredItems,omitempty"`
}

// PayloadOf converts a stored entry back to its wire form.
func PayloadOf(e Entry) EntryPayload {
	switch v := e.(type) {
	case *Ingredient:
		cookTime := v.CookTime
		return EntryPayload{
			Type:     string(KindIngredient),
			Name:     v.Name,
			CookTime: &cookTime,
		}
	case *Recipe:
		return EntryPayload{
			Type:          string(KindRecipe),
			Name:          v.Name,
			RequiredItems: append([]RequiredItem(nil), v.RequiredItems...),
		}
	default:
		panic(fmt.Sprintf("cookbook: unexpected entry type %T", e))
	}
}
