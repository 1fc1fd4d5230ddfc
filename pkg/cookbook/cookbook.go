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
	"time"

	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
)

// Cookbook is an in-memory catalog of ingredients and recipes.
// It is safe for concurrent use.
type Cookbook struct {
	store      *Store
	validator  *Validator
	aggregator *Aggregator
	summaries  *SummaryBuilder
}

// New returns an empty Cookbook.
func New() *Cookbook {
	store := NewStore()
	aggregator := NewAggregator(store)
	return &Cookbook{
		store:      store,
		validator:  NewValidator(store),
		aggregator: aggregator,
		summaries:  NewSummaryBuilder(store, aggregator),
	}
}

// RegisterEntry validates p and adds it to the catalog.
func (c *Cookbook) RegisterEntry(p *EntryPayload) error {
	e, err := c.validator.Register(p)
	if err != nil {
		registrationFailures.WithLabelValues(codeLabel(err)).Inc()
		return err
	}
	entriesRegistered.WithLabelValues(e.EntryKind().String()).Inc()
	return nil
}

// Summarize expands the recipe named name and totals its cook time.
func (c *Cookbook) Summarize(ctx context.Context, name string) (*Summary, error) {
	start := time.Now()
	defer func() {
		summaryDuration.Observe(time.Since(start).Seconds())
	}()

	s, err := c.summaries.Build(ctx, name)
	if err != nil {
		summaryFailures.WithLabelValues(codeLabel(err)).Inc()
		return nil, err
	}
	return s, nil
}

// Expand returns the flattened base ingredient quantities for one unit of
// the recipe named name.
func (c *Cookbook) Expand(name string) (*Quantities, error) {
	return c.aggregator.Expand(name)
}

// Get returns the entry registered under name.
func (c *Cookbook) Get(name string) (Entry, bool) {
	return c.store.Get(name)
}

// Has reports whether name is registered.
func (c *Cookbook) Has(name string) bool {
	return c.store.Has(name)
}

// Entries returns every entry in registration order.
func (c *Cookbook) Entries() []Entry {
	return c.store.Entries()
}

// Len returns the number of registered entries.
func (c *Cookbook) Len() int {
	return c.store.Len()
}

func codeLabel(err error) string {
	if code := cberrors.CodeOf(err); code != "" {
		return string(code)
	}
	return string(cberrors.ErrCodeInternal)
}
