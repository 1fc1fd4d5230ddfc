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
	"sync"

	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
)

// Store holds catalog entries keyed by exact, case-sensitive name.
// Entries are never updated or removed once inserted.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
	order   []string
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]Entry),
	}
}

// Insert stores e verbatim. It fails with DUPLICATE_NAME when the name is
// taken; the check and the write happen under one lock.
func (s *Store) Insert(e Entry) error {
	name := e.EntryName()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[name]; exists {
		return cberrors.NewWithContext(cberrors.ErrCodeDuplicateName,
			"an entry with this name already exists", map[string]any{
				"name": name,
			})
	}

	s.entries[name] = e
	s.order = append(s.order, name)
	return nil
}

// Get returns the entry registered under name.
func (s *Store) Get(name string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[name]
	return e, ok
}

// Has reports whether name is registered.
func (s *Store) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Len returns the number of registered entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// Entries returns all entries in registration order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.entries[name])
	}
	return out
}
