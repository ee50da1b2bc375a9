// Copyright 2025 Naren Yellavula
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

package main

import (
	"io"
	"sync"

	"github.com/willf/bloom"

	"github.com/cybrota/rbshell/rbtree"
)

// StoreStats is a snapshot of the store's shape.
type StoreStats struct {
	Size       int
	Height     int
	MinKey     string
	MaxKey     string
	CachedKeys int
}

// Store puts a lock, a key filter and a query cache in front of a tree.
//
// The filter remembers every key ever inserted (Bloom filters cannot forget),
// so a negative answer proves the key is absent and FindAll can skip the tree.
// False positives fall through to the tree, keeping results exact.
type Store struct {
	mu     sync.Mutex
	tree   *rbtree.Tree
	filter *bloom.BloomFilter
	cache  *QueryCache // nil when caching is disabled
}

func NewStore(config *Config) *Store {
	s := &Store{
		tree:   rbtree.New(),
		filter: bloom.New(config.Filter.Bits, config.Filter.Hashes),
	}
	if config.Cache.Enabled {
		s.cache = NewQueryCache(config.Cache.Expiration, config.Cache.Cleanup)
	}
	return s
}

func (s *Store) Insert(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tree.Insert(key, value)
	s.filter.AddString(key)
	if s.cache != nil {
		s.cache.Invalidate(key)
	}
}

// FindAll returns the values stored under key in insertion order.
func (s *Store) FindAll(key string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.filter.TestString(key) {
		return []string{}
	}
	if s.cache != nil {
		if values, ok := s.cache.Get(key); ok {
			return values
		}
	}

	values := s.tree.FindAll(key)
	if s.cache != nil {
		s.cache.Set(key, values)
	}
	return values
}

// Remove deletes every exact (key, value) match and returns the count.
func (s *Store) Remove(key, value string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.filter.TestString(key) {
		return 0
	}
	removed := s.tree.Remove(key, value)
	if removed > 0 && s.cache != nil {
		s.cache.Invalidate(key)
	}
	return removed
}

func (s *Store) Print(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Print(w)
}

// Walk runs fn over the tree in dump order while holding the lock.
func (s *Store) Walk(fn func(depth int, n *rbtree.Node)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Walk(fn)
}

func (s *Store) Verify() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Verify()
}

func (s *Store) Stats() StoreStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := StoreStats{
		Size:   s.tree.Len(),
		Height: s.tree.Height(),
	}
	stats.MinKey, _, _ = s.tree.Min()
	stats.MaxKey, _, _ = s.tree.Max()
	if s.cache != nil {
		stats.CachedKeys = s.cache.Len()
	}
	return stats
}

// Teardown releases every entry. The store must not be used afterwards.
func (s *Store) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tree.Teardown()
	s.filter.ClearAll()
	if s.cache != nil {
		s.cache.Flush()
	}
}
