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
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCacheInvalidation(t *testing.T) {
	config := defaultConfig
	s := NewStore(&config)

	s.Insert("k", "1")
	assert.Equal(t, []string{"1"}, s.FindAll("k"))
	assert.Equal(t, 1, s.Stats().CachedKeys)

	// A write to the key must not be hidden by the cached result.
	s.Insert("k", "2")
	assert.Equal(t, []string{"1", "2"}, s.FindAll("k"))

	assert.Equal(t, 1, s.Remove("k", "1"))
	assert.Equal(t, []string{"2"}, s.FindAll("k"))

	// A miss on the key does not touch the cache.
	assert.Equal(t, 0, s.Remove("k", "nope"))
	assert.Equal(t, []string{"2"}, s.FindAll("k"))
}

func TestStoreWithoutCache(t *testing.T) {
	config := defaultConfig
	config.Cache.Enabled = false
	s := NewStore(&config)

	s.Insert("k", "v")
	assert.Equal(t, []string{"v"}, s.FindAll("k"))
	assert.Equal(t, 0, s.Stats().CachedKeys)
}

func TestStoreFilterShortCircuit(t *testing.T) {
	config := defaultConfig
	// A one-bit filter says "maybe" for everything once a key is added, so
	// lookups must still be answered exactly by the tree.
	config.Filter.Bits = 1
	config.Filter.Hashes = 1
	s := NewStore(&config)

	assert.Equal(t, []string{}, s.FindAll("never"))
	assert.Equal(t, 0, s.Remove("never", "v"))

	s.Insert("present", "v")
	assert.Equal(t, []string{}, s.FindAll("never"))
	assert.Equal(t, []string{"v"}, s.FindAll("present"))
}

func TestStoreStats(t *testing.T) {
	config := defaultConfig
	s := NewStore(&config)

	empty := s.Stats()
	assert.Equal(t, StoreStats{}, empty)

	for i := 0; i < 7; i++ {
		s.Insert(strconv.Itoa(i), "v")
	}
	stats := s.Stats()
	assert.Equal(t, 7, stats.Size)
	assert.Equal(t, "0", stats.MinKey)
	assert.Equal(t, "6", stats.MaxKey)
	assert.LessOrEqual(t, stats.Height, 6)
	require.NoError(t, s.Verify())
}

func TestStoreConcurrentAccess(t *testing.T) {
	config := defaultConfig
	s := NewStore(&config)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := strconv.Itoa(i % 20)
				s.Insert(k, strconv.Itoa(w))
				s.FindAll(k)
				if i%3 == 0 {
					s.Remove(k, strconv.Itoa(w))
				}
			}
		}(w)
	}
	wg.Wait()

	require.NoError(t, s.Verify())
}

func TestStoreTeardown(t *testing.T) {
	config := defaultConfig
	s := NewStore(&config)
	s.Insert("k", "v")
	s.FindAll("k")
	s.Teardown()

	assert.Panics(t, func() { s.Insert("k", "v") })
}
