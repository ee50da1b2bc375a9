// cache.go

/**
 * Copyright 2025 (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// QueryCache memoises FindAll results per key. Writers must Invalidate the
// key they touched; entries also expire after the configured duration.
type QueryCache struct {
	c          *cache.Cache
	expiration time.Duration
}

// NewQueryCache creates a cache whose entries live for expiration and whose
// expired entries are swept every cleanup.
func NewQueryCache(expiration, cleanup time.Duration) *QueryCache {
	return &QueryCache{
		c:          cache.New(expiration, cleanup),
		expiration: expiration,
	}
}

// Get returns a copy of the cached values for key.
func (qc *QueryCache) Get(key string) ([]string, bool) {
	val, ok := qc.c.Get(key)
	if !ok {
		return nil, false
	}
	values := val.([]string)
	return append([]string{}, values...), true
}

func (qc *QueryCache) Set(key string, values []string) {
	// Set instead of Add so a refreshed lookup overwrites a stale entry
	qc.c.Set(key, append([]string{}, values...), qc.expiration)
}

func (qc *QueryCache) Invalidate(key string) {
	qc.c.Delete(key)
}

func (qc *QueryCache) Flush() {
	qc.c.Flush()
}

func (qc *QueryCache) Len() int {
	return qc.c.ItemCount()
}
