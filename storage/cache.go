// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

const (
	cacheDefaultExpiration = 2 * time.Minute
	cacheCleanupInterval   = 5 * time.Minute
)

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

// shadow entry for a staged operation
type cacheEntry struct {
	op    dbOperation
	value []byte
}

// Cache - shadow of operations staged in a transaction batch
//
// a staged delete is remembered as well, so a read inside the same
// transaction cannot fall through to a value pending removal
type Cache interface {
	Get(key string) (value []byte, found bool, removed bool)
	Set(op dbOperation, key string, value []byte)
	Clear()
}

type dbCache struct {
	cache *cache.Cache
}

func newDBCache() Cache {
	return &dbCache{
		cache: cache.New(cacheDefaultExpiration, cacheCleanupInterval),
	}
}

func (c *dbCache) Get(key string) ([]byte, bool, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false, false
	}
	entry := obj.(cacheEntry)
	if dbDelete == entry.op {
		return nil, false, true
	}
	return entry.value, true, false
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	c.cache.Set(key, cacheEntry{op: op, value: value}, cache.DefaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
