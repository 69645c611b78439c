// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// Handle - an individual table of the database
//
// the unexported operations are the staged forms used only through a
// Transaction; this also pins all implementations into this package
type Handle interface {
	Put(key []byte, value []byte)
	PutN(key []byte, value uint64)
	Get(key []byte) []byte
	GetN(key []byte) (uint64, bool)
	Has(key []byte) bool
	Delete(key []byte)
	NewFetchCursor() *FetchCursor
	put(key []byte, value []byte)
	putN(key []byte, value uint64)
	remove(key []byte)
}

// PoolHandle - the structure of a pool handle
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess DataAccess
}

// Element - a key/value pair from a cursor fetch
type Element struct {
	Key   []byte
	Value []byte
}

// prefix the key with the table prefix byte
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bypassing any active transaction
func (p *PoolHandle) Put(key []byte, value []byte) {
	p.dataAccess.DirectPut(p.prefixKey(key), value)
}

// PutN - direct store of an 8 byte big endian value
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

// put - stage a key/value into the current transaction
func (p *PoolHandle) put(key []byte, value []byte) {
	p.dataAccess.Put(p.prefixKey(key), value)
}

// putN - stage an 8 byte big endian value into the current transaction
func (p *PoolHandle) putN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.put(key, buffer)
}

// Delete - remove a key bypassing any active transaction
func (p *PoolHandle) Delete(key []byte) {
	p.dataAccess.DirectDelete(p.prefixKey(key))
}

// remove - stage a delete into the current transaction
func (p *PoolHandle) remove(key []byte) {
	p.dataAccess.Delete(p.prefixKey(key))
}

// Get - read a value for a given key
//
// this returns the value or nil if the key does not exist, staged
// writes of an active transaction are visible
func (p *PoolHandle) Get(key []byte) []byte {
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("storage.Get", err)
	return value
}

// GetN - read a key and decode as an 8 byte big endian value
//
// second return is false if the record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if 8 != len(buffer) {
		logger.Panicf("storage.GetN: %x invalid N size: %d", key, len(buffer))
	}
	return binary.BigEndian.Uint64(buffer), true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	value, err := p.dataAccess.Has(p.prefixKey(key))
	logger.PanicIfError("storage.Has", err)
	return value
}

// NewFetchCursor - create a cursor for iterating over this table
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return newFetchCursor(p, &ldb_util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	})
}
