// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/hashmint/tokend/fault"
)

// DataAccess - operations on one underlying database
//
// the exported write operations here are the staged form used by
// transactions; DirectPut and DirectDelete bypass the batch
type DataAccess interface {
	Begin() error
	Commit() error
	Abort()
	InUse() bool
	Put(key []byte, value []byte)
	Delete(key []byte)
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	DirectPut(key []byte, value []byte)
	DirectDelete(key []byte)
	Iterator(searchRange *ldb_util.Range) iterator.Iterator
}

// AccessData - batch and cache over a single LevelDB handle
type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache Cache) DataAccess {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: batch,
		cache: cache,
	}
}

// Begin - mark the access as owned by a transaction
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrTransactionAlreadyInUse
	}
	d.inUse = true
	return nil
}

// Commit - write the staged batch to the database
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
	return err
}

// Abort - discard the staged batch
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

// InUse - is a transaction currently active
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()

	return d.inUse
}

// Put - stage a put into the batch
func (d *AccessData) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

// Delete - stage a delete into the batch
func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), []byte{})
	d.batch.Delete(key)
}

// Get - read a value, staged operations take precedence
func (d *AccessData) Get(key []byte) ([]byte, error) {
	value, found, removed := d.cache.Get(string(key))
	if removed {
		return nil, leveldb.ErrNotFound
	}
	if found {
		return value, nil
	}
	return d.db.Get(key, nil)
}

// Has - check key existence, staged operations take precedence
func (d *AccessData) Has(key []byte) (bool, error) {
	_, found, removed := d.cache.Get(string(key))
	if removed {
		return false, nil
	}
	if found {
		return true, nil
	}
	return d.db.Has(key, nil)
}

// DirectPut - write a value immediately, bypassing any batch
func (d *AccessData) DirectPut(key []byte, value []byte) {
	_ = d.db.Put(key, value, nil)
}

// DirectDelete - remove a key immediately, bypassing any batch
func (d *AccessData) DirectDelete(key []byte) {
	_ = d.db.Delete(key, nil)
}

// Iterator - iterate committed records over a key range
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
