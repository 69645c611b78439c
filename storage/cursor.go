// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/hashmint/tokend/fault"
)

// FetchCursor - position when fetching blocks of records from a table
type FetchCursor struct {
	pool        *PoolHandle
	maxRange    ldb_util.Range
	searchRange ldb_util.Range
}

func newFetchCursor(pool *PoolHandle, searchRange *ldb_util.Range) *FetchCursor {
	return &FetchCursor{
		pool:        pool,
		maxRange:    *searchRange,
		searchRange: *searchRange,
	}
}

// Seek - position the cursor just after a specific key
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.searchRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - fetch up to count records, advancing the cursor past them
//
// only committed records are visible; staged transaction writes are
// not seen by a cursor
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.searchRange)
	results := make([]Element, 0, count)
	n := 0
loop:
	for iter.Next() {
		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		results = append(results, Element{
			Key:   dataKey,
			Value: dataValue,
		})
		n += 1
		if n >= count {
			break loop
		}
	}
	iter.Release()
	err := iter.Error()
	if nil != err {
		return nil, err
	}

	if 0 != len(results) {
		lastKey := results[len(results)-1].Key
		cursor.Seek(append(lastKey, 0x00))
	}
	return results, nil
}

// Map - run a function on all remaining records in cursor order
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.searchRange)

	defer iter.Release()
	for iter.Next() {
		key := iter.Key()
		value := iter.Value()
		err := f(key[1:], value)
		if nil != err {
			return err
		}
	}
	return iter.Error()
}
