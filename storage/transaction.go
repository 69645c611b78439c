// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
)

// Transaction - all-or-nothing batch of writes across the pools
//
// a transaction holds the staged writes of one registry operation;
// nothing reaches the database until Commit, and Abort leaves the
// database exactly as it was
type Transaction interface {
	Begin() error
	Commit() error
	Abort()
	InUse() bool
	Put(h Handle, key []byte, value []byte)
	PutN(h Handle, key []byte, value uint64)
	Delete(h Handle, key []byte)
	Get(h Handle, key []byte) []byte
	GetN(h Handle, key []byte) (uint64, bool)
	Has(h Handle, key []byte) bool
}

// TransactionData - concrete transaction over the data accesses
type TransactionData struct {
	sync.Mutex
	inUse  bool
	access []DataAccess
}

func newTransaction(access []DataAccess) Transaction {
	return &TransactionData{
		inUse:  false,
		access: access,
	}
}

// Begin - claim the underlying accesses for this transaction
func (t *TransactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	for _, access := range t.access {
		err := access.Begin()
		if nil != err {
			return err
		}
	}
	t.inUse = true
	return nil
}

// Commit - flush every staged write to the database
func (t *TransactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	for _, access := range t.access {
		err := access.Commit()
		if nil != err {
			return err
		}
	}
	t.inUse = false
	return nil
}

// Abort - discard every staged write
func (t *TransactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	for _, access := range t.access {
		access.Abort()
	}
	t.inUse = false
}

// InUse - is the transaction active
func (t *TransactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()

	return t.inUse
}

// Put - stage a write into a pool
func (t *TransactionData) Put(h Handle, key []byte, value []byte) {
	h.put(key, value)
}

// PutN - stage an 8 byte big endian value into a pool
func (t *TransactionData) PutN(h Handle, key []byte, value uint64) {
	h.putN(key, value)
}

// Delete - stage a delete from a pool
func (t *TransactionData) Delete(h Handle, key []byte) {
	h.remove(key)
}

// Get - read a value through the transaction, staged writes included
func (t *TransactionData) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

// GetN - read an 8 byte big endian value through the transaction
func (t *TransactionData) GetN(h Handle, key []byte) (uint64, bool) {
	return h.GetN(key)
}

// Has - check key existence through the transaction
func (t *TransactionData) Has(h Handle, key []byte) bool {
	return h.Has(key)
}
