// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"testing"

	"github.com/hashmint/tokend/storage"
)

// test that committed writes reach the database
func TestTransactionCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	key := []byte("trx-key")
	value := []byte("trx-value")

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	trx.Put(p, key, value)

	// staged write is visible inside the transaction
	if back := trx.Get(p, key); !bytes.Equal(value, back) {
		t.Errorf("staged value: %q  expected: %q", back, value)
	}
	if !trx.Has(p, key) {
		t.Errorf("staged key not visible")
	}

	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	if back := p.Get(key); !bytes.Equal(value, back) {
		t.Errorf("committed value: %q  expected: %q", back, value)
	}
}

// test that aborted writes never reach the database
func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	key := []byte("abort-key")

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	trx.Put(p, key, []byte("discarded"))
	trx.PutN(p, []byte("abort-count"), 99)
	trx.Abort()

	if p.Has(key) {
		t.Errorf("aborted write reached the database")
	}
	if n, ok := p.GetN([]byte("abort-count")); ok {
		t.Errorf("aborted counter reached the database: %d", n)
	}
}

// test that a staged delete hides the committed value
func TestTransactionDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	key := []byte("delete-key")
	value := []byte("delete-value")

	p.Put(key, value)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	trx.Delete(p, key)

	if trx.Has(p, key) {
		t.Errorf("deleted key still visible inside transaction")
	}
	if back := trx.Get(p, key); nil != back {
		t.Errorf("deleted key returned: %q", back)
	}

	trx.Abort()

	// abort restores the original value
	if back := p.Get(key); !bytes.Equal(value, back) {
		t.Errorf("value after abort: %q  expected: %q", back, value)
	}
}

// test that only one transaction can be active
func TestTransactionExclusion(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	_, err = storage.NewDBTransaction()
	if nil == err {
		t.Fatalf("second concurrent transaction unexpectedly allowed")
	}

	trx.Abort()

	// released after abort
	trx, err = storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error after abort: %s", err)
	}
	trx.Abort()
}
