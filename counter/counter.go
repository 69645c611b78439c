// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - persistent monotonic counters
//
// counters live in the counter pool as 8 byte big endian values and
// are mutated only through a storage transaction
package counter

import (
	"math"

	"github.com/hashmint/tokend/fault"
	"github.com/hashmint/tokend/storage"
)

// Counter - a named persistent count
type Counter struct {
	key []byte
}

// Minted - total number of tokens ever minted
var Minted = Counter{key: []byte("minted")}

// New - a counter with an arbitrary name (for tests)
func New(name string) Counter {
	return Counter{key: []byte(name)}
}

// Current - the count as stored, zero when never incremented
func (counter Counter) Current(trx storage.Transaction) uint64 {
	n, _ := trx.GetN(storage.Pool.Counters, counter.key)
	return n
}

// Increment - checked increment returning the new count
//
// the count saturates rather than wrapping: at the maximum value the
// increment is refused and the stored count is unchanged
func (counter Counter) Increment(trx storage.Transaction) (uint64, error) {
	n := counter.Current(trx)
	if math.MaxUint64 == n {
		return 0, fault.ErrCounterOverflow
	}

	n += 1
	trx.PutN(storage.Pool.Counters, counter.key, n)
	return n, nil
}
