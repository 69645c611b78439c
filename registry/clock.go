// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync/atomic"
)

// OperationClock - a clock counting completed operations
//
// the batch number advances on Tick and the operation index counts
// mints inside the current batch
type OperationClock struct {
	number uint64
	index  uint64
}

// NewOperationClock - a clock starting at a given batch number
func NewOperationClock(start uint64) *OperationClock {
	return &OperationClock{
		number: start,
	}
}

// Number - the current batch number
func (clock *OperationClock) Number() uint64 {
	return atomic.LoadUint64(&clock.number)
}

// OperationIndex - the next operation slot, advancing on each call
func (clock *OperationClock) OperationIndex() uint64 {
	return atomic.AddUint64(&clock.index, 1) - 1
}

// Tick - move to the next batch, resetting the operation index
func (clock *OperationClock) Tick() {
	atomic.AddUint64(&clock.number, 1)
	atomic.StoreUint64(&clock.index, 0)
}
