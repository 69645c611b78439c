// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/hashmint/tokend/currency"
	"github.com/hashmint/tokend/fault"
	"github.com/hashmint/tokend/random"
)

// Clock - logical time for dna derivation
//
// Number is a monotonic batch counter and OperationIndex the position
// of the next operation inside the current batch; together with the
// randomness source they make minted dna reproducible
type Clock interface {
	Number() uint64
	OperationIndex() uint64
}

// globals for this module
type globalDataType struct {
	sync.Mutex // lock serialises all registry operations
	log        *logger.L
	ledger     currency.Ledger
	rand       random.Source
	clock      Clock
	limit      uint64

	// set once during initialise
	initialised bool
}

// global data
var globalData globalDataType

// Initialise - connect the registry to its collaborators
func Initialise(ledger currency.Ledger, source random.Source, clock Clock, maximumTokensPerOwner uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("registry")
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.log = log
	globalData.log.Info("starting…")

	globalData.ledger = ledger
	globalData.rand = source
	globalData.clock = clock
	globalData.limit = maximumTokensPerOwner

	globalData.initialised = true
	return nil
}

// Finalise - stop all registry background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.ledger = nil
	globalData.rand = nil
	globalData.clock = nil
	globalData.initialised = false
	return nil
}
