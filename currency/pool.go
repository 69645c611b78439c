// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"math"
	"sync"

	"github.com/hashmint/tokend/account"
	"github.com/hashmint/tokend/fault"
)

// Pool - an in-process ledger keyed by packed account bytes
type Pool struct {
	sync.RWMutex
	minimum  uint64
	balances map[string]uint64
}

// NewPool - create a ledger with a minimum viable balance
func NewPool(minimum uint64) *Pool {
	return &Pool{
		minimum:  minimum,
		balances: make(map[string]uint64),
	}
}

// Deposit - credit an account, used for bootstrap and tests
func (pool *Pool) Deposit(owner *account.Account, amount uint64) error {
	pool.Lock()
	defer pool.Unlock()

	key := string(owner.Bytes())
	if pool.balances[key] > math.MaxUint64-amount {
		return fault.ErrBalanceOverflow
	}
	pool.balances[key] += amount
	return nil
}

// BalanceOf - the spendable balance of an account
func (pool *Pool) BalanceOf(owner *account.Account) uint64 {
	pool.RLock()
	defer pool.RUnlock()

	return pool.balances[string(owner.Bytes())]
}

// Transfer - move amount between accounts
//
// either the whole transfer happens or nothing does
func (pool *Pool) Transfer(from *account.Account, to *account.Account, amount uint64, keepAlive bool) error {
	pool.Lock()
	defer pool.Unlock()

	fromKey := string(from.Bytes())
	toKey := string(to.Bytes())

	balance := pool.balances[fromKey]
	if balance < amount {
		return fault.ErrInsufficientFunds
	}

	remaining := balance - amount
	if keepAlive && remaining < pool.minimum {
		return fault.ErrKeepAliveLimit
	}

	if pool.balances[toKey] > math.MaxUint64-amount {
		return fault.ErrBalanceOverflow
	}

	pool.balances[fromKey] = remaining
	pool.balances[toKey] += amount
	return nil
}
