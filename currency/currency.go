// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package currency - the currency ledger collaborator
//
// The registry only needs two capabilities from the currency side: a
// balance check and a transfer.  The transfer is treated as opaque: on
// any error the registry aborts the whole operation, so ledger and
// registry can never disagree about a completed purchase.
package currency

import (
	"github.com/hashmint/tokend/account"
)

//go:generate mockgen -destination=mocks/ledger.go -package=mocks -source=currency.go Ledger

// Ledger - the operations the registry requires from a currency ledger
type Ledger interface {

	// BalanceOf - the spendable balance of an account, zero for an
	// account never seen
	BalanceOf(owner *account.Account) uint64

	// Transfer - move amount from one account to another
	//
	// with keepAlive set the transfer must not leave the paying
	// account below the minimum viable balance
	Transfer(from *account.Account, to *account.Account, amount uint64, keepAlive bool) error
}
