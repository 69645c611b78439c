// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the token registry state machine
//
// The registry owns all mutation of token records: mint, set price,
// transfer and buy.  Every operation runs inside a single storage
// transaction: all validation happens first and any failure aborts
// with the store untouched.  The buy operation additionally spans the
// currency ledger; the ledger transfer is sequenced before the
// registry commit so a ledger failure can still abort the whole
// purchase.
//
// One message is published on the event queue per completed
// operation, after its transaction commits.
package registry
