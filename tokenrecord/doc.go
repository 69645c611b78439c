// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tokenrecord - the token record and its canonical encoding
//
// A token is a (dna, price, owner) triple.  The dna is fixed at mint
// time; the price and owner fields are mutated in place by later
// operations; records are never deleted.
//
// The packed form defined here serves two purposes: it is the byte
// sequence fed to SHA3-256 to derive the token identifier at mint
// time, and it is the value stored in the token store, so the
// encoding must never change once data exists.
package tokenrecord
