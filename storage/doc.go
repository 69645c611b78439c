// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
// all backed by a single LevelDB database
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// The current tables are:
//
//	Tokens    'T' ⧺ token id       → packed token record
//	OwnerList 'L' ⧺ packed owner   → packed list of token ids
//	Counters  'N' ⧺ counter name   → 8 byte big endian count
//	TestData  'Z' ⧺ arbitrary key  → arbitrary value (unit tests only)
//
// Direct writes through a pool handle take effect immediately; writes
// through a transaction are staged in a batch, shadowed by a cache so
// later reads inside the same transaction see them, and only hit the
// database on Commit.  Abort discards the batch and the shadow cache.
package storage
