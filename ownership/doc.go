// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - maintain the per-owner token index
//
// Each owner has a single record holding the packed list of token ids
// currently held.  The list is bounded; every append checks the
// capacity limit before growing it.  Removal swaps the last entry into
// the vacated slot, so removal is constant time but list order is not
// preserved across removals.
//
// All operations act through a storage transaction so a failing
// registry operation leaves the index untouched.
package ownership
