// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/hashmint/tokend/account"
	"github.com/hashmint/tokend/fault"
	"github.com/hashmint/tokend/storage"
	"github.com/hashmint/tokend/tokenid"
)

// List - all token ids currently held by an owner
//
// a missing record is an empty list, not an error
func List(trx storage.Transaction, owner *account.Account) ([]tokenid.Digest, error) {
	buffer := trx.Get(storage.Pool.OwnerList, owner.Bytes())
	if nil == buffer {
		return []tokenid.Digest{}, nil
	}
	return unpackList(buffer)
}

// Count - number of tokens currently held by an owner
func Count(trx storage.Transaction, owner *account.Account) (uint64, error) {
	list, err := List(trx, owner)
	if nil != err {
		return 0, err
	}
	return uint64(len(list)), nil
}

// CurrentlyOwns - check if an owner holds a specific token
func CurrentlyOwns(trx storage.Transaction, owner *account.Account, tokenId tokenid.Digest) (bool, error) {
	list, err := List(trx, owner)
	if nil != err {
		return false, err
	}
	return indexOf(list, tokenId) >= 0, nil
}

// TryAppend - add a token id to an owner list
//
// the capacity limit is checked before the list grows; on failure the
// list is left untouched
func TryAppend(trx storage.Transaction, owner *account.Account, tokenId tokenid.Digest, limit uint64) error {
	list, err := List(trx, owner)
	if nil != err {
		return err
	}

	if uint64(len(list)) >= limit {
		return fault.ErrOwnerCapacityExceeded
	}

	list = append(list, tokenId)
	trx.Put(storage.Pool.OwnerList, owner.Bytes(), packList(list))
	return nil
}

// TryRemove - take a token id out of an owner list
//
// the last entry is swapped into the vacated slot; an empty list is
// deleted rather than stored
func TryRemove(trx storage.Transaction, owner *account.Account, tokenId tokenid.Digest) error {
	list, err := List(trx, owner)
	if nil != err {
		return err
	}

	i := indexOf(list, tokenId)
	if i < 0 {
		return fault.ErrNotOwnedItem
	}

	last := len(list) - 1
	list[i] = list[last]
	list = list[:last]

	if 0 == len(list) {
		trx.Delete(storage.Pool.OwnerList, owner.Bytes())
	} else {
		trx.Put(storage.Pool.OwnerList, owner.Bytes(), packList(list))
	}
	return nil
}
