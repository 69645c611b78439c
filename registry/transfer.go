// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/hashmint/tokend/account"
	"github.com/hashmint/tokend/fault"
	"github.com/hashmint/tokend/ownership"
	"github.com/hashmint/tokend/storage"
	"github.com/hashmint/tokend/tokenid"
	"github.com/hashmint/tokend/tokenrecord"
)

// Transfer - give a held token to another account
//
// the recipient must have capacity; the price is cleared so a token
// never arrives pre-listed at a stale price
func Transfer(owner *account.Account, to *account.Account, tokenId tokenid.Digest) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	if nil == to {
		return fault.ErrInvalidOwner
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	token, err := readToken(trx, tokenId)
	if nil != err {
		trx.Abort()
		return err
	}

	if !token.Owner.Equal(owner) {
		trx.Abort()
		return fault.ErrNotTokenOwner
	}

	if to.Equal(owner) {
		trx.Abort()
		return fault.ErrTransferToSelf
	}

	err = moveToken(trx, tokenId, token, to)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("transferred: %s from: %s to: %s", tokenId, owner, to)
	publish(EventTransferred, tokenId[:], owner.Bytes(), to.Bytes())

	return nil
}

// move a token to a new holder inside an open transaction
//
// the caller has already established that the stored owner authorised
// the move and that the recipient differs from the holder
func moveToken(trx storage.Transaction, tokenId tokenid.Digest, token *tokenrecord.TokenData, to *account.Account) error {

	count, err := ownership.Count(trx, to)
	if nil != err {
		return err
	}
	if count >= globalData.limit {
		return fault.ErrOwnerCapacityExceeded
	}

	from := token.Owner

	err = ownership.TryRemove(trx, from, tokenId)
	if fault.ErrNotOwnedItem == err {
		// the token store and the ownership index disagree
		globalData.log.Criticalf("move: %s: store owner: %s missing from index", tokenId, from)
		logger.Panicf("move: %s: store owner: %s missing from index", tokenId, from)
	}
	if nil != err {
		return err
	}

	token.Owner = to
	token.Price = nil

	err = writeToken(trx, tokenId, token)
	if nil != err {
		return err
	}

	return ownership.TryAppend(trx, to, tokenId, globalData.limit)
}
