// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/hashmint/tokend/account"
	"github.com/hashmint/tokend/fault"
	"github.com/hashmint/tokend/storage"
	"github.com/hashmint/tokend/tokenid"
	"github.com/hashmint/tokend/tokenrecord"
)

// SetPrice - change the sale price of a held token
//
// only the current owner may change the price; a nil price takes the
// token off sale, a listed price must be positive; setting equals the
// stored value is permitted and still counts as a completed operation
func SetPrice(owner *account.Account, tokenId tokenid.Digest, price *uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	if nil != price && 0 == *price {
		return fault.ErrInvalidPrice
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

	token.Price = price
	err = writeToken(trx, tokenId, token)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("price set: %s by: %s", tokenId, owner)
	publish(EventPriceSet, tokenId[:], owner.Bytes(), packPrice(price))

	return nil
}

// fetch and unpack a token record
func readToken(trx storage.Transaction, tokenId tokenid.Digest) (*tokenrecord.TokenData, error) {
	packed := trx.Get(storage.Pool.Tokens, tokenId[:])
	if nil == packed {
		return nil, fault.ErrTokenNotFound
	}
	return tokenrecord.Packed(packed).Unpack()
}

// pack and store a token record under its fixed id
func writeToken(trx storage.Transaction, tokenId tokenid.Digest, token *tokenrecord.TokenData) error {
	packed, err := token.Pack()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Tokens, tokenId[:], packed)
	return nil
}
