// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/hashmint/tokend/account"
	"github.com/hashmint/tokend/counter"
	"github.com/hashmint/tokend/dna"
	"github.com/hashmint/tokend/fault"
	"github.com/hashmint/tokend/ownership"
	"github.com/hashmint/tokend/storage"
	"github.com/hashmint/tokend/tokenid"
	"github.com/hashmint/tokend/tokenrecord"
)

// Mint - create a token with freshly derived dna
//
// the token id is the content hash of the newly packed record; a hash
// collision with an existing token refuses the mint rather than
// overwriting the survivor
func Mint(owner *account.Account) (tokenid.Digest, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return tokenid.Digest{}, fault.ErrNotInitialised
	}

	d := dna.Generate(globalData.rand, globalData.clock.OperationIndex(), globalData.clock.Number())
	return mint(owner, d)
}

// MintWithDNA - create a token with caller-supplied dna
//
// used by the genesis bootstrap where dna values are fixed in the
// configuration
func MintWithDNA(owner *account.Account, d dna.DNA) (tokenid.Digest, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return tokenid.Digest{}, fault.ErrNotInitialised
	}

	return mint(owner, d)
}

// internal mint, caller holds the registry lock
func mint(owner *account.Account, d dna.DNA) (tokenid.Digest, error) {
	if nil == owner {
		return tokenid.Digest{}, fault.ErrInvalidOwner
	}

	token := &tokenrecord.TokenData{
		DNA:   d,
		Price: nil,
		Owner: owner,
	}

	packed, err := token.Pack()
	if nil != err {
		return tokenid.Digest{}, err
	}
	tokenId := tokenid.NewDigest(packed)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return tokenid.Digest{}, err
	}

	_, err = counter.Minted.Increment(trx)
	if nil != err {
		trx.Abort()
		return tokenid.Digest{}, err
	}

	if trx.Has(storage.Pool.Tokens, tokenId[:]) {
		trx.Abort()
		return tokenid.Digest{}, fault.ErrTokenAlreadyExists
	}

	err = ownership.TryAppend(trx, owner, tokenId, globalData.limit)
	if nil != err {
		trx.Abort()
		return tokenid.Digest{}, err
	}

	trx.Put(storage.Pool.Tokens, tokenId[:], packed)

	err = trx.Commit()
	if nil != err {
		return tokenid.Digest{}, err
	}

	globalData.log.Infof("minted: %s for: %s", tokenId, owner)
	publish(EventCreated, tokenId[:], owner.Bytes())

	return tokenId, nil
}
