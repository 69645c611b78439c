// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/hashmint/tokend/account"
	"github.com/hashmint/tokend/counter"
	"github.com/hashmint/tokend/fault"
	"github.com/hashmint/tokend/ownership"
	"github.com/hashmint/tokend/storage"
	"github.com/hashmint/tokend/tokenid"
	"github.com/hashmint/tokend/tokenrecord"
)

// Show - read a single token record
func Show(tokenId tokenid.Digest) (*tokenrecord.TokenData, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	packed := storage.Pool.Tokens.Get(tokenId[:])
	if nil == packed {
		return nil, fault.ErrTokenNotFound
	}
	return tokenrecord.Packed(packed).Unpack()
}

// ListEntry - one token in a full enumeration
type ListEntry struct {
	TokenId tokenid.Digest
	Token   *tokenrecord.TokenData
}

// List - enumerate up to count committed tokens in id order
//
// a nil after starts from the beginning, otherwise enumeration resumes
// just past the given id so repeated calls page through the store
func List(after *tokenid.Digest, count int) ([]ListEntry, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	cursor := storage.Pool.Tokens.NewFetchCursor()
	if nil != after {
		cursor.Seek(append(after[:], 0x00))
	}

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	list := make([]ListEntry, 0, len(elements))
	for _, element := range elements {
		var entry ListEntry
		err = tokenid.DigestFromBytes(&entry.TokenId, element.Key)
		if nil != err {
			return nil, err
		}
		entry.Token, err = tokenrecord.Packed(element.Value).Unpack()
		if nil != err {
			return nil, err
		}
		list = append(list, entry)
	}
	return list, nil
}

// Owned - all token ids currently held by an account
func Owned(owner *account.Account) ([]tokenid.Digest, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	if nil == owner {
		return nil, fault.ErrInvalidOwner
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	defer trx.Abort()

	return ownership.List(trx, owner)
}

// TotalMinted - number of tokens ever minted, survivors and all
func TotalMinted() (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.ErrNotInitialised
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}
	defer trx.Abort()

	return counter.Minted.Current(trx), nil
}
