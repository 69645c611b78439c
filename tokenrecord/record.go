// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokenrecord

import (
	"encoding/binary"

	"github.com/hashmint/tokend/account"
	"github.com/hashmint/tokend/dna"
	"github.com/hashmint/tokend/fault"
	"github.com/hashmint/tokend/tokenid"
	"github.com/hashmint/tokend/util"
)

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	TokenDataTag = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// price flag values in the packed form
const (
	priceAbsent  = byte(0x00)
	pricePresent = byte(0x01)
)

// TokenData - the unpacked token record
//
// a nil Price means the token is not for sale
type TokenData struct {
	DNA   dna.DNA          `json:"dna"`             // hex
	Price *uint64          `json:"price,omitempty"` // nil = not for sale
	Owner *account.Account `json:"owner"`           // base58
}

// Pack - create the canonical packed form
//
// Pack Varint64(tag) ⧺ dna ⧺ price flag ⧺ [8 byte big endian price]
// ⧺ Varint64(owner length) ⧺ owner bytes
//
// the encoding is fixed independently of the in-memory layout so that
// token identifiers stay stable
func (token *TokenData) Pack() (Packed, error) {
	if nil == token.Owner {
		return nil, fault.ErrInvalidOwner
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(TokenDataTag))
	message = append(message, token.DNA[:]...)

	if nil == token.Price {
		message = append(message, priceAbsent)
	} else {
		priceBytes := make([]byte, 9)
		priceBytes[0] = pricePresent
		binary.BigEndian.PutUint64(priceBytes[1:], *token.Price)
		message = append(message, priceBytes...)
	}

	ownerBytes := token.Owner.Bytes()
	message = append(message, util.ToVarint64(uint64(len(ownerBytes)))...)
	message = append(message, ownerBytes...)

	return message, nil
}

// TokenId - the content hash of the packed record
//
// only the mint time hash is an identifier; the registry computes it
// once, before any price or ownership change
func (token *TokenData) TokenId() (tokenid.Digest, error) {
	packed, err := token.Pack()
	if nil != err {
		return tokenid.Digest{}, err
	}
	return tokenid.NewDigest(packed), nil
}

// Unpack - decode a canonical packed record
func (record Packed) Unpack() (*TokenData, error) {

	tag, tagLength := util.FromVarint64(record)
	if 0 == tagLength || TokenDataTag != TagType(tag) {
		return nil, fault.ErrNotTokenRecord
	}

	buffer := record[tagLength:]
	if len(buffer) < dna.Length+1 {
		return nil, fault.ErrNotTokenRecord
	}

	token := &TokenData{}
	err := dna.FromBytes(&token.DNA, buffer[:dna.Length])
	if nil != err {
		return nil, err
	}
	buffer = buffer[dna.Length:]

	switch buffer[0] {
	case priceAbsent:
		buffer = buffer[1:]
	case pricePresent:
		if len(buffer) < 9 {
			return nil, fault.ErrNotTokenRecord
		}
		price := binary.BigEndian.Uint64(buffer[1:9])
		token.Price = &price
		buffer = buffer[9:]
	default:
		return nil, fault.ErrNotTokenRecord
	}

	ownerLength, countLength := util.FromVarint64(buffer)
	if 0 == countLength {
		return nil, fault.ErrNotTokenRecord
	}
	buffer = buffer[countLength:]
	if uint64(len(buffer)) != ownerLength {
		return nil, fault.ErrNotTokenRecord
	}

	owner, err := account.AccountFromBytes(buffer)
	if nil != err {
		return nil, err
	}
	token.Owner = owner

	return token, nil
}
