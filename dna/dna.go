// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dna - token identity payloads
//
// The dna is a 16 byte opaque value fixed at mint time.  For normal
// mints it is derived with BLAKE2b-128 from a randomness draw, the
// operation index within the current batch and the logical time
// counter, so identical external inputs always reproduce the same dna.
package dna

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/logger"

	"github.com/hashmint/tokend/fault"
	"github.com/hashmint/tokend/random"
)

// Length - number of bytes in a dna value
const Length = 16

// domain separation tag for the randomness draw
var domainTag = []byte("dna")

// DNA - the identity payload embedded in a token
type DNA [Length]byte

// Generate - derive a dna value
//
// pure function of the three inputs; no failure mode
func Generate(source random.Source, operationIndex uint64, blockNumber uint64) DNA {
	draw := source.Random(domainTag)

	payload := make([]byte, random.Length+16)
	copy(payload, draw[:])
	binary.BigEndian.PutUint64(payload[random.Length:], operationIndex)
	binary.BigEndian.PutUint64(payload[random.Length+8:], blockNumber)

	hasher, err := blake2b.New(Length, nil)
	logger.PanicIfError("dna.Generate", err)

	hasher.Write(payload)

	var d DNA
	copy(d[:], hasher.Sum(nil))
	return d
}

// String - convert a dna to hex string for use by the fmt package (for %s)
func (d DNA) String() string {
	return hex.EncodeToString(d[:])
}

// MarshalText - convert dna to hex text
func (d DNA) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(d))
	buffer := make([]byte, size)
	hex.Encode(buffer, d[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a dna
func (d *DNA) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidDnaLength
	}
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.ErrInvalidDnaLength
	}
	copy(d[:], buffer)
	return nil
}

// FromBytes - convert and validate a binary byte slice to a dna
func FromBytes(d *DNA, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidDnaLength
	}
	copy(d[:], buffer)
	return nil
}
