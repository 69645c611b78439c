// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package random - the randomness oracle contract
//
// The registry never reaches for an ambient randomness source; a
// Source is injected at initialisation so the surrounding system can
// supply its own oracle and tests can replay a fixed sequence.
package random

import (
	"crypto/rand"
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Length - number of bytes in one random draw
const Length = 32

// Source - a randomness oracle
//
// the draw is keyed by a domain separation tag and is refreshed once
// per logical time step
type Source interface {
	Random(tag []byte) [Length]byte
}

// system source backed by crypto/rand
type systemSource struct{}

// NewSystemSource - randomness from the operating system
func NewSystemSource() Source {
	return systemSource{}
}

func (systemSource) Random(tag []byte) [Length]byte {
	var draw [Length]byte
	_, err := rand.Read(draw[:])
	logger.PanicIfError("random.Read", err)
	return draw
}

// deterministic source for replay and testing
type seededSource struct {
	seed   []byte
	number func() uint64
}

// NewSeededSource - deterministic draws derived from a fixed seed and
// the current logical time step
func NewSeededSource(seed []byte, number func() uint64) Source {
	return &seededSource{
		seed:   seed,
		number: number,
	}
}

func (s *seededSource) Random(tag []byte) [Length]byte {
	step := make([]byte, 8)
	binary.BigEndian.PutUint64(step, s.number())

	payload := make([]byte, 0, len(s.seed)+len(step)+len(tag))
	payload = append(payload, s.seed...)
	payload = append(payload, step...)
	payload = append(payload, tag...)

	return sha3.Sum256(payload)
}
