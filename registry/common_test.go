// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/hashmint/tokend/account"
	"github.com/hashmint/tokend/currency"
	"github.com/hashmint/tokend/messagebus"
	"github.com/hashmint/tokend/random"
	"github.com/hashmint/tokend/registry"
	"github.com/hashmint/tokend/storage"
	"github.com/hashmint/tokend/tokenid"
)

const (
	databaseFileName = "testing-registry"
	logDirectory     = "testing-log"
)

var (
	alice = &account.Account{
		AccountInterface: &account.ED25519Account{
			Test: true,
			PublicKey: []byte{
				0x9f, 0xc4, 0x86, 0xa2, 0x53, 0x4f, 0x17, 0xe3,
				0x67, 0x07, 0xfa, 0x4b, 0x95, 0x3e, 0x3b, 0x34,
				0x00, 0xe2, 0x72, 0x9f, 0x65, 0x61, 0x16, 0xdd,
				0x7b, 0x01, 0x8d, 0xf3, 0x46, 0x98, 0xbd, 0xc2,
			},
		},
	}
	bob = &account.Account{
		AccountInterface: &account.ED25519Account{
			Test: true,
			PublicKey: []byte{
				0x55, 0xb2, 0x98, 0x88, 0x17, 0xf7, 0xea, 0xec,
				0x37, 0x74, 0x1b, 0x82, 0x44, 0x71, 0x63, 0xca,
				0xaa, 0x5a, 0x9d, 0xb2, 0xb6, 0xf0, 0xce, 0x72,
				0x26, 0x26, 0x33, 0x8e, 0x5e, 0x3f, 0xd7, 0xf7,
			},
		},
	}
	carol = &account.Account{
		AccountInterface: &account.ED25519Account{
			Test: true,
			PublicKey: []byte{
				0x1c, 0x3b, 0x5c, 0x7d, 0x9e, 0xaf, 0xc0, 0xd1,
				0xe2, 0xf3, 0x04, 0x15, 0x26, 0x37, 0x48, 0x59,
				0x6a, 0x7b, 0x8c, 0x9d, 0xae, 0xbf, 0xd0, 0xe1,
				0xf2, 0x03, 0x14, 0x25, 0x36, 0x47, 0x58, 0x69,
			},
		},
	}
)

func removeFiles() {
	os.RemoveAll(databaseFileName + "-data.leveldb")
	os.RemoveAll(logDirectory)
}

// fixed logical time for reproducible dna
func fixedNumber() uint64 { return 1 }

// bring up storage and the registry with the given collaborators
func setup(t *testing.T, limit uint64, ledger currency.Ledger) {
	removeFiles()

	_ = os.Mkdir(logDirectory, 0o700)
	err := logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      50000,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	if nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}

	err = storage.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	source := random.NewSeededSource([]byte("registry testing"), fixedNumber)
	clock := registry.NewOperationClock(1)

	err = registry.Initialise(ledger, source, clock, limit)
	if nil != err {
		t.Fatalf("registry initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	messagebus.Bus.Events.Drain()
	_ = registry.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// check the token store and the ownership index agree for one token
func checkAgreement(t *testing.T, tokenId tokenid.Digest, owner *account.Account) {
	t.Helper()

	token, err := registry.Show(tokenId)
	if nil != err {
		t.Fatalf("show error: %s", err)
	}
	if !token.Owner.Equal(owner) {
		t.Fatalf("stored owner: %s  expected: %s", token.Owner, owner)
	}

	list, err := registry.Owned(owner)
	if nil != err {
		t.Fatalf("owned error: %s", err)
	}
	for _, id := range list {
		if tokenId == id {
			return
		}
	}
	t.Fatalf("token: %s missing from owner index of: %s", tokenId, owner)
}
