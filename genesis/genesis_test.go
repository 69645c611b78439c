// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genesis_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/hashmint/tokend/account"
	"github.com/hashmint/tokend/currency"
	"github.com/hashmint/tokend/dna"
	"github.com/hashmint/tokend/genesis"
	"github.com/hashmint/tokend/messagebus"
	"github.com/hashmint/tokend/random"
	"github.com/hashmint/tokend/registry"
	"github.com/hashmint/tokend/storage"
)

const (
	databaseFileName = "testing-genesis"
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
)

func removeFiles() {
	os.RemoveAll(databaseFileName + "-data.leveldb")
	os.RemoveAll(logDirectory)
}

func setup(t *testing.T) {
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

	source := random.NewSeededSource([]byte("genesis testing"), func() uint64 { return 1 })
	err = registry.Initialise(currency.NewPool(0), source, registry.NewOperationClock(0), 10)
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

// test bootstrap mints in order and only once
func TestBootstrap(t *testing.T) {
	setup(t)
	defer teardown(t)

	items := []genesis.Item{
		{Owner: alice, DNA: dna.DNA{1}},
		{Owner: alice, DNA: dna.DNA{2}},
		{Owner: bob, DNA: dna.DNA{3}},
	}

	err := genesis.Bootstrap(items)
	if nil != err {
		t.Fatalf("bootstrap error: %s", err)
	}

	n, _ := registry.TotalMinted()
	if 3 != n {
		t.Fatalf("total minted: %d  expected: 3", n)
	}

	list, _ := registry.Owned(alice)
	if 2 != len(list) {
		t.Errorf("alice owns: %d  expected: 2", len(list))
	}
	list, _ = registry.Owned(bob)
	if 1 != len(list) {
		t.Errorf("bob owns: %d  expected: 1", len(list))
	}

	// a second bootstrap is a no-op
	err = genesis.Bootstrap(items)
	if nil != err {
		t.Fatalf("repeat bootstrap error: %s", err)
	}
	n, _ = registry.TotalMinted()
	if 3 != n {
		t.Errorf("total minted after repeat: %d  expected: 3", n)
	}
}

// test a duplicate bootstrap entry fails fast
func TestBootstrapDuplicate(t *testing.T) {
	setup(t)
	defer teardown(t)

	items := []genesis.Item{
		{Owner: alice, DNA: dna.DNA{1}},
		{Owner: alice, DNA: dna.DNA{1}},
	}

	err := genesis.Bootstrap(items)
	if nil == err {
		t.Fatalf("duplicate bootstrap entry unexpectedly accepted")
	}
}
