// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genesis - bootstrap tokens for a fresh data store
//
// the configured (owner, dna) pairs are minted in configuration order
// exactly once: a store that has ever minted is left alone
package genesis

import (
	"github.com/bitmark-inc/logger"

	"github.com/hashmint/tokend/account"
	"github.com/hashmint/tokend/dna"
	"github.com/hashmint/tokend/registry"
)

// Item - one bootstrap token
type Item struct {
	Owner *account.Account
	DNA   dna.DNA
}

// Bootstrap - mint the bootstrap set into an empty store
//
// any failure is returned immediately; the caller treats it as fatal
// since a partial bootstrap would be minted again on restart
func Bootstrap(items []Item) error {
	log := logger.New("genesis")

	minted, err := registry.TotalMinted()
	if nil != err {
		return err
	}
	if 0 != minted {
		log.Infof("store already has %d mints, skipping bootstrap", minted)
		return nil
	}

	for i, item := range items {
		tokenId, err := registry.MintWithDNA(item.Owner, item.DNA)
		if nil != err {
			log.Errorf("bootstrap mint: %d dna: %s error: %s", i, item.DNA, err)
			return err
		}
		log.Infof("bootstrap mint: %d token: %s owner: %s", i, tokenId, item.Owner)
	}

	return nil
}
