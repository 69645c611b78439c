// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ed25519"

	"github.com/hashmint/tokend/account"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return err
	}

	owner := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      m.testnet,
			PublicKey: publicKey,
		},
	}

	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", owner)
	}

	printJson(m.w, map[string]string{
		"account":     owner.String(),
		"private_key": hex.EncodeToString(privateKey),
	})
	return nil
}
