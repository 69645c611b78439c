// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/hashmint/tokend/registry"
)

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := parseAccount("owner", c.String("owner"), m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
	}

	_, shutdown, err := openRegistry(m)
	if nil != err {
		return err
	}
	defer shutdown()

	tokenId, err := registry.Mint(owner)
	if nil != err {
		return err
	}

	printJson(m.w, map[string]string{
		"token_id": tokenId.String(),
		"owner":    owner.String(),
	})
	return nil
}
