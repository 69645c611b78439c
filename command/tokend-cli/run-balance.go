// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := parseAccount("owner", c.String("owner"), m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
	}

	inst, shutdown, err := openRegistry(m)
	if nil != err {
		return err
	}
	defer shutdown()

	printJson(m.w, map[string]interface{}{
		"owner":   owner.String(),
		"balance": inst.ledger.BalanceOf(owner),
	})
	return nil
}
