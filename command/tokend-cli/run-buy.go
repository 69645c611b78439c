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

func runBuy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	buyer, err := parseAccount("buyer", c.String("buyer"), m.testnet)
	if nil != err {
		return err
	}

	tokenId, err := parseTokenId(c.String("token"))
	if nil != err {
		return err
	}

	bid := c.Uint64("bid")
	if 0 == bid {
		return fmt.Errorf("missing bid price")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "buyer: %s\n", buyer)
		fmt.Fprintf(m.e, "token: %s\n", tokenId)
		fmt.Fprintf(m.e, "bid: %d\n", bid)
	}

	inst, shutdown, err := openRegistry(m)
	if nil != err {
		return err
	}
	defer shutdown()

	err = registry.Buy(buyer, tokenId, bid)
	if nil != err {
		return err
	}

	printJson(m.w, map[string]interface{}{
		"token_id": tokenId.String(),
		"buyer":    buyer.String(),
		"paid":     bid,
		"balance":  inst.ledger.BalanceOf(buyer),
	})
	return nil
}
