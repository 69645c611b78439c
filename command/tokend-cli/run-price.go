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

func runPrice(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := parseAccount("owner", c.String("owner"), m.testnet)
	if nil != err {
		return err
	}

	tokenId, err := parseTokenId(c.String("token"))
	if nil != err {
		return err
	}

	var price *uint64
	if !c.Bool("clear") {
		p := c.Uint64("price")
		if 0 == p {
			return fmt.Errorf("missing price, use --clear to delist")
		}
		price = &p
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "token: %s\n", tokenId)
	}

	_, shutdown, err := openRegistry(m)
	if nil != err {
		return err
	}
	defer shutdown()

	err = registry.SetPrice(owner, tokenId, price)
	if nil != err {
		return err
	}

	result := map[string]interface{}{
		"token_id": tokenId.String(),
		"owner":    owner.String(),
	}
	if nil == price {
		result["for_sale"] = false
	} else {
		result["for_sale"] = true
		result["price"] = *price
	}
	printJson(m.w, result)
	return nil
}
