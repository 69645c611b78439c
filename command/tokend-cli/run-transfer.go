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

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := parseAccount("owner", c.String("owner"), m.testnet)
	if nil != err {
		return err
	}

	receiver, err := parseAccount("receiver", c.String("receiver"), m.testnet)
	if nil != err {
		return err
	}

	tokenId, err := parseTokenId(c.String("token"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
		fmt.Fprintf(m.e, "token: %s\n", tokenId)
	}

	_, shutdown, err := openRegistry(m)
	if nil != err {
		return err
	}
	defer shutdown()

	err = registry.Transfer(owner, receiver, tokenId)
	if nil != err {
		return err
	}

	printJson(m.w, map[string]string{
		"token_id": tokenId.String(),
		"from":     owner.String(),
		"to":       receiver.String(),
	})
	return nil
}
