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

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenId, err := parseTokenId(c.String("token"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "token: %s\n", tokenId)
	}

	_, shutdown, err := openRegistry(m)
	if nil != err {
		return err
	}
	defer shutdown()

	token, err := registry.Show(tokenId)
	if nil != err {
		return err
	}

	result := map[string]interface{}{
		"token_id": tokenId.String(),
		"dna":      token.DNA.String(),
		"owner":    token.Owner.String(),
		"for_sale": nil != token.Price,
	}
	if nil != token.Price {
		result["price"] = *token.Price
	}
	printJson(m.w, result)
	return nil
}
