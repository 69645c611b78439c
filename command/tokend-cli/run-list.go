// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/hashmint/tokend/registry"
	"github.com/hashmint/tokend/tokenid"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	var after *tokenid.Digest
	if "" != c.String("after") {
		tokenId, err := parseTokenId(c.String("after"))
		if nil != err {
			return err
		}
		after = &tokenId
	}

	if m.verbose {
		fmt.Fprintf(m.e, "count: %d\n", count)
		if nil != after {
			fmt.Fprintf(m.e, "after: %s\n", after)
		}
	}

	_, shutdown, err := openRegistry(m)
	if nil != err {
		return err
	}
	defer shutdown()

	list, err := registry.List(after, count)
	if nil != err {
		return err
	}

	tokens := make([]map[string]interface{}, len(list))
	for i, entry := range list {
		token := map[string]interface{}{
			"token_id": entry.TokenId.String(),
			"dna":      entry.Token.DNA.String(),
			"owner":    entry.Token.Owner.String(),
			"for_sale": nil != entry.Token.Price,
		}
		if nil != entry.Token.Price {
			token["price"] = *entry.Token.Price
		}
		tokens[i] = token
	}

	printJson(m.w, map[string]interface{}{
		"tokens": tokens,
	})
	return nil
}
