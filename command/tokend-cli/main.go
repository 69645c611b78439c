// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	file    string
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "tokend-cli"
	app.Usage = "operate on a local token registry"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "testnet, t",
			Usage: " generate testing network accounts",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " tokend configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate an account key pair, printed only",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "mint",
			Usage:     "mint a new token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account `ACCOUNT`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "price",
			Usage:     "set or clear the sale price of a token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "token, k",
					Value: "",
					Usage: "*token id `HEX`",
				},
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: " asking price `AMOUNT`",
				},
				cli.BoolFlag{
					Name:  "clear, x",
					Usage: " take the token off sale",
				},
			},
			Action: runPrice,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a token to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*receiving account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "token, k",
					Value: "",
					Usage: "*token id `HEX`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "buy",
			Usage:     "buy a listed token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "buyer, b",
					Value: "",
					Usage: "*buying account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "token, k",
					Value: "",
					Usage: "*token id `HEX`",
				},
				cli.Uint64Flag{
					Name:  "bid, p",
					Value: 0,
					Usage: "*bid price `AMOUNT`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "owned",
			Usage:     "list tokens held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account `ACCOUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "list",
			Usage:     "enumerate token records in id order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 100,
					Usage: " maximum records to fetch `N`",
				},
				cli.StringFlag{
					Name:  "after, a",
					Value: "",
					Usage: " resume after this token id `HEX`",
				},
			},
			Action: runList,
		},
		{
			Name:      "show",
			Usage:     "show one token record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, k",
					Value: "",
					Usage: "*token id `HEX`",
				},
			},
			Action: runShow,
		},
		{
			Name:      "balance",
			Usage:     "show the configured ledger balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account `ACCOUNT`",
				},
			},
			Action: runBalance,
		},
	}

	app.Metadata = map[string]interface{}{
		"config": &metadata{
			e: app.ErrWriter,
			w: app.Writer,
		},
	}

	app.Before = func(c *cli.Context) error {
		m := c.App.Metadata["config"].(*metadata)
		m.file = c.GlobalString("config-file")
		m.testnet = c.GlobalBool("testnet")
		m.verbose = c.GlobalBool("verbose")
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
