// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/hashmint/tokend/account"
	"github.com/hashmint/tokend/configuration"
	"github.com/hashmint/tokend/fault"
	"github.com/hashmint/tokend/currency"
	"github.com/hashmint/tokend/random"
	"github.com/hashmint/tokend/registry"
	"github.com/hashmint/tokend/storage"
	"github.com/hashmint/tokend/tokenid"
)

// runtime brought up for one command invocation
type instance struct {
	config *configuration.Configuration
	ledger *currency.Pool
}

// open the registry described by the configuration file
//
// the caller must shut down with the returned function
func openRegistry(m *metadata) (*instance, func(), error) {
	if "" == m.file {
		return nil, nil, fmt.Errorf("missing config-file option")
	}

	config, err := configuration.GetConfiguration(m.file)
	if nil != err {
		return nil, nil, err
	}

	err = logger.Initialise(config.Logging)
	if nil != err {
		return nil, nil, err
	}

	err = storage.Initialise(config.DatabasePath())
	if nil != err {
		logger.Finalise()
		return nil, nil, err
	}

	ledger := currency.NewPool(config.MinimumBalance)
	for _, entry := range config.Balances {
		owner, err := account.AccountFromBase58(entry.Owner)
		if nil != err {
			storage.Finalise()
			logger.Finalise()
			return nil, nil, err
		}
		err = ledger.Deposit(owner, entry.Amount)
		if nil != err {
			storage.Finalise()
			logger.Finalise()
			return nil, nil, err
		}
	}

	clock := registry.NewOperationClock(0)
	err = registry.Initialise(ledger, random.NewSystemSource(), clock, config.MaximumTokensPerOwner)
	if nil != err {
		storage.Finalise()
		logger.Finalise()
		return nil, nil, err
	}

	shutdown := func() {
		_ = registry.Finalise()
		storage.Finalise()
		logger.Finalise()
	}
	return &instance{config: config, ledger: ledger}, shutdown, nil
}

// decode a required base58 account option
//
// the account must belong to the network selected by the testnet flag
func parseAccount(name string, value string, testnet bool) (*account.Account, error) {
	if "" == value {
		return nil, fmt.Errorf("missing %s account", name)
	}
	owner, err := account.AccountFromBase58(value)
	if nil != err {
		return nil, fmt.Errorf("%s account: %q error: %s", name, value, err)
	}
	if owner.IsTesting() != testnet {
		return nil, fault.ErrWrongNetworkForPublicKey
	}
	return owner, nil
}

// decode a required hex token id option
func parseTokenId(value string) (tokenid.Digest, error) {
	if "" == value {
		return tokenid.Digest{}, fmt.Errorf("missing token id")
	}
	buffer, err := hex.DecodeString(value)
	if nil != err {
		return tokenid.Digest{}, fmt.Errorf("token id: %q error: %s", value, err)
	}
	var digest tokenid.Digest
	err = tokenid.DigestFromBytes(&digest, buffer)
	return digest, err
}

// printJson - print a json response to output stream
func printJson(handle io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(handle, "marshal error: %s\n", err)
		return
	}
	fmt.Fprintf(handle, "%s\n", b)
}

// printError - print an error as a json record
func printError(handle io.Writer, err error) {
	printJson(handle, map[string]string{
		"error": err.Error(),
	})
}
