// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/hashmint/tokend/account"
	"github.com/hashmint/tokend/configuration"
	"github.com/hashmint/tokend/currency"
	"github.com/hashmint/tokend/dna"
	"github.com/hashmint/tokend/genesis"
	"github.com/hashmint/tokend/messagebus"
	"github.com/hashmint/tokend/random"
	"github.com/hashmint/tokend/registry"
	"github.com/hashmint/tokend/storage"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--version] --config-file=FILE", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0o600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	log.Infof("database: %q", theConfiguration.DatabasePath())

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.DatabasePath())
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// the currency ledger with its bootstrap balances
	ledger := currency.NewPool(theConfiguration.MinimumBalance)
	for i, entry := range theConfiguration.Balances {
		owner, err := account.AccountFromBase58(entry.Owner)
		if nil != err {
			log.Criticalf("balance: %d owner: %q error: %s", i, entry.Owner, err)
			exitwithstatus.Message("balance: %d owner: %q error: %s", i, entry.Owner, err)
		}
		err = ledger.Deposit(owner, entry.Amount)
		if nil != err {
			log.Criticalf("balance: %d deposit error: %s", i, err)
			exitwithstatus.Message("balance: %d deposit error: %s", i, err)
		}
	}

	// randomness for dna derivation; a configured seed makes every
	// mint reproducible for testing networks
	var source random.Source
	clock := registry.NewOperationClock(0)
	if "" == theConfiguration.RandomSeed {
		source = random.NewSystemSource()
	} else {
		seed, err := hex.DecodeString(theConfiguration.RandomSeed)
		if nil != err {
			exitwithstatus.Message("random_seed: %q error: %s", theConfiguration.RandomSeed, err)
		}
		source = random.NewSeededSource(seed, clock.Number)
	}

	// start the registry
	log.Info("initialise registry")
	err = registry.Initialise(ledger, source, clock, theConfiguration.MaximumTokensPerOwner)
	if nil != err {
		log.Criticalf("registry initialise error: %s", err)
		exitwithstatus.Message("registry initialise error: %s", err)
	}
	defer registry.Finalise()

	// bootstrap tokens for a fresh store
	items := make([]genesis.Item, len(theConfiguration.Genesis))
	for i, token := range theConfiguration.Genesis {
		owner, err := account.AccountFromBase58(token.Owner)
		if nil != err {
			log.Criticalf("genesis: %d owner: %q error: %s", i, token.Owner, err)
			exitwithstatus.Message("genesis: %d owner: %q error: %s", i, token.Owner, err)
		}
		var d dna.DNA
		err = d.UnmarshalText([]byte(token.DNA))
		if nil != err {
			log.Criticalf("genesis: %d dna: %q error: %s", i, token.DNA, err)
			exitwithstatus.Message("genesis: %d dna: %q error: %s", i, token.DNA, err)
		}
		items[i] = genesis.Item{Owner: owner, DNA: d}
	}
	err = genesis.Bootstrap(items)
	if nil != err {
		log.Criticalf("genesis bootstrap error: %s", err)
		exitwithstatus.Message("genesis bootstrap error: %s", err)
	}

	// log completed operations from the event queue
	done := make(chan struct{})
	go func() {
		eventLog := logger.New("events")
		for m := range messagebus.Bus.Events.Chan() {
			eventLog.Infof("event: %s parameters: %d", m.Command, len(m.Parameters))
		}
		close(done)
	}()

	// wait for CTRL-C before shutting down to allow manual testing
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)

	messagebus.Bus.Events.Release()
	<-done

	log.Info("shutting down…")
}
