// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - daemon configuration from a Lua file
//
// the configuration file is executed as a Lua script and must return
// a single table; see the sample in the repository root
package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/hashmint/tokend/util"
)

// basic defaults (directories and files are relative to the
// "data_directory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabaseName     = "tokend"

	defaultLogDirectory = "log"
	defaultLogFile      = "tokend.log"
	defaultLogCount     = 10          // number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultMaximumTokensPerOwner = 100
	defaultMinimumBalance        = 1
)

// LoglevelMap - holds the log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// DatabaseType - location of the data store
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// GenesisToken - one bootstrap token as configured
type GenesisToken struct {
	Owner string `gluamapper:"owner" json:"owner"` // base58 account
	DNA   string `gluamapper:"dna" json:"dna"`     // 32 hex characters
}

// BalanceEntry - one bootstrap ledger deposit
type BalanceEntry struct {
	Owner  string `gluamapper:"owner" json:"owner"` // base58 account
	Amount uint64 `gluamapper:"amount" json:"amount"`
}

// Configuration - the daemon configuration
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	MaximumTokensPerOwner uint64 `gluamapper:"maximum_tokens_per_owner" json:"maximum_tokens_per_owner"`
	MinimumBalance        uint64 `gluamapper:"minimum_balance" json:"minimum_balance"`
	RandomSeed            string `gluamapper:"random_seed" json:"random_seed"` // empty = system randomness

	Genesis  []GenesisToken `gluamapper:"genesis" json:"genesis"`
	Balances []BalanceEntry `gluamapper:"balances" json:"balances"`

	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabaseName,
		},

		MaximumTokensPerOwner: defaultMaximumTokensPerOwner,
		MinimumBalance:        defaultMinimumBalance,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	err = ParseConfigurationFile(configurationFileName, options)
	if nil != err {
		return nil, err
	}

	if 0 == options.MaximumTokensPerOwner {
		return nil, fmt.Errorf("maximum_tokens_per_owner cannot be zero")
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	fileInfo, err := os.Stat(options.DataDirectory)
	if nil != err {
		return nil, err
	}
	if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths
	mayBeAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range mayBeAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	return options, nil
}

// DatabasePath - the path prefix handed to the storage layer
func (config *Configuration) DatabasePath() string {
	return filepath.Join(config.Database.Directory, config.Database.Name)
}
