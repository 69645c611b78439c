// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hashmint/tokend/configuration"
	"github.com/hashmint/tokend/fault"
)

const sampleConfiguration = `
local M = {}

M.data_directory = "."

M.database = {
    directory = "data",
    name = "testnet",
}

M.maximum_tokens_per_owner = 5
M.minimum_balance = 10
M.random_seed = "deadbeef"

M.genesis = {
    {
        owner = "eZpxjNL9pXF1GtGh1mpzqFLTepLfqZjaMzM1xWHsr952S4LLf6",
        dna = "000102030405060708090a0b0c0d0e0f",
    },
}

M.balances = {
    {
        owner = "eZpxjNL9pXF1GtGh1mpzqFLTepLfqZjaMzM1xWHsr952S4LLf6",
        amount = 1000,
    },
}

M.logging = {
    directory = "log",
    file = "test.log",
    size = 1048576,
    count = 20,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func writeConfiguration(t *testing.T, text string) (string, func()) {
	t.Helper()

	dir, err := ioutil.TempDir("", "tokend-configuration")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	fileName := filepath.Join(dir, "tokend.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0o600)
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestGetConfiguration(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, sampleConfiguration)
	defer cleanup()

	config, err := configuration.GetConfiguration(fileName)
	assert.NoError(t, err, "parse configuration")

	dir, _ := filepath.Split(fileName)

	assert.Equal(t, filepath.Clean(dir), filepath.Clean(config.DataDirectory), "data directory")
	assert.Equal(t, uint64(5), config.MaximumTokensPerOwner, "token limit")
	assert.Equal(t, uint64(10), config.MinimumBalance, "minimum balance")
	assert.Equal(t, "deadbeef", config.RandomSeed, "random seed")

	assert.True(t, filepath.IsAbs(config.Database.Directory), "database directory absolute")
	assert.Equal(t, "testnet", config.Database.Name, "database name")
	assert.True(t, filepath.IsAbs(config.Logging.Directory), "log directory absolute")

	assert.Equal(t, 1, len(config.Genesis), "genesis entries")
	assert.Equal(t, "000102030405060708090a0b0c0d0e0f", config.Genesis[0].DNA, "genesis dna")
	assert.Equal(t, 1, len(config.Balances), "balance entries")
	assert.Equal(t, uint64(1000), config.Balances[0].Amount, "balance amount")

	assert.Equal(t, "info", config.Logging.Levels["DEFAULT"], "log level")
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
local M = {}
M.data_directory = "."
return M
`)
	defer cleanup()

	config, err := configuration.GetConfiguration(fileName)
	assert.NoError(t, err, "parse configuration")

	assert.Equal(t, uint64(100), config.MaximumTokensPerOwner, "default token limit")
	assert.Equal(t, uint64(1), config.MinimumBalance, "default minimum balance")
	assert.Equal(t, "tokend", config.Database.Name, "default database name")
	assert.Equal(t, 0, len(config.Genesis), "no genesis entries")
}

func TestGetConfigurationRejectsZeroLimit(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.maximum_tokens_per_owner = 0
return M
`)
	defer cleanup()

	_, err := configuration.GetConfiguration(fileName)
	assert.Error(t, err, "zero token limit")
}

func TestGetConfigurationMissingFile(t *testing.T) {
	_, err := configuration.GetConfiguration("/nonexistent/absent.conf")
	assert.Error(t, err, "missing file")
}

func TestParseConfigurationFileRequiresStructPointer(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, sampleConfiguration)
	defer cleanup()

	var m map[string]interface{}
	err := configuration.ParseConfigurationFile(fileName, m)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-pointer destination")

	err = configuration.ParseConfigurationFile(fileName, &m)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "pointer to non-struct")
}
