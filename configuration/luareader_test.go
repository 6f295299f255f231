// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hashlistd/configuration"
	"github.com/bitmark-inc/hashlistd/fault"
)

type testConfiguration struct {
	DataDirectory string   `gluamapper:"data_directory"`
	Database      string   `gluamapper:"database"`
	Addresses     []string `gluamapper:"addresses"`
	Maximum       int      `gluamapper:"maximum"`
}

const testScript = `
local M = {}

M.data_directory = "/var/lib/test"
M.database = M.data_directory .. "/test.leveldb"
M.addresses = {
    "127.0.0.1:2150",
    "[::1]:2150",
}
M.maximum = 100

return M
`

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration-test")
	assert.NoError(t, err, "create temporary directory")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(testScript), 0600)
	assert.NoError(t, err, "write configuration file")

	config := testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.NoError(t, err, "parse configuration file")

	assert.Equal(t, "/var/lib/test", config.DataDirectory, "wrong data directory")
	assert.Equal(t, "/var/lib/test/test.leveldb", config.Database, "wrong database")
	assert.Equal(t, []string{"127.0.0.1:2150", "[::1]:2150"}, config.Addresses, "wrong addresses")
	assert.Equal(t, 100, config.Maximum, "wrong maximum")
}

func TestParseConfigurationFileRejectsNonPointer(t *testing.T) {
	config := testConfiguration{}
	err := configuration.ParseConfigurationFile("no-such-file", config)
	assert.Equal(t, fault.InvalidStructPointer, err, "wrong error")

	var nilConfig *testConfiguration
	err = configuration.ParseConfigurationFile("no-such-file", nilConfig)
	assert.Equal(t, fault.InvalidStructPointer, err, "wrong error")
}

func TestParseConfigurationFileMissingFile(t *testing.T) {
	config := testConfiguration{}
	err := configuration.ParseConfigurationFile("/no/such/file.conf", &config)
	assert.Error(t, err, "missing file must fail")
}
