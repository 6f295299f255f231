// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package list_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashlistd/list"
	"github.com/bitmark-inc/hashlistd/storage"
)

const (
	testingDirName   = "testing"
	testDatabaseName = "test-list.leveldb"
)

// remove all files created by test
func removeTestFiles() {
	_ = os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) {
	removeTestFiles()

	if err := os.MkdirAll(testingDirName, 0700); nil != err {
		t.Fatalf("mkdir error: %s", err)
	}

	err := logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "test.log",
		Size:      50000,
		Count:     10,
	})
	if nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}

	openStorage(t)
}

// open the database and start the list
func openStorage(t *testing.T) {
	err := storage.Initialise(filepath.Join(testingDirName, testDatabaseName), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = list.Initialise(storage.Pool.Nodes, storage.Pool.ListState)
	if nil != err {
		t.Fatalf("list initialise error: %s", err)
	}
}

// stop the list and close the database, keeping its files
func closeStorage(t *testing.T) {
	err := list.Finalise()
	if nil != err {
		t.Fatalf("list finalise error: %s", err)
	}
	storage.Finalise()
}

// post test cleanup
func teardown(t *testing.T) {
	closeStorage(t)
	logger.Finalise()
	removeTestFiles()
}
