// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	testingDirName   = "testing"
	testDatabaseName = "test-hashlist.leveldb"
)

// remove all files created by test
func removeTestFiles() {
	_ = os.RemoveAll(testingDirName)
}

// configure for testing
func setupTestStorage(t *testing.T) {
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

	err = Initialise(filepath.Join(testingDirName, testDatabaseName), ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardownTestStorage() {
	Finalise()
	logger.Finalise()
	removeTestFiles()
}
