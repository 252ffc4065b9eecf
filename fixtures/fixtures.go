// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/bookchain/bookchaind/storage"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - log to a file in the test directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// OpenDatabase - fresh ledger and audit databases in a temporary
// directory, the returned function closes and removes them
func OpenDatabase(t *testing.T) (*storage.Database, string, func()) {
	tmp, err := ioutil.TempDir("", "bookchain-test-")
	if nil != err {
		t.Fatalf("create temporary directory error: %s", err)
	}

	name := filepath.Join(tmp, "test")
	db, err := storage.Open(logger.New(LogCategory), name, storage.ReadWrite)
	if nil != err {
		os.RemoveAll(tmp)
		t.Fatalf("storage open error: %s", err)
	}

	return db, name, func() {
		db.Close()
		os.RemoveAll(tmp)
	}
}
