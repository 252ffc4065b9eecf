// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bookchain/bookchaind/background"
	"github.com/bookchain/bookchaind/fixtures"
	"github.com/bookchain/bookchaind/owner"
)

func TestAny(t *testing.T) {
	d := owner.Any()

	ok, err := d.Exists("anybody")
	assert.Nil(t, err, "exists error")
	assert.True(t, ok, "non-empty ref")

	ok, _ = d.Exists("")
	assert.False(t, ok, "empty ref")
}

func TestStatic(t *testing.T) {
	s := owner.NewStatic(owner.Owner{Id: "U1", Address: "alice@example.com"})

	ok, err := s.Exists("U1")
	assert.Nil(t, err, "exists error")
	assert.True(t, ok, "registered owner")

	ok, _ = s.Exists("U2")
	assert.False(t, ok, "unregistered owner")

	s.Add(owner.Owner{Id: "U2", Address: "bob@example.com"})
	ok, _ = s.Exists("U2")
	assert.True(t, ok, "added owner")

	o, found := s.Lookup("U2")
	assert.True(t, found, "lookup")
	assert.Equal(t, "bob@example.com", o.Address, "address")
	assert.Equal(t, 2, s.Count(), "count")
}

func writeFile(t *testing.T, name string, content string) {
	// write then rename so a reader never sees a partial file
	tmp := name + ".tmp"
	err := ioutil.WriteFile(tmp, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write file error: %s", err)
	}
	err = os.Rename(tmp, name)
	if nil != err {
		t.Fatalf("rename file error: %s", err)
	}
}

func TestFile(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "owners-")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "owners.txt")
	writeFile(t, name, "# id address\nU1 alice@example.com\n\nU2   bob@example.com\n")

	f, err := owner.NewFile(logger.New("owner"), name)
	assert.Nil(t, err, "new file error")
	assert.Equal(t, 2, f.Count(), "owner count")

	ok, _ := f.Exists("U2")
	assert.True(t, ok, "U2 exists")
	ok, _ = f.Exists("U3")
	assert.False(t, ok, "U3 exists")

	p := background.Start(background.Processes{f}, nil)
	defer p.Stop()

	// allow the watcher to start
	time.Sleep(100 * time.Millisecond)

	writeFile(t, name, "U1 alice@example.com\nU3 carol@example.com\n")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if ok, _ := f.Exists("U3"); ok {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	ok, _ = f.Exists("U3")
	assert.True(t, ok, "reload did not add U3")
	ok, _ = f.Exists("U2")
	assert.False(t, ok, "reload did not remove U2")
}

func TestFileInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "owners-")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "owners.txt")
	writeFile(t, name, "U1\n")

	_, err = owner.NewFile(logger.New("owner"), name)
	assert.NotNil(t, err, "malformed line accepted")

	_, err = owner.NewFile(logger.New("owner"), filepath.Join(dir, "missing.txt"))
	assert.NotNil(t, err, "missing file accepted")

	// a bad edit keeps the previous owners
	writeFile(t, name, "U1 alice@example.com\n")
	f, err := owner.NewFile(logger.New("owner"), name)
	assert.Nil(t, err, "new file error")

	writeFile(t, name, "U1 alice@example.com extra\n")
	assert.NotNil(t, f.Reload(), "bad reload accepted")
	ok, _ := f.Exists("U1")
	assert.True(t, ok, "owners lost on bad reload")
}
