// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/fixtures"
	"github.com/bookchain/bookchaind/storage"
	"github.com/bookchain/bookchaind/storage/mocks"
)

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one(NEW)"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

// fill a pool with the same sequence of puts and deletes
func fill(t *testing.T, p storage.Handle) {
	puts := []stringElement{
		{"key-one", "data-one"},
		{"key-two", "data-two"},
		{"key-remove-me", "to be deleted"},
		{"key-three", "data-three"},
		{"key-one", "data-one"},
		{"key-four", "data-four"},
		{"key-delete-this", "to be deleted"},
		{"key-five", "data-five"},
		{"key-six", "data-six"},
		{"key-seven", "data-seven"},
		{"key-one", "data-one(NEW)"},
	}
	for _, e := range puts {
		assert.Nil(t, p.Put([]byte(e.key), []byte(e.value)), "put: %s", e.key)
	}
	assert.Nil(t, p.Delete([]byte("key-remove-me")), "delete")
	assert.Nil(t, p.Delete([]byte("key-delete-this")), "delete")
}

func checkPool(t *testing.T, p storage.Handle) {
	data, err := storage.NewFetchCursor(p).Fetch(20)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements, data, "pool contents")

	value, err := p.Get([]byte("key-two"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("data-two"), value, "get value")

	value, err = p.Get([]byte("/nonexistant"))
	assert.Nil(t, err, "missing key must not be an error")
	assert.Nil(t, value, "missing key value")

	found, err := p.Has([]byte("key-six"))
	assert.Nil(t, err, "has error")
	assert.True(t, found, "has existing key")

	found, err = p.Has([]byte("key-remove-me"))
	assert.Nil(t, err, "has error")
	assert.False(t, found, "has deleted key")

	last, found, err := p.LastElement()
	assert.Nil(t, err, "last element error")
	assert.True(t, found, "last element found")
	assert.Equal(t, expectedElements[len(expectedElements)-1], last, "last element")
}

func checkPaging(t *testing.T, p storage.Handle) {
	cursor := storage.NewFetchCursor(p)

	all := []storage.Element{}
	for {
		data, err := cursor.Fetch(3)
		assert.Nil(t, err, "fetch error")
		if 0 == len(data) {
			break
		}
		all = append(all, data...)
	}
	assert.Equal(t, expectedElements, all, "paged contents")

	data, err := storage.NewFetchCursor(p).Seek([]byte("key-s")).Fetch(2)
	assert.Nil(t, err, "seek fetch error")
	assert.Equal(t, expectedElements[3:5], data, "seek contents")

	n := 0
	err = storage.NewFetchCursor(p).Map(func(key []byte, value []byte) error {
		assert.Equal(t, expectedElements[n].Key, key, "map key: %d", n)
		n += 1
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, len(expectedElements), n, "map count")
}

func TestLevelDBPool(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, name, cleanup := fixtures.OpenDatabase(t)
	defer cleanup()

	p := db.TestData

	_, found, err := p.LastElement()
	assert.Nil(t, err, "last element error")
	assert.False(t, found, "pool was not empty")

	fill(t, p)
	checkPool(t, p)
	checkPaging(t, p)

	// data survives a restart
	assert.Nil(t, db.Close(), "close error")
	db, err = storage.Open(logger.New(fixtures.LogCategory), name, storage.ReadOnly)
	assert.Nil(t, err, "reopen error")
	checkPool(t, db.TestData)
	db.Close()
}

func TestBadgerPool(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, _, cleanup := fixtures.OpenDatabase(t)
	defer cleanup()

	p := db.Transactions

	_, found, err := p.LastElement()
	assert.Nil(t, err, "last element error")
	assert.False(t, found, "pool was not empty")

	fill(t, p)
	checkPool(t, p)
	checkPaging(t, p)

	// pools sharing a database do not see each other
	data, err := storage.NewFetchCursor(db.AssetIndex).Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(data), "index pool not empty")
}

// keys with leading zero bytes must page without skipping
func TestCursorLeadingZeros(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, _, cleanup := fixtures.OpenDatabase(t)
	defer cleanup()

	keys := [][]byte{
		{0x00, 0x00, 0x01},
		{0x00, 0x00, 0x01, 0x00},
		{0x00, 0x00, 0x02},
		{0x00, 0x01, 0x00},
	}
	for _, p := range []storage.Handle{db.TestData, db.AssetIndex} {
		for _, k := range keys {
			assert.Nil(t, p.Put(k, []byte{0x42}), "put: %x", k)
		}

		cursor := storage.NewFetchCursor(p)
		for i, k := range keys {
			data, err := cursor.Fetch(1)
			assert.Nil(t, err, "fetch error")
			if assert.Equal(t, 1, len(data), "fetch: %d", i) {
				assert.Equal(t, k, data[0].Key, "key: %d", i)
			}
		}
		data, err := cursor.Fetch(1)
		assert.Nil(t, err, "fetch error")
		assert.Equal(t, 0, len(data), "extra data")
	}
}

func TestBatch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, _, cleanup := fixtures.OpenDatabase(t)
	defer cleanup()

	assert.Nil(t, db.Pending.Put([]byte("gone"), []byte("x")), "put")

	batch := db.Assets.NewBatch()
	batch.Put(db.Assets, []byte("a1"), []byte("asset"))
	batch.Put(db.Pending, []byte("t1"), []byte("record"))
	batch.Delete(db.Pending, []byte("gone"))
	assert.Equal(t, 3, batch.Len(), "batch length")

	// nothing visible before commit
	value, err := db.Assets.Get([]byte("a1"))
	assert.Nil(t, err, "get error")
	assert.Nil(t, value, "uncommitted write visible")

	assert.Nil(t, batch.Commit(), "commit error")

	value, _ = db.Assets.Get([]byte("a1"))
	assert.Equal(t, []byte("asset"), value, "asset")
	value, _ = db.Pending.Get([]byte("t1"))
	assert.Equal(t, []byte("record"), value, "pending")
	found, _ := db.Pending.Has([]byte("gone"))
	assert.False(t, found, "deleted in batch")
}

func TestBatchDatabaseMismatch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db1, _, cleanup1 := fixtures.OpenDatabase(t)
	defer cleanup1()
	db2, _, cleanup2 := fixtures.OpenDatabase(t)
	defer cleanup2()

	batch := db1.Assets.NewBatch()
	batch.Put(db1.Assets, []byte("a1"), []byte("asset"))
	batch.Put(db2.Pending, []byte("t1"), []byte("record"))
	assert.Equal(t, fault.ErrDatabaseMismatch, batch.Commit(), "mismatch not detected")

	value, _ := db1.Assets.Get([]byte("a1"))
	assert.Nil(t, value, "partial batch written")
}

func TestClosedDatabase(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, _, cleanup := fixtures.OpenDatabase(t)
	defer cleanup()

	p := db.TestData
	db.Close()

	_, err := p.Get([]byte("key"))
	assert.True(t, fault.IsErrStorage(err), "closed ledger: %v", err)

	err = db.Transactions.Put([]byte("key"), []byte("value"))
	assert.True(t, fault.IsErrStorage(err), "closed audit: %v", err)
}

func TestOpenReadOnlyMissing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := storage.Open(logger.New(fixtures.LogCategory), "testing/does-not-exist", storage.ReadOnly)
	assert.True(t, fault.IsErrStorage(err), "missing database opened: %v", err)

	_, err = storage.Open(nil, "testing/x", storage.ReadWrite)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger accepted")
}

func TestCursorErrors(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)

	page := []storage.Element{
		{Key: []byte{0x01}, Value: []byte("one")},
		{Key: []byte{0x02}, Value: []byte("two")},
	}
	h.EXPECT().Fetch(nil, 2).Return(page, nil).Times(1)
	h.EXPECT().Fetch([]byte{0x02, 0x00}, 2).Return(nil, fault.ErrStorageUnavailable).Times(1)

	cursor := storage.NewFetchCursor(h)
	data, err := cursor.Fetch(2)
	assert.Nil(t, err, "first fetch")
	assert.Equal(t, page, data, "first page")

	_, err = cursor.Fetch(2)
	assert.Equal(t, fault.ErrStorageUnavailable, err, "error not propagated")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")

	var nilCursor *storage.FetchCursor
	_, err = nilCursor.Fetch(1)
	assert.Equal(t, fault.ErrInvalidCursor, err, "nil cursor")
}
