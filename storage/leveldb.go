// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bookchain/bookchaind/fault"
)

// PoolHandle - a pool in a LevelDB database
type PoolHandle struct {
	prefix   byte
	limit    []byte
	database *leveldb.DB
}

func newPoolHandle(prefix byte, database *leveldb.DB) *PoolHandle {
	limit := []byte(nil)
	if prefix < 255 {
		limit = []byte{prefix + 1}
	}
	return &PoolHandle{
		prefix:   prefix,
		limit:    limit,
		database: database,
	}
}

func (p *PoolHandle) prefixKey(key []byte) []byte {
	return prefixKey(p.prefix, key)
}

func unavailable(operation string, err error) error {
	return errors.Wrapf(fault.ErrStorageUnavailable, "%s: %s", operation, err)
}

// Get - read a value for a given key
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	if nil != err {
		return nil, unavailable("pool.Get", err)
	}
	return value, nil
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	found, err := p.database.Has(p.prefixKey(key), nil)
	if nil != err {
		return false, unavailable("pool.Has", err)
	}
	return found, nil
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) error {
	err := p.database.Put(p.prefixKey(key), value, nil)
	if nil != err {
		return unavailable("pool.Put", err)
	}
	return nil
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) error {
	err := p.database.Delete(p.prefixKey(key), nil)
	if nil != err {
		return unavailable("pool.Delete", err)
	}
	return nil
}

// Fetch - return some elements starting from key
func (p *PoolHandle) Fetch(start []byte, count int) ([]Element, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	maxRange := ldb_util.Range{
		Start: p.prefixKey(start), // Start of key range, included in the range
		Limit: p.limit,            // Limit of key range, excluded from the range
	}

	iter := p.database.NewIterator(&maxRange, nil)

	results := make([]Element, 0, count)
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		results = append(results, makeElement(iter.Key(), iter.Value()))
		if len(results) >= count {
			break iterating
		}
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return nil, unavailable("pool.Fetch", err)
	}
	return results, nil
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool, error) {
	maxRange := ldb_util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	}

	iter := p.database.NewIterator(&maxRange, nil)

	found := false
	result := Element{}
	if iter.Last() {
		result = makeElement(iter.Key(), iter.Value())
		found = true
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return Element{}, false, unavailable("pool.LastElement", err)
	}
	return result, found, nil
}

// NewBatch - start an atomic group of writes on this pool's database
func (p *PoolHandle) NewBatch() *Batch {
	return &Batch{
		database: p.database,
		batch:    new(leveldb.Batch),
	}
}

// Batch - writes applied all together or not at all
type Batch struct {
	database *leveldb.DB
	batch    *leveldb.Batch
	err      error
}

// Put - queue a write to a pool of the batch's database
func (b *Batch) Put(p *PoolHandle, key []byte, value []byte) {
	if p.database != b.database {
		b.err = fault.ErrDatabaseMismatch
		return
	}
	b.batch.Put(p.prefixKey(key), value)
}

// Delete - queue a removal from a pool of the batch's database
func (b *Batch) Delete(p *PoolHandle, key []byte) {
	if p.database != b.database {
		b.err = fault.ErrDatabaseMismatch
		return
	}
	b.batch.Delete(p.prefixKey(key))
}

// Len - number of queued operations
func (b *Batch) Len() int {
	return b.batch.Len()
}

// Commit - write all queued operations
func (b *Batch) Commit() error {
	if nil != b.err {
		return b.err
	}
	err := b.database.Write(b.batch, nil)
	b.batch.Reset()
	if nil != err {
		return unavailable("batch.Commit", err)
	}
	return nil
}
