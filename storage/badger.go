// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/logger"
	"github.com/bookchain/bookchaind/fault"
)

// BadgerHandle - a pool in a Badger database
type BadgerHandle struct {
	prefix   byte
	database *badger.DB
}

func newBadgerHandle(prefix byte, database *badger.DB) *BadgerHandle {
	return &BadgerHandle{
		prefix:   prefix,
		database: database,
	}
}

func (p *BadgerHandle) prefixKey(key []byte) []byte {
	return prefixKey(p.prefix, key)
}

// Get - read a value for a given key
func (p *BadgerHandle) Get(key []byte) ([]byte, error) {
	var value []byte
	err := p.database.View(func(txn *badger.Txn) error {
		item, err := txn.Get(p.prefixKey(key))
		if nil != err {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if nil != err {
		return nil, unavailable("badger.Get", err)
	}
	return value, nil
}

// Has - check if a key exists
func (p *BadgerHandle) Has(key []byte) (bool, error) {
	err := p.database.View(func(txn *badger.Txn) error {
		_, err := txn.Get(p.prefixKey(key))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if nil != err {
		return false, unavailable("badger.Has", err)
	}
	return true, nil
}

// Put - store a key/value bytes pair to the database
func (p *BadgerHandle) Put(key []byte, value []byte) error {
	err := p.database.Update(func(txn *badger.Txn) error {
		return txn.Set(p.prefixKey(key), value)
	})
	if nil != err {
		return unavailable("badger.Put", err)
	}
	return nil
}

// Delete - remove a key from the database
func (p *BadgerHandle) Delete(key []byte) error {
	err := p.database.Update(func(txn *badger.Txn) error {
		return txn.Delete(p.prefixKey(key))
	})
	if nil != err {
		return unavailable("badger.Delete", err)
	}
	return nil
}

// Fetch - return some elements starting from key
func (p *BadgerHandle) Fetch(start []byte, count int) ([]Element, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := p.database.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte{p.prefix}
		iter := txn.NewIterator(opts)
		defer iter.Close()

		for iter.Seek(p.prefixKey(start)); iter.ValidForPrefix(opts.Prefix); iter.Next() {
			item := iter.Item()
			value, err := item.ValueCopy(nil)
			if nil != err {
				return err
			}
			results = append(results, makeElement(item.Key(), value))
			if len(results) >= count {
				break
			}
		}
		return nil
	})
	if nil != err {
		return nil, unavailable("badger.Fetch", err)
	}
	return results, nil
}

// LastElement - get the last element in a pool
func (p *BadgerHandle) LastElement() (Element, bool, error) {
	found := false
	result := Element{}
	err := p.database.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		iter := txn.NewIterator(opts)
		defer iter.Close()

		// in reverse mode seek finds the largest key <= the seek key
		limit := []byte{p.prefix + 1}
		if 0xff == p.prefix {
			limit = bytes.Repeat([]byte{0xff}, 256)
		}
		iter.Seek(limit)
		if iter.Valid() && bytes.Equal(iter.Item().Key(), limit) {
			iter.Next()
		}
		if !iter.ValidForPrefix([]byte{p.prefix}) {
			return nil
		}
		item := iter.Item()
		value, err := item.ValueCopy(nil)
		if nil != err {
			return err
		}
		result = makeElement(item.Key(), value)
		found = true
		return nil
	})
	if nil != err {
		return Element{}, false, unavailable("badger.LastElement", err)
	}
	return result, found, nil
}

// route badger's internal messages to a logger channel
type badgerLogger struct {
	log *logger.L
}

func (b badgerLogger) Errorf(format string, args ...interface{}) {
	b.log.Errorf(format, args...)
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.log.Warnf(format, args...)
}

func (b badgerLogger) Infof(format string, args ...interface{}) {
	b.log.Debugf(format, args...)
}

func (b badgerLogger) Debugf(format string, args ...interface{}) {
	b.log.Tracef(format, args...)
}
