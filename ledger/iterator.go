// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/storage"
)

// number of records read from the pool at a time
const scanPageSize = 64

// Iterator - lazy ascending walk over all assets
//
// pages are read from storage only as Next needs them, so assets
// written during the walk may or may not be seen
type Iterator struct {
	pool    storage.Handle
	filter  *asset.Type
	cursor  *storage.FetchCursor
	page    []storage.Element
	current *asset.Asset
	done    bool
	err     error
}

// Scan - iterate over all assets in ascending id order, if filter is
// not nil only assets of that type are produced
func (s *Store) Scan(filter *asset.Type) *Iterator {
	it := &Iterator{
		pool: s.assets,
	}
	if nil != filter {
		t := *filter
		it.filter = &t
	}
	it.Reset()
	return it
}

// Reset - restart from the lowest id
func (it *Iterator) Reset() {
	it.cursor = storage.NewFetchCursor(it.pool)
	it.page = nil
	it.current = nil
	it.done = false
	it.err = nil
}

// Next - advance to the next matching asset, false at the end or on
// error
func (it *Iterator) Next() bool {
	it.current = nil
	for !it.done {
		if 0 == len(it.page) {
			page, err := it.cursor.Fetch(scanPageSize)
			if nil != err {
				it.err = err
				it.done = true
				return false
			}
			if 0 == len(page) {
				it.done = true
				return false
			}
			it.page = page
		}

		e := it.page[0]
		it.page = it.page[1:]

		a, err := asset.Packed(e.Value).Unpack()
		if nil != err {
			it.err = err
			it.done = true
			return false
		}
		if nil != it.filter && a.Type != *it.filter {
			continue
		}
		it.current = a
		return true
	}
	return false
}

// Asset - the asset at the current position
func (it *Iterator) Asset() *asset.Asset {
	return it.current
}

// Err - the error that stopped the iteration, if any
func (it *Iterator) Err() error {
	return it.err
}

// All - drain the remaining assets into a slice
func (it *Iterator) All() ([]*asset.Asset, error) {
	result := make([]*asset.Asset, 0, scanPageSize)
	for it.Next() {
		result = append(result, it.Asset())
	}
	return result, it.Err()
}
