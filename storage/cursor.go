// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bookchain/bookchaind/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	handle Handle
	start  []byte
}

// NewFetchCursor - initialise a cursor to the start of a pool
func NewFetchCursor(handle Handle) *FetchCursor {
	return &FetchCursor{
		handle: handle,
		start:  nil,
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.start = append([]byte(nil), key...)
	return cursor
}

// Fetch - return some elements starting from the cursor position and
// advance the cursor past the last one returned
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor || nil == cursor.handle {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results, err := cursor.handle.Fetch(cursor.start, count)
	if nil != err {
		return nil, err
	}

	if n := len(results); n > 0 {
		cursor.start = successor(results[n-1].Key)
	}
	return results, nil
}

// Map - run a function on all elements from the cursor position
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	const pageSize = 100

	for {
		results, err := cursor.Fetch(pageSize)
		if nil != err {
			return err
		}
		for _, e := range results {
			err := f(e.Key, e.Value)
			if nil != err {
				return err
			}
		}
		if len(results) < pageSize {
			return nil
		}
	}
}

// smallest key strictly greater than key
func successor(key []byte) []byte {
	next := make([]byte, len(key)+1)
	copy(next, key)
	return next
}
