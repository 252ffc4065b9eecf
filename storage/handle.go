// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Handle - access to one pool
//
// keys are given without the pool prefix and values returned are
// copies that the caller may keep
type Handle interface {
	// Get - nil value and nil error if the key is absent
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	Put(key []byte, value []byte) error
	Delete(key []byte) error

	// Fetch - up to count elements in key order starting at the
	// first key >= start, a nil start begins at the first key
	Fetch(start []byte, count int) ([]Element, error)

	// LastElement - highest key in the pool, false if empty
	LastElement() (Element, bool, error)
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func prefixKey(prefix byte, key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = prefix
	return append(prefixedKey, key...)
}

// copy out of engine owned memory, removing the prefix
func makeElement(key []byte, value []byte) Element {
	dataKey := make([]byte, len(key)-1) // strip the prefix
	copy(dataKey, key[1:])              // ...

	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	return Element{
		Key:   dataKey,
		Value: dataValue,
	}
}
