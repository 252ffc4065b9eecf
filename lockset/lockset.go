// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package lockset - a set of mutexes addressed by key
//
// Holders of different keys never contend, holders of the same key
// are serialised.  Entries are reference counted and dropped when the
// last holder releases them so the set does not grow without bound.
package lockset

import (
	"sync"
)

type entry struct {
	sync.Mutex
	holders int
}

// LockSet - keyed mutexes
type LockSet struct {
	mutex sync.Mutex
	locks map[string]*entry
}

// New - create an empty lock set
func New() *LockSet {
	return &LockSet{
		locks: make(map[string]*entry),
	}
}

// Lock - acquire the lock for key, returns the function that releases it
func (ls *LockSet) Lock(key string) func() {
	ls.mutex.Lock()
	e, ok := ls.locks[key]
	if !ok {
		e = &entry{}
		ls.locks[key] = e
	}
	e.holders += 1
	ls.mutex.Unlock()

	e.Mutex.Lock()

	return func() {
		e.Mutex.Unlock()

		ls.mutex.Lock()
		e.holders -= 1
		if 0 == e.holders {
			delete(ls.locks, key)
		}
		ls.mutex.Unlock()
	}
}

// Size - number of keys currently held or waited on
func (ls *LockSet) Size() int {
	ls.mutex.Lock()
	defer ls.mutex.Unlock()
	return len(ls.locks)
}
