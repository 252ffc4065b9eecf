// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockset_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bookchain/bookchaind/lockset"
)

func TestSameKeySerialised(t *testing.T) {
	ls := lockset.New()

	inside := 0
	maximum := 0
	var mutex sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 20; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := ls.Lock("asset-1")
			defer unlock()

			mutex.Lock()
			inside += 1
			if inside > maximum {
				maximum = inside
			}
			mutex.Unlock()

			time.Sleep(time.Millisecond)

			mutex.Lock()
			inside -= 1
			mutex.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maximum, "more than one holder of the same key")
	assert.Equal(t, 0, ls.Size(), "entries not released")
}

func TestDifferentKeysIndependent(t *testing.T) {
	ls := lockset.New()

	unlockOne := ls.Lock("one")
	defer unlockOne()

	done := make(chan struct{})
	go func() {
		unlock := ls.Lock("two")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
	assert.Equal(t, 1, ls.Size(), "wrong number of held keys")
}
