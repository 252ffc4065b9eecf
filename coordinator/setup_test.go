// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coordinator_test

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/logger"
	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/audit"
	"github.com/bookchain/bookchaind/coordinator"
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/fixtures"
	"github.com/bookchain/bookchaind/ledger"
	"github.com/bookchain/bookchaind/owner"
	"github.com/bookchain/bookchaind/transactionrecord"
)

const randomSeed = 42

var fixedTime = time.Unix(1600000000, 123000000).UTC()

func fixedClock() time.Time {
	return fixedTime
}

// audit trail that fails a set number of appends
type flakyTrail struct {
	coordinator.Trail

	sync.Mutex
	failures int
	appends  int
}

func (f *flakyTrail) Append(r *transactionrecord.Record) (*transactionrecord.Record, error) {
	f.Lock()
	f.appends += 1
	if f.failures > 0 {
		f.failures -= 1
		f.Unlock()
		return nil, errors.Wrap(fault.ErrStorageUnavailable, "injected")
	}
	f.Unlock()
	return f.Trail.Append(r)
}

func (f *flakyTrail) fail(n int) {
	f.Lock()
	f.failures = n
	f.appends = 0
	f.Unlock()
}

func (f *flakyTrail) appendCount() int {
	f.Lock()
	defer f.Unlock()
	return f.appends
}

// ledger where another transfer always wins the race
type racingLedger struct {
	*ledger.Store
}

func (r racingLedger) Transfer(id asset.Identifier, expectedVersion uint64, newOwner string, journal *transactionrecord.Record) (*asset.Asset, error) {
	winner := &transactionrecord.Record{
		TxId:      "winner-" + journal.TxId,
		Kind:      transactionrecord.Transfer,
		Sender:    journal.Sender,
		Receiver:  "WINNER",
		Timestamp: journal.Timestamp,
	}
	_, err := r.Store.Transfer(id, expectedVersion, "WINNER", winner)
	if nil != err {
		return nil, err
	}
	return r.Store.Transfer(id, expectedVersion, newOwner, journal)
}

// ledger where a caller assigned create takes the first system id
// handed out before the coordinator can use it
type thievingLedger struct {
	*ledger.Store

	stolen asset.Identifier
}

func (l *thievingLedger) NextIdentifier() (asset.Identifier, error) {
	id, err := l.Store.NextIdentifier()
	if nil != err || 0 != l.stolen {
		return id, err
	}
	journal := &transactionrecord.Record{
		TxId:      "thief",
		Kind:      transactionrecord.Create,
		Receiver:  "THIEF",
		Timestamp: fixedTime,
	}
	_, err = l.Store.Create(id, "THIEF", asset.Normal, dune, fixedTime, journal)
	if nil != err {
		return 0, err
	}
	l.stolen = id
	return id, nil
}

// records backoff delays instead of waiting
type sleepRecorder struct {
	sync.Mutex
	delays []time.Duration
}

func (s *sleepRecorder) sleep(d time.Duration) {
	s.Lock()
	s.delays = append(s.delays, d)
	s.Unlock()
}

func (s *sleepRecorder) recorded() []time.Duration {
	s.Lock()
	defer s.Unlock()
	return append([]time.Duration(nil), s.delays...)
}

type environment struct {
	coordinator *coordinator.Coordinator
	store       *ledger.Store
	trail       *flakyTrail
	sleeper     *sleepRecorder
	cleanup     func()
}

func (e *environment) teardown() {
	e.cleanup()
	fixtures.TeardownTestLogger()
}

func testConfiguration() coordinator.Configuration {
	return coordinator.Configuration{
		AuditAttempts:  5,
		InitialBackoff: time.Millisecond,
		MaximumBackoff: 4 * time.Millisecond,
	}
}

func setup(t *testing.T, owners owner.Directory) *environment {
	return setupWith(t, owners, func(s *ledger.Store) coordinator.Ledger { return s })
}

func setupWith(t *testing.T, owners owner.Directory, wrap func(*ledger.Store) coordinator.Ledger) *environment {
	fixtures.SetupTestLogger()
	db, _, cleanup := fixtures.OpenDatabase(t)

	store, err := ledger.New(logger.New("ledger"), db.Assets, db.Pending, db.Quarantine)
	if nil != err {
		t.Fatalf("ledger new error: %s", err)
	}
	trail, err := audit.New(logger.New("audit"), db.Transactions, db.AssetIndex)
	if nil != err {
		t.Fatalf("audit new error: %s", err)
	}
	flaky := &flakyTrail{Trail: trail}
	sleeper := &sleepRecorder{}

	if nil == owners {
		owners = owner.Any()
	}

	c, err := coordinator.New(
		logger.New("coordinator"),
		testConfiguration(),
		wrap(store),
		flaky,
		owners,
		rand.New(rand.NewSource(randomSeed)),
		fixedClock,
		sleeper.sleep,
	)
	if nil != err {
		t.Fatalf("coordinator new error: %s", err)
	}

	return &environment{
		coordinator: c,
		store:       store,
		trail:       flaky,
		sleeper:     sleeper,
		cleanup:     cleanup,
	}
}

var dune = asset.Fields{
	Title:       "Dune",
	Author:      "Frank Herbert",
	Description: "desert planet",
	Category:    "Science Fiction",
}
