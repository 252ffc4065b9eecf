// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coordinator - create and transfer assets
//
// Each mutation is a two step saga: the ledger write, which is the
// source of truth, followed by the audit append.  The ledger write
// leaves a pending journal record behind in the same batch, so an audit
// append that fails after all retries is never lost; it is reported as
// a partial failure and completed later by a retry with the same
// transaction id or by the reconciliation process.
package coordinator

import (
	"math/rand"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/audit"
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/ledger"
	"github.com/bookchain/bookchaind/lockset"
	"github.com/bookchain/bookchaind/owner"
	"github.com/bookchain/bookchaind/transactionrecord"
	"github.com/bookchain/bookchaind/visibility"
)

// Configuration - audit append retry policy
type Configuration struct {
	AuditAttempts  int
	InitialBackoff time.Duration
	MaximumBackoff time.Duration
}

// DefaultConfiguration - five attempts, 50ms doubling up to 2s
func DefaultConfiguration() Configuration {
	return Configuration{
		AuditAttempts:  5,
		InitialBackoff: 50 * time.Millisecond,
		MaximumBackoff: 2 * time.Second,
	}
}

// Ledger - the asset state store
type Ledger interface {
	NextIdentifier() (asset.Identifier, error)
	Create(id asset.Identifier, owner string, assetType asset.Type, fields asset.Fields, timestamp time.Time, journal *transactionrecord.Record) (*asset.Asset, error)
	Read(id asset.Identifier) (*asset.Asset, error)
	Transfer(id asset.Identifier, expectedVersion uint64, newOwner string, journal *transactionrecord.Record) (*asset.Asset, error)
	Scan(filter *asset.Type) *ledger.Iterator
	Pending(txId string) (*transactionrecord.Record, error)
	ClearPending(txId string) error
	ListPending(count int) ([]*transactionrecord.Record, error)
	QuarantinePending(txId string) error
}

// Trail - the audit trail
type Trail interface {
	Append(record *transactionrecord.Record) (*transactionrecord.Record, error)
	Get(txId string) (*transactionrecord.Record, error)
	ListForAsset(id asset.Identifier) ([]*transactionrecord.Record, error)
	Query(filter audit.Filter) ([]*transactionrecord.Record, error)
}

// Operations - the calls available to remote clients
type Operations interface {
	CreateAsset(create *Create) (*asset.Asset, *transactionrecord.Record, error)
	TransferOwnership(id asset.Identifier, requester string, newOwner string, txId string) (*transactionrecord.Record, error)
	ReadAsset(id asset.Identifier, viewer string) (visibility.ViewableAsset, error)
	QueryAssets(filter *asset.Type, viewer string) ([]visibility.ViewableAsset, error)
	Status(txId string) (Status, *transactionrecord.Record, error)
	History(id asset.Identifier) ([]*transactionrecord.Record, error)
	Transactions(filter audit.Filter) ([]*transactionrecord.Record, error)
}

var _ Operations = (*Coordinator)(nil)

// Coordinator - runs the create and transfer sagas
type Coordinator struct {
	log           *logger.L
	configuration Configuration
	ledger        Ledger
	trail         Trail
	owners        owner.Directory
	now           func() time.Time
	sleep         func(time.Duration)
	txLocks       *lockset.LockSet

	randomLock sync.Mutex
	random     *rand.Rand
}

// New - create a coordinator
//
// random drives the blind box category draw, now supplies record
// timestamps and sleep waits between audit append attempts; nil now and
// sleep use the wall clock
func New(log *logger.L, configuration Configuration, ledger Ledger, trail Trail, owners owner.Directory, random *rand.Rand, now func() time.Time, sleep func(time.Duration)) (*Coordinator, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == ledger || nil == trail || nil == owners || nil == random {
		return nil, fault.ErrMissingParameters
	}
	if configuration.AuditAttempts < 1 {
		configuration.AuditAttempts = 1
	}
	if configuration.MaximumBackoff < configuration.InitialBackoff {
		configuration.MaximumBackoff = configuration.InitialBackoff
	}
	if nil == now {
		now = time.Now
	}
	if nil == sleep {
		sleep = time.Sleep
	}

	return &Coordinator{
		log:           log,
		configuration: configuration,
		ledger:        ledger,
		trail:         trail,
		owners:        owners,
		now:           now,
		sleep:         sleep,
		txLocks:       lockset.New(),
		random:        random,
	}, nil
}

// check that ref names a known owner
func (c *Coordinator) ownerExists(ref string) error {
	ok, err := c.owners.Exists(ref)
	if nil != err {
		return err
	}
	if !ok {
		return fault.ErrOwnerNotFound
	}
	return nil
}

// current time for records
func (c *Coordinator) timestamp() time.Time {
	return c.now().UTC()
}

// uniform draw in [0, n)
func (c *Coordinator) intn(n int) int {
	c.randomLock.Lock()
	defer c.randomLock.Unlock()
	return c.random.Intn(n)
}
