// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/counter"
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/lockset"
	"github.com/bookchain/bookchaind/storage"
	"github.com/bookchain/bookchaind/transactionrecord"
)

// Store - the asset state store
type Store struct {
	log        *logger.L
	assets     *storage.PoolHandle
	pending    *storage.PoolHandle
	quarantine *storage.PoolHandle
	locks      *lockset.LockSet
	lastId     counter.Counter
}

// New - create a store over the assets, pending and quarantine pools
//
// all pools must belong to the same database
func New(log *logger.L, assets *storage.PoolHandle, pending *storage.PoolHandle, quarantine *storage.PoolHandle) (*Store, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == assets || nil == pending || nil == quarantine {
		return nil, fault.ErrNotInitialised
	}

	s := &Store{
		log:        log,
		assets:     assets,
		pending:    pending,
		quarantine: quarantine,
		locks:      lockset.New(),
	}

	last, found, err := assets.LastElement()
	if nil != err {
		return nil, err
	}
	if found {
		id, err := asset.IdentifierFromKey(last.Key)
		if nil != err {
			log.Criticalf("invalid asset key: %x", last.Key)
			return nil, fault.ErrCorruptRecord
		}
		s.lastId.Raise(uint64(id))
	}

	log.Infof("highest asset id: %d", s.lastId.Uint64())
	return s, nil
}

// NextIdentifier - allocate an id that no existing asset has
//
// the id is not reserved, a caller assigned create may still take it
// first
func (s *Store) NextIdentifier() (asset.Identifier, error) {
	for {
		n := s.lastId.Increment()
		if 0 == n || n > uint64(asset.MaximumIdentifier) {
			s.log.Criticalf("asset ids exhausted at: %d", n)
			return 0, fault.ErrIdentifiersExhausted
		}
		id := asset.Identifier(n)

		found, err := s.assets.Has(id.Key())
		if nil != err {
			return 0, err
		}
		if !found {
			return id, nil
		}
	}
}

// Create - store a new asset at version 1
//
// if journal is not nil its AssetId, Version and Link are filled in and
// it is written to the pending pool together with the asset
func (s *Store) Create(id asset.Identifier, owner string, assetType asset.Type, fields asset.Fields, timestamp time.Time, journal *transactionrecord.Record) (*asset.Asset, error) {
	if 0 == id {
		return nil, fault.ErrInvalidIdentifier
	}
	if id > asset.MaximumIdentifier {
		return nil, fault.ErrIdentifierOutOfRange
	}
	if !assetType.Valid() {
		return nil, fault.ErrInvalidAssetType
	}
	if err := asset.ValidateOwner(owner); nil != err {
		return nil, err
	}
	if err := fields.Validate(); nil != err {
		return nil, err
	}

	unlock := s.locks.Lock(id.String())
	defer unlock()

	// system ids must never reach a caller assigned one
	s.lastId.Raise(uint64(id))

	key := id.Key()
	found, err := s.assets.Has(key)
	if nil != err {
		return nil, err
	}
	if found {
		return nil, fault.ErrAssetExists
	}

	a := &asset.Asset{
		Id:        id,
		Owner:     owner,
		Type:      assetType,
		Fields:    fields,
		CreatedAt: timestamp.UTC(),
		Version:   1,
	}

	if nil != journal {
		journal.AssetId = id
		journal.Version = a.Version
		journal.Link = ""
		a.LastTxId = journal.TxId
	}

	err = s.write(a, journal)
	if nil != err {
		return nil, err
	}

	s.log.Debugf("create: %d  owner: %q  type: %s", id, owner, assetType)
	return a, nil
}

// Read - current state of an asset
func (s *Store) Read(id asset.Identifier) (*asset.Asset, error) {
	packed, err := s.assets.Get(id.Key())
	if nil != err {
		return nil, err
	}
	if nil == packed {
		return nil, fault.ErrAssetNotFound
	}
	return asset.Packed(packed).Unpack()
}

// Transfer - change the owner if the stored version is still
// expectedVersion
//
// if journal is not nil its AssetId, Version and Link are filled in and
// it is written to the pending pool together with the asset
func (s *Store) Transfer(id asset.Identifier, expectedVersion uint64, newOwner string, journal *transactionrecord.Record) (*asset.Asset, error) {
	if err := asset.ValidateOwner(newOwner); nil != err {
		return nil, err
	}

	unlock := s.locks.Lock(id.String())
	defer unlock()

	a, err := s.Read(id)
	if nil != err {
		return nil, err
	}
	if a.Version != expectedVersion {
		s.log.Debugf("transfer: %d  version: %d  expected: %d", id, a.Version, expectedVersion)
		return nil, fault.ErrVersionConflict
	}

	previousTxId := a.LastTxId
	a.Owner = newOwner
	a.Version += 1

	if nil != journal {
		journal.AssetId = id
		journal.Version = a.Version
		journal.Link = previousTxId
		a.LastTxId = journal.TxId
	}

	err = s.write(a, journal)
	if nil != err {
		return nil, err
	}

	s.log.Debugf("transfer: %d  owner: %q  version: %d", id, newOwner, a.Version)
	return a, nil
}

// write the asset and optional journal record as one batch
func (s *Store) write(a *asset.Asset, journal *transactionrecord.Record) error {
	packedAsset, err := a.Pack()
	if nil != err {
		return err
	}

	batch := s.assets.NewBatch()
	batch.Put(s.assets, a.Id.Key(), packedAsset)

	if nil != journal {
		packedRecord, err := journal.Pack()
		if nil != err {
			return err
		}
		batch.Put(s.pending, []byte(journal.TxId), packedRecord)
	}

	return batch.Commit()
}
