// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package audit - append-only trail of transaction records
//
// Records are keyed by transaction id and never changed once written.
// A second index orders the records of each asset by the version they
// produced.
package audit

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"
	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/storage"
	"github.com/bookchain/bookchaind/transactionrecord"
)

// records are immutable so a cached copy never goes stale, expiry
// only bounds memory
const (
	cacheExpiration = 10 * time.Minute
	cacheCleanup    = 20 * time.Minute
)

// Trail - the audit trail
type Trail struct {
	log          *logger.L
	transactions storage.Handle
	assetIndex   storage.Handle
	cache        *cache.Cache
}

// New - create a trail over the transactions and asset index pools
func New(log *logger.L, transactions storage.Handle, assetIndex storage.Handle) (*Trail, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == transactions || nil == assetIndex {
		return nil, fault.ErrNotInitialised
	}
	return &Trail{
		log:          log,
		transactions: transactions,
		assetIndex:   assetIndex,
		cache:        cache.New(cacheExpiration, cacheCleanup),
	}, nil
}

// Append - store a record
//
// appending a record whose transaction id is already present returns
// the stored record if it describes the same operation, otherwise
// fault.ErrTransactionIdReused
func (t *Trail) Append(record *transactionrecord.Record) (*transactionrecord.Record, error) {
	packed, err := record.Pack()
	if nil != err {
		return nil, err
	}

	existing, err := t.Get(record.TxId)
	if nil == err {
		if !existing.SameOperation(record) {
			t.log.Warnf("append: %q  reused for asset: %d  kind: %s", record.TxId, record.AssetId, record.Kind)
			return nil, fault.ErrTransactionIdReused
		}

		// an earlier append may have stopped before the index write
		err = t.assetIndex.Put(indexKey(existing.AssetId, existing.Version), []byte(existing.TxId))
		if nil != err {
			return nil, err
		}
		return existing, nil
	}
	if !fault.IsErrNotFound(err) {
		return nil, err
	}

	err = t.transactions.Put([]byte(record.TxId), packed)
	if nil != err {
		return nil, err
	}
	err = t.assetIndex.Put(indexKey(record.AssetId, record.Version), []byte(record.TxId))
	if nil != err {
		return nil, err
	}

	stored := *record
	t.cache.SetDefault(record.TxId, &stored)

	t.log.Debugf("append: %q  asset: %d  kind: %s  version: %d", record.TxId, record.AssetId, record.Kind, record.Version)

	result := stored
	return &result, nil
}

// Get - the record for a transaction id
func (t *Trail) Get(txId string) (*transactionrecord.Record, error) {
	if "" == txId {
		return nil, fault.ErrRequiredTransactionId
	}

	if cached, found := t.cache.Get(txId); found {
		r := *cached.(*transactionrecord.Record)
		return &r, nil
	}

	packed, err := t.transactions.Get([]byte(txId))
	if nil != err {
		return nil, err
	}
	if nil == packed {
		return nil, fault.ErrTransactionNotFound
	}

	r, err := transactionrecord.Packed(packed).Unpack()
	if nil != err {
		t.log.Errorf("get: %q  unpack error: %s", txId, err)
		return nil, err
	}

	stored := *r
	t.cache.SetDefault(txId, &stored)
	return r, nil
}

// Has - check if a transaction id has a record
func (t *Trail) Has(txId string) (bool, error) {
	if _, found := t.cache.Get(txId); found {
		return true, nil
	}
	return t.transactions.Has([]byte(txId))
}

// ListForAsset - all records of one asset in version order
func (t *Trail) ListForAsset(id asset.Identifier) ([]*transactionrecord.Record, error) {
	const pageSize = 32

	prefix := id.Key()
	cursor := storage.NewFetchCursor(t.assetIndex).Seek(prefix)

	records := make([]*transactionrecord.Record, 0, pageSize)
	for {
		elements, err := cursor.Fetch(pageSize)
		if nil != err {
			return nil, err
		}
		for _, e := range elements {
			if !bytes.HasPrefix(e.Key, prefix) {
				return records, nil
			}
			r, err := t.Get(string(e.Value))
			if nil != err {
				return nil, err
			}
			records = append(records, r)
		}
		if len(elements) < pageSize {
			return records, nil
		}
	}
}

// asset id ++ version
func indexKey(id asset.Identifier, version uint64) []byte {
	key := make([]byte, 16)
	copy(key, id.Key())
	binary.BigEndian.PutUint64(key[8:], version)
	return key
}
