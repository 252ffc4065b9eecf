// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coordinator

import (
	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/audit"
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/transactionrecord"
	"github.com/bookchain/bookchaind/visibility"
)

// Status - progress of a transaction
type Status string

// possible transaction states
const (
	StatusCompleted Status = "COMPLETED" // ledger and audit written
	StatusPending   Status = "PENDING"   // ledger written, audit outstanding
)

// ReadAsset - an asset as the viewer may see it
func (c *Coordinator) ReadAsset(id asset.Identifier, viewer string) (visibility.ViewableAsset, error) {
	a, err := c.ledger.Read(id)
	if nil != err {
		return visibility.ViewableAsset{}, err
	}
	return visibility.ProjectFor(a, viewer), nil
}

// QueryAssets - all assets in id order as the viewer may see them,
// optionally only those of one type
func (c *Coordinator) QueryAssets(filter *asset.Type, viewer string) ([]visibility.ViewableAsset, error) {
	if nil != filter && !filter.Valid() {
		return nil, fault.ErrInvalidAssetType
	}

	it := c.ledger.Scan(filter)
	result := make([]visibility.ViewableAsset, 0, 16)
	for it.Next() {
		result = append(result, visibility.ProjectFor(it.Asset(), viewer))
	}
	if err := it.Err(); nil != err {
		return nil, err
	}
	return result, nil
}

// Status - whether a transaction is completed or pending
func (c *Coordinator) Status(txId string) (Status, *transactionrecord.Record, error) {
	if "" == txId {
		return "", nil, fault.ErrRequiredTransactionId
	}

	r, err := c.trail.Get(txId)
	if nil == err {
		return StatusCompleted, r, nil
	}
	if !fault.IsErrNotFound(err) {
		return "", nil, err
	}

	r, err = c.ledger.Pending(txId)
	if nil != err {
		return "", nil, err
	}
	if nil != r {
		return StatusPending, r, nil
	}
	return "", nil, fault.ErrTransactionNotFound
}

// History - the audit records of one asset, oldest first
func (c *Coordinator) History(id asset.Identifier) ([]*transactionrecord.Record, error) {
	records, err := c.trail.ListForAsset(id)
	if nil != err {
		return nil, err
	}
	if 0 == len(records) {
		if _, err := c.ledger.Read(id); nil != err {
			return nil, err
		}
	}
	return records, nil
}

// Transactions - audit records matching a filter, oldest first
func (c *Coordinator) Transactions(filter audit.Filter) ([]*transactionrecord.Record, error) {
	if "" != filter.Kind && !filter.Kind.Valid() {
		return nil, fault.ErrInvalidRecordKind
	}
	return c.trail.Query(filter)
}
