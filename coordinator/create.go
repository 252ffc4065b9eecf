// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coordinator

import (
	"strconv"
	"time"

	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/transactionrecord"
)

// allocations tried for a system id before giving up
const maximumIdentifierAttempts = 5

// blind box contents
const (
	blindBoxTitlePrefix = "Mystery Box - "
	blindBoxDescription = "open the box to reveal the book details"
)

// BlindBoxCategories - the categories a blind box is drawn from
var BlindBoxCategories = []string{
	"Literature",
	"Science Fiction",
	"History",
	"Technology",
	"Art",
}

// Create - arguments for creating an asset
type Create struct {
	AssetId asset.Identifier // zero for a system assigned id
	Owner   string
	Type    asset.Type
	asset.Fields
	TxId   string
	Remark string
}

// CreateNormalAsset - create a book
func (c *Coordinator) CreateNormalAsset(owner string, fields asset.Fields, txId string) (*asset.Asset, *transactionrecord.Record, error) {
	return c.CreateAsset(&Create{
		Owner:  owner,
		Type:   asset.Normal,
		Fields: fields,
		TxId:   txId,
	})
}

// CreateBlindBox - create a blind box with generated contents
func (c *Coordinator) CreateBlindBox(owner string, txId string) (*asset.Asset, *transactionrecord.Record, error) {
	return c.CreateAsset(&Create{
		Owner: owner,
		Type:  asset.BlindBox,
		TxId:  txId,
	})
}

// CreateAsset - create an asset and its audit record
//
// a repeated transaction id returns the asset as it is now and the
// original record instead of creating again.  On a partial failure the
// created asset and its record are returned together with the error.
func (c *Coordinator) CreateAsset(create *Create) (*asset.Asset, *transactionrecord.Record, error) {
	if nil == create {
		return nil, nil, fault.ErrMissingParameters
	}
	if "" == create.Owner {
		return nil, nil, fault.ErrRequiredOwner
	}
	if !create.Type.Valid() {
		return nil, nil, fault.ErrInvalidAssetType
	}
	if asset.Normal == create.Type && "" == create.Title {
		return nil, nil, fault.ErrRequiredTitle
	}
	if err := create.Fields.Validate(); nil != err {
		return nil, nil, err
	}

	txId := newTxId(create.TxId)
	kind := transactionrecord.KindFor(create.Type)

	unlock := c.txLocks.Lock(txId)
	defer unlock()

	previous, err := c.replay(txId, func(r *transactionrecord.Record) bool {
		return kind == r.Kind &&
			create.Owner == r.Receiver &&
			(0 == create.AssetId || create.AssetId == r.AssetId)
	})
	if nil != err && !fault.IsErrPartialFailure(err) {
		return nil, nil, err
	}
	if nil != previous {
		a, readErr := c.ledger.Read(previous.AssetId)
		if nil != readErr {
			return nil, nil, readErr
		}
		c.log.Debugf("create: %q  replayed asset: %d", txId, a.Id)
		return a, previous, err
	}

	if err := c.ownerExists(create.Owner); nil != err {
		return nil, nil, err
	}

	timestamp := c.timestamp()
	fields := create.Fields
	if asset.BlindBox == create.Type {
		fields = c.blindBoxFields(timestamp)
	}

	record := &transactionrecord.Record{
		TxId:      txId,
		Kind:      kind,
		Receiver:  create.Owner,
		Timestamp: timestamp,
		Remark:    create.Remark,
	}

	a, err := c.createWithIdentifier(create, fields, timestamp, record)
	if nil != err {
		c.log.Debugf("create: %q  ledger error: %s", txId, err)
		return nil, nil, err
	}

	c.log.Infof("created: %d  type: %s  owner: %q  tx: %q", a.Id, a.Type, a.Owner, txId)

	stored, err := c.appendAudit(record)
	if nil != err {
		return a, record, err
	}
	return a, stored, nil
}

// write the asset under the caller's id, or under a system id that is
// allocated again if a concurrent caller assigned create took it first
func (c *Coordinator) createWithIdentifier(create *Create, fields asset.Fields, timestamp time.Time, record *transactionrecord.Record) (*asset.Asset, error) {
	if 0 != create.AssetId {
		return c.ledger.Create(create.AssetId, create.Owner, create.Type, fields, timestamp, record)
	}

	var err error
	for attempt := 1; attempt <= maximumIdentifierAttempts; attempt += 1 {
		id, e := c.ledger.NextIdentifier()
		if nil != e {
			return nil, e
		}
		var a *asset.Asset
		a, err = c.ledger.Create(id, create.Owner, create.Type, fields, timestamp, record)
		if !fault.IsErrExists(err) {
			return a, err
		}
		c.log.Debugf("create: %q  system id: %d  taken", record.TxId, id)
	}
	return nil, err
}

// the generated contents of a blind box
func (c *Coordinator) blindBoxFields(timestamp time.Time) asset.Fields {
	return asset.Fields{
		Title:       blindBoxTitlePrefix + strconv.FormatInt(timestamp.UnixMilli(), 10),
		Description: blindBoxDescription,
		Category:    BlindBoxCategories[c.intn(len(BlindBoxCategories))],
	}
}
