// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coordinator

import (
	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/transactionrecord"
)

// TransferOwnership - move an asset from its owner to newOwner
//
// only the current owner may transfer.  A concurrent transfer of the
// same asset makes this call fail with fault.ErrConcurrentTransfer and
// the caller must read again before retrying.
func (c *Coordinator) TransferOwnership(id asset.Identifier, requester string, newOwner string, txId string) (*transactionrecord.Record, error) {
	if 0 == id {
		return nil, fault.ErrInvalidIdentifier
	}
	if "" == requester {
		return nil, fault.ErrRequiredRequester
	}
	if err := asset.ValidateOwner(newOwner); nil != err {
		return nil, err
	}

	txId = newTxId(txId)

	unlock := c.txLocks.Lock(txId)
	defer unlock()

	previous, err := c.replay(txId, func(r *transactionrecord.Record) bool {
		return transactionrecord.Transfer == r.Kind &&
			id == r.AssetId &&
			requester == r.Sender &&
			newOwner == r.Receiver
	})
	if nil != previous || nil != err {
		return previous, err
	}

	a, err := c.ledger.Read(id)
	if nil != err {
		return nil, err
	}
	if requester != a.Owner {
		c.log.Debugf("transfer: %q  asset: %d  requester: %q is not owner", txId, id, requester)
		return nil, fault.ErrNotOwner
	}
	if err := c.ownerExists(newOwner); nil != err {
		return nil, err
	}

	record := &transactionrecord.Record{
		TxId:      txId,
		Kind:      transactionrecord.Transfer,
		Sender:    requester,
		Receiver:  newOwner,
		Timestamp: c.timestamp(),
	}

	_, err = c.ledger.Transfer(id, a.Version, newOwner, record)
	if fault.IsErrVersionConflict(err) {
		return nil, fault.ErrConcurrentTransfer
	}
	if nil != err {
		return nil, err
	}

	c.log.Infof("transferred: %d  from: %q  to: %q  tx: %q", id, requester, newOwner, txId)

	stored, err := c.appendAudit(record)
	if nil != err {
		return record, err
	}
	return stored, nil
}
