// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coordinator

import (
	"github.com/google/uuid"

	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/transactionrecord"
)

// a fresh transaction id for callers that supply none
func newTxId(txId string) string {
	if "" != txId {
		return txId
	}
	return uuid.New().String()
}

// find an earlier run of the transaction txId
//
// returns nil if there is none, the audited record if the earlier run
// completed, or the record from the pending journal after completing
// its audit append; if that append fails the pending record is
// returned with the partial failure
func (c *Coordinator) replay(txId string, same func(*transactionrecord.Record) bool) (*transactionrecord.Record, error) {

	pending, err := c.ledger.Pending(txId)
	if nil != err {
		return nil, err
	}
	if nil != pending {
		if !same(pending) {
			return nil, fault.ErrTransactionIdReused
		}
		c.log.Infof("replay: %q  completing pending audit", txId)
		stored, err := c.appendAudit(pending)
		if nil != err {
			return pending, err
		}
		return stored, nil
	}

	r, err := c.trail.Get(txId)
	if fault.IsErrNotFound(err) {
		return nil, nil
	}
	if nil != err {
		return nil, err
	}
	if !same(r) {
		return nil, fault.ErrTransactionIdReused
	}
	c.log.Debugf("replay: %q  already completed", txId)
	return r, nil
}

// append to the audit trail with bounded exponential backoff
//
// the ledger has already been written so failure is reported as a
// partial failure and the pending journal record is left in place
func (c *Coordinator) appendAudit(record *transactionrecord.Record) (*transactionrecord.Record, error) {

	delay := c.configuration.InitialBackoff
	var err error

	for attempt := 1; attempt <= c.configuration.AuditAttempts; attempt += 1 {
		var stored *transactionrecord.Record
		stored, err = c.trail.Append(record)
		if nil == err {
			// a leftover pending entry is completed by reconciliation
			if e := c.ledger.ClearPending(record.TxId); nil != e {
				c.log.Warnf("clear pending: %q  error: %s", record.TxId, e)
			}
			return stored, nil
		}

		if !fault.IsErrStorage(err) {
			break
		}

		c.log.Warnf("audit append: %q  attempt: %d/%d  error: %s", record.TxId, attempt, c.configuration.AuditAttempts, err)

		if attempt < c.configuration.AuditAttempts {
			c.sleep(delay)
			delay *= 2
			if delay > c.configuration.MaximumBackoff {
				delay = c.configuration.MaximumBackoff
			}
		}
	}

	c.log.Errorf("audit append: %q  asset: %d  pending: %s", record.TxId, record.AssetId, err)

	return nil, &fault.PartialFailure{
		AssetId: uint64(record.AssetId),
		TxId:    record.TxId,
		Err:     err,
	}
}

// CompletePending - append up to count pending journal records to the
// audit trail, one attempt each
//
// a record that conflicts with the audit trail can never be appended
// and is moved to quarantine.  Returns the number removed from the
// journal and the first storage error
func (c *Coordinator) CompletePending(count int) (int, error) {
	records, err := c.ledger.ListPending(count)
	if nil != err {
		return 0, err
	}

	completed := 0
	for _, r := range records {
		n, err := c.completeOne(r.TxId)
		if nil != err {
			return completed, err
		}
		completed += n
	}
	return completed, nil
}

func (c *Coordinator) completeOne(txId string) (int, error) {
	unlock := c.txLocks.Lock(txId)
	defer unlock()

	// a live call may have finished it
	r, err := c.ledger.Pending(txId)
	if nil != err || nil == r {
		return 0, err
	}

	_, err = c.trail.Append(r)
	if fault.IsErrConflict(err) {
		c.log.Criticalf("pending: %q  conflicts with audited record: %s", txId, err)
		if err := c.ledger.QuarantinePending(txId); nil != err {
			return 0, err
		}
		return 1, nil
	}
	if nil != err {
		return 0, err
	}

	if err := c.ledger.ClearPending(txId); nil != err {
		return 0, err
	}
	c.log.Infof("completed pending: %q  asset: %d", txId, r.AssetId)
	return 1, nil
}
