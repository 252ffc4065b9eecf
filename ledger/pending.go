// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/storage"
	"github.com/bookchain/bookchaind/transactionrecord"
)

// Pending - the journal record for txId, nil if none is outstanding
func (s *Store) Pending(txId string) (*transactionrecord.Record, error) {
	if "" == txId {
		return nil, fault.ErrRequiredTransactionId
	}
	packed, err := s.pending.Get([]byte(txId))
	if nil != err {
		return nil, err
	}
	if nil == packed {
		return nil, nil
	}
	return transactionrecord.Packed(packed).Unpack()
}

// ClearPending - remove a journal record once the audit trail holds it
func (s *Store) ClearPending(txId string) error {
	if "" == txId {
		return fault.ErrRequiredTransactionId
	}
	return s.pending.Delete([]byte(txId))
}

// ListPending - up to count outstanding journal records in txId order
func (s *Store) ListPending(count int) ([]*transactionrecord.Record, error) {
	return s.list(s.pending, count)
}

// QuarantinePending - move a journal record that can never be audited
// out of the journal so it no longer holds up reconciliation
func (s *Store) QuarantinePending(txId string) error {
	if "" == txId {
		return fault.ErrRequiredTransactionId
	}
	key := []byte(txId)
	packed, err := s.pending.Get(key)
	if nil != err {
		return err
	}
	if nil == packed {
		return fault.ErrTransactionNotFound
	}

	batch := s.pending.NewBatch()
	batch.Put(s.quarantine, key, packed)
	batch.Delete(s.pending, key)
	if err := batch.Commit(); nil != err {
		return err
	}
	s.log.Warnf("quarantined: %q", txId)
	return nil
}

// ListQuarantined - up to count quarantined records in txId order
func (s *Store) ListQuarantined(count int) ([]*transactionrecord.Record, error) {
	return s.list(s.quarantine, count)
}

func (s *Store) list(pool *storage.PoolHandle, count int) ([]*transactionrecord.Record, error) {
	elements, err := storage.NewFetchCursor(pool).Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]*transactionrecord.Record, 0, len(elements))
	for _, e := range elements {
		r, err := transactionrecord.Packed(e.Value).Unpack()
		if nil != err {
			s.log.Errorf("journal: %q  unpack error: %s", e.Key, err)
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}
