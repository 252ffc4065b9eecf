// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package audit

import (
	"sort"

	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/storage"
	"github.com/bookchain/bookchaind/transactionrecord"
)

// Filter - conditions a record must meet, empty fields match anything
type Filter struct {
	AssetId     asset.Identifier
	Kind        transactionrecord.Kind
	Sender      string
	Receiver    string
	Participant string // sender or receiver
}

// Match - check a record against the filter
func (f *Filter) Match(r *transactionrecord.Record) bool {
	if 0 != f.AssetId && f.AssetId != r.AssetId {
		return false
	}
	if "" != f.Kind && f.Kind != r.Kind {
		return false
	}
	if "" != f.Sender && f.Sender != r.Sender {
		return false
	}
	if "" != f.Receiver && f.Receiver != r.Receiver {
		return false
	}
	if "" != f.Participant && !r.Involves(f.Participant) {
		return false
	}
	return true
}

// Query - all matching records, oldest first
//
// this reads every record, there is no secondary index
func (t *Trail) Query(filter Filter) ([]*transactionrecord.Record, error) {
	records := make([]*transactionrecord.Record, 0, 16)

	err := storage.NewFetchCursor(t.transactions).Map(func(key []byte, value []byte) error {
		r, err := transactionrecord.Packed(value).Unpack()
		if nil != err {
			t.log.Errorf("query: %q  unpack error: %s", key, err)
			return err
		}
		if filter.Match(r) {
			records = append(records, r)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Timestamp.Equal(records[j].Timestamp) {
			return records[i].TxId < records[j].TxId
		}
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, nil
}
