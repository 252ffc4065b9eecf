// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/transactionrecord"
)

func validTransfer() *transactionrecord.Record {
	return &transactionrecord.Record{
		TxId:      "tx-2",
		AssetId:   7,
		Kind:      transactionrecord.Transfer,
		Sender:    "U1",
		Receiver:  "U2",
		Timestamp: time.Date(2022, 5, 6, 7, 8, 9, 123456789, time.UTC),
		Remark:    "gift",
		Version:   2,
		Link:      "tx-1",
	}
}

func TestPackUnpack(t *testing.T) {
	r := validTransfer()

	packed, err := r.Pack()
	assert.Nil(t, err, "pack error")

	u, err := packed.Unpack()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, r.TxId, u.TxId, "tx id")
	assert.Equal(t, r.AssetId, u.AssetId, "asset id")
	assert.Equal(t, r.Kind, u.Kind, "kind")
	assert.Equal(t, r.Sender, u.Sender, "sender")
	assert.Equal(t, r.Receiver, u.Receiver, "receiver")
	assert.True(t, r.Timestamp.Equal(u.Timestamp), "timestamp: %s", u.Timestamp)
	assert.Equal(t, r.Remark, u.Remark, "remark")
	assert.Equal(t, r.Version, u.Version, "version")
	assert.Equal(t, r.Link, u.Link, "link")
}

func TestValidate(t *testing.T) {
	create := &transactionrecord.Record{
		TxId:     "tx-1",
		AssetId:  7,
		Kind:     transactionrecord.Create,
		Receiver: "U1",
		Version:  1,
	}
	assert.Nil(t, create.Validate(), "valid create")

	items := []struct {
		modify func(*transactionrecord.Record)
		err    error
	}{
		{func(r *transactionrecord.Record) { r.TxId = "" }, fault.ErrRequiredTransactionId},
		{func(r *transactionrecord.Record) { r.TxId = strings.Repeat("x", 129) }, transactionrecord.ErrTxIdTooLong},
		{func(r *transactionrecord.Record) { r.AssetId = 0 }, fault.ErrInvalidIdentifier},
		{func(r *transactionrecord.Record) { r.Kind = "BURN" }, fault.ErrInvalidRecordKind},
		{func(r *transactionrecord.Record) { r.Receiver = "" }, fault.ErrRequiredOwner},
		{func(r *transactionrecord.Record) { r.Remark = strings.Repeat("r", 257) }, transactionrecord.ErrRemarkTooLong},
		{func(r *transactionrecord.Record) { r.Sender = "" }, transactionrecord.ErrMissingSender},
		{func(r *transactionrecord.Record) { r.Kind = transactionrecord.Create }, transactionrecord.ErrUnexpectedSender},
		{func(r *transactionrecord.Record) { r.Kind = transactionrecord.CreateBlindBox; r.Sender = "" }, transactionrecord.ErrUnexpectedLink},
	}

	for i, item := range items {
		r := validTransfer()
		item.modify(r)
		assert.Equal(t, item.err, r.Validate(), "%d: wrong error", i)
	}
}

func TestUnpackCorrupt(t *testing.T) {
	_, err := transactionrecord.Packed([]byte{0xa1, 0x01}).Unpack()
	assert.True(t, fault.IsErrStorage(err), "truncated record: %v", err)

	// decodes but fails validation
	packed, err := (&asset.Asset{Id: 3, Type: asset.Normal, Owner: "U1"}).Pack()
	assert.Nil(t, err, "pack asset")
	_, err = transactionrecord.Packed(packed).Unpack()
	assert.True(t, fault.IsErrStorage(err), "asset accepted as record: %v", err)
}

func TestParseKind(t *testing.T) {
	k, err := transactionrecord.ParseKind("CREATE_BLIND_BOX")
	assert.Nil(t, err, "parse error")
	assert.Equal(t, transactionrecord.CreateBlindBox, k, "kind")

	_, err = transactionrecord.ParseKind("create")
	assert.Equal(t, fault.ErrInvalidRecordKind, err, "lower case accepted")

	assert.Equal(t, transactionrecord.CreateBlindBox, transactionrecord.KindFor(asset.BlindBox), "blind box kind")
	assert.Equal(t, transactionrecord.Create, transactionrecord.KindFor(asset.Normal), "normal kind")
	assert.True(t, transactionrecord.Create.IsCreate(), "create is create")
	assert.False(t, transactionrecord.Transfer.IsCreate(), "transfer is not create")
}

func TestSameOperation(t *testing.T) {
	a := validTransfer()
	b := validTransfer()
	b.Timestamp = b.Timestamp.Add(time.Hour)
	assert.True(t, a.SameOperation(b), "timestamp must not matter")

	b.AssetId = 8
	assert.False(t, a.SameOperation(b), "different asset")

	assert.True(t, a.Involves("U1"), "sender involved")
	assert.True(t, a.Involves("U2"), "receiver involved")
	assert.False(t, a.Involves("U3"), "stranger involved")
}
