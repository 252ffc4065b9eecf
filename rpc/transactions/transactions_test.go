// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactions_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/audit"
	"github.com/bookchain/bookchaind/coordinator"
	"github.com/bookchain/bookchaind/coordinator/mocks"
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/fixtures"
	"github.com/bookchain/bookchaind/rpc/transactions"
	"github.com/bookchain/bookchaind/transactionrecord"
)

var records = []*transactionrecord.Record{
	{TxId: "tx1", AssetId: 1, Kind: transactionrecord.Create, Receiver: "U1", Version: 1},
	{TxId: "tx3", AssetId: 1, Kind: transactionrecord.Transfer, Sender: "U1", Receiver: "U3", Version: 2, Link: "tx1"},
}

func TestStatus(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	tx := transactions.New(logger.New(fixtures.LogCategory), ops)

	ops.EXPECT().Status("tx1").Return(coordinator.StatusCompleted, records[0], nil).Times(1)
	ops.EXPECT().Status("tx9").Return(coordinator.Status(""), nil, fault.ErrTransactionNotFound).Times(1)

	var reply transactions.StatusReply
	err := tx.Status(&transactions.StatusArguments{TxId: "tx1"}, &reply)
	assert.Nil(t, err, "wrong status")
	assert.Equal(t, coordinator.StatusCompleted, reply.Status, "wrong status value")
	assert.Equal(t, records[0], reply.Record, "wrong record")

	err = tx.Status(&transactions.StatusArguments{TxId: "tx9"}, &reply)
	assert.Equal(t, fault.ErrTransactionNotFound, err, "wrong error")
}

func TestHistory(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	tx := transactions.New(logger.New(fixtures.LogCategory), ops)

	ops.EXPECT().History(asset.Identifier(1)).Return(records, nil).Times(1)

	var reply transactions.RecordsReply
	err := tx.History(&transactions.HistoryArguments{AssetId: 1}, &reply)
	assert.Nil(t, err, "wrong history")
	assert.Equal(t, records, reply.Records, "wrong records")
}

func TestQuery(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	tx := transactions.New(logger.New(fixtures.LogCategory), ops)

	filter := audit.Filter{Kind: transactionrecord.Transfer, Participant: "U3"}
	ops.EXPECT().Transactions(filter).Return(records[1:], nil).Times(1)
	ops.EXPECT().Transactions(audit.Filter{Kind: "MINT"}).Return(nil, fault.ErrInvalidRecordKind).Times(1)

	var reply transactions.RecordsReply
	err := tx.Query(&transactions.QueryArguments{Kind: transactionrecord.Transfer, Participant: "U3"}, &reply)
	assert.Nil(t, err, "wrong query")
	assert.Equal(t, 1, len(reply.Records), "wrong count")

	err = tx.Query(&transactions.QueryArguments{Kind: "MINT"}, &reply)
	assert.Equal(t, fault.ErrInvalidRecordKind, err, "wrong error")
}
