// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/rpc/transactions"
	"github.com/bookchain/bookchaind/transactionrecord"
)

// Status - whether a transaction is completed or pending
func (client *Client) Status(txId string) (*transactions.StatusReply, error) {

	arguments := transactions.StatusArguments{
		TxId: txId,
	}

	var reply transactions.StatusReply
	if err := client.call("Transactions.Status", "Status", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// History - audit records of one asset
func (client *Client) History(id asset.Identifier) (*transactions.RecordsReply, error) {

	arguments := transactions.HistoryArguments{
		AssetId: id,
	}

	var reply transactions.RecordsReply
	if err := client.call("Transactions.History", "History", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// TransactionFilter - empty fields match anything
type TransactionFilter struct {
	AssetId     asset.Identifier
	Kind        string
	Sender      string
	Receiver    string
	Participant string
}

// Transactions - audit records matching a filter
func (client *Client) Transactions(filter *TransactionFilter) (*transactions.RecordsReply, error) {

	arguments := transactions.QueryArguments{
		AssetId:     filter.AssetId,
		Kind:        transactionrecord.Kind(filter.Kind),
		Sender:      filter.Sender,
		Receiver:    filter.Receiver,
		Participant: filter.Participant,
	}

	var reply transactions.RecordsReply
	if err := client.call("Transactions.Query", "Transactions", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
