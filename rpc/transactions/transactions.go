// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactions

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/audit"
	"github.com/bookchain/bookchaind/coordinator"
	"github.com/bookchain/bookchaind/rpc/ratelimit"
	"github.com/bookchain/bookchaind/transactionrecord"
)

const (
	rateLimitTransactions = 200
	rateBurstTransactions = 100
)

// Transactions - an RPC entry for audit trail queries
type Transactions struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Operations coordinator.Operations
}

// New - create the transactions RPC service
func New(log *logger.L, operations coordinator.Operations) *Transactions {
	return &Transactions{
		Log:        log,
		Limiter:    rate.NewLimiter(rateLimitTransactions, rateBurstTransactions),
		Operations: operations,
	}
}

// ---

// StatusArguments - arguments for status RPC request
type StatusArguments struct {
	TxId string `json:"txId"`
}

// StatusReply - results from status RPC
type StatusReply struct {
	Status coordinator.Status        `json:"status"`
	Record *transactionrecord.Record `json:"record"`
}

// Status - query the status of a transaction
func (t *Transactions) Status(arguments *StatusArguments, reply *StatusReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	status, record, err := t.Operations.Status(arguments.TxId)
	if nil != err {
		return err
	}
	reply.Status = status
	reply.Record = record
	return nil
}

// ---

// HistoryArguments - arguments for history RPC request
type HistoryArguments struct {
	AssetId asset.Identifier `json:"id"`
}

// RecordsReply - list of audit records
type RecordsReply struct {
	Records []*transactionrecord.Record `json:"records"`
}

// History - the audit records of one asset in version order
func (t *Transactions) History(arguments *HistoryArguments, reply *RecordsReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	records, err := t.Operations.History(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Records = records
	return nil
}

// ---

// QueryArguments - arguments for query RPC request, empty fields
// match anything
type QueryArguments struct {
	AssetId     asset.Identifier       `json:"id,omitempty"`
	Kind        transactionrecord.Kind `json:"kind"`
	Sender      string                 `json:"sender"`
	Receiver    string                 `json:"receiver"`
	Participant string                 `json:"participant"`
}

// Query - audit records matching all given fields
func (t *Transactions) Query(arguments *QueryArguments, reply *RecordsReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Debugf("Transactions.Query: %+v", arguments)

	records, err := t.Operations.Transactions(audit.Filter{
		AssetId:     arguments.AssetId,
		Kind:        arguments.Kind,
		Sender:      arguments.Sender,
		Receiver:    arguments.Receiver,
		Participant: arguments.Participant,
	})
	if nil != err {
		return err
	}
	reply.Records = records
	return nil
}
