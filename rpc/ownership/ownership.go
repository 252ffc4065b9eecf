// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/coordinator"
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/mode"
	"github.com/bookchain/bookchaind/rpc/ratelimit"
	"github.com/bookchain/bookchaind/transactionrecord"
	"github.com/bookchain/bookchaind/visibility"
)

// Ownership - type for the RPC
type Ownership struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Operations   coordinator.Operations
	IsNormalMode func(mode.Mode) bool
}

const (
	rateLimitOwnership = 100
	rateBurstOwnership = 50
)

// New - create the ownership RPC service
func New(log *logger.L, operations coordinator.Operations, isNormalMode func(mode.Mode) bool) *Ownership {
	return &Ownership{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitOwnership, rateBurstOwnership),
		Operations:   operations,
		IsNormalMode: isNormalMode,
	}
}

// ---

// TransferArguments - arguments for transfer RPC request
type TransferArguments struct {
	AssetId   asset.Identifier `json:"id"`
	Requester string           `json:"requester"`
	NewOwner  string           `json:"newOwner"`
	TxId      string           `json:"txId"`
}

// TransferReply - results from transfer RPC request
type TransferReply struct {
	Record *transactionrecord.Record `json:"record"`
	Status coordinator.Status        `json:"status"`
}

// Transfer - RPC to move an asset to a new owner
func (ownership *Ownership) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(ownership.Limiter); nil != err {
		return err
	}

	if !ownership.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailable
	}

	log := ownership.Log
	log.Infof("Ownership.Transfer: %+v", arguments)

	record, err := ownership.Operations.TransferOwnership(arguments.AssetId, arguments.Requester, arguments.NewOwner, arguments.TxId)
	switch {
	case nil == err:
		reply.Status = coordinator.StatusCompleted
	case fault.IsErrPartialFailure(err):
		log.Warnf("Ownership.Transfer: %s", err)
		reply.Status = coordinator.StatusPending
	default:
		return err
	}

	reply.Record = record
	return nil
}

// ---

// OwnedArguments - arguments for owned RPC request
type OwnedArguments struct {
	Owner string `json:"owner"`
}

// OwnedReply - results from owned RPC request
type OwnedReply struct {
	Assets []visibility.ViewableAsset `json:"assets"`
}

// Owned - RPC to list the assets currently held by one owner, shown
// as the owner sees them
func (ownership *Ownership) Owned(arguments *OwnedArguments, reply *OwnedReply) error {

	if err := ratelimit.Limit(ownership.Limiter); nil != err {
		return err
	}

	if "" == arguments.Owner {
		return fault.ErrRequiredOwner
	}

	all, err := ownership.Operations.QueryAssets(nil, arguments.Owner)
	if nil != err {
		return err
	}

	owned := make([]visibility.ViewableAsset, 0, len(all))
	for _, a := range all {
		if arguments.Owner == a.Owner {
			owned = append(owned, a)
		}
	}
	reply.Assets = owned
	return nil
}
