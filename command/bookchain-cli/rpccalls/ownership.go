// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/rpc/ownership"
)

// TransferData - request data for a transfer
type TransferData struct {
	AssetId   asset.Identifier
	Requester string
	NewOwner  string
	TxId      string
}

// Transfer - move an asset to a new owner
func (client *Client) Transfer(data *TransferData) (*ownership.TransferReply, error) {

	arguments := ownership.TransferArguments{
		AssetId:   data.AssetId,
		Requester: data.Requester,
		NewOwner:  data.NewOwner,
		TxId:      data.TxId,
	}

	var reply ownership.TransferReply
	if err := client.call("Ownership.Transfer", "Transfer", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Owned - assets held by one owner
func (client *Client) Owned(owner string) (*ownership.OwnedReply, error) {

	arguments := ownership.OwnedArguments{
		Owner: owner,
	}

	var reply ownership.OwnedReply
	if err := client.call("Ownership.Owned", "Owned", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
