// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bookchain/bookchaind/rpc/chaincode"
	"github.com/bookchain/bookchaind/rpc/node"
)

// Info - node state
func (client *Client) Info() (*node.InfoReply, error) {

	var reply node.InfoReply
	if err := client.call("Node.Info", "Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Invoke - call a chaincode style function by name
func (client *Client) Invoke(function string, args map[string]string) (*chaincode.InvokeReply, error) {

	arguments := chaincode.InvokeArguments{
		Function: function,
		Args:     args,
	}

	var reply chaincode.InvokeReply
	if err := client.call("Chaincode.Invoke", "Invoke", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
