// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bookchain/bookchaind/coordinator"
	"github.com/bookchain/bookchaind/counter"
	"github.com/bookchain/bookchaind/mode"
	"github.com/bookchain/bookchaind/rpc/assets"
	"github.com/bookchain/bookchaind/rpc/chaincode"
	"github.com/bookchain/bookchaind/rpc/node"
	"github.com/bookchain/bookchaind/rpc/ownership"
	"github.com/bookchain/bookchaind/rpc/transactions"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, operations coordinator.Operations) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(assets.New(log, operations, mode.Is))
	_ = server.Register(ownership.New(log, operations, mode.Is))
	_ = server.Register(transactions.New(log, operations))
	_ = server.Register(chaincode.New(log, operations, mode.Is))
	_ = server.Register(node.New(log, start, version, rpcCount, mode.String))

	return server
}
