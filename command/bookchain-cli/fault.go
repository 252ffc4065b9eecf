// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bookchain/bookchaind/fault"
)

// errors specific to the command line
var (
	ErrRequiredConnect    = fault.InvalidError("connect is required")
	ErrRequiredFunction   = fault.InvalidError("function is required")
	ErrRequiredId         = fault.InvalidError("asset id is required")
	ErrRequiredOwner      = fault.InvalidError("owner is required")
	ErrRequiredReceiver   = fault.InvalidError("receiver is required")
	ErrRequiredTitle      = fault.InvalidError("title is required")
	ErrRequiredTxId       = fault.InvalidError("transaction id is required")
	ErrInvalidInvokeValue = fault.InvalidError("invoke argument must be KEY=VALUE")
)
