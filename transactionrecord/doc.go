// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - the audit record of one ledger mutation
//
// Every create and transfer produces exactly one record, identified by
// its transaction id.  Records of one asset form a chain: each record
// links to the transaction id that produced the previous state and
// carries the asset version it produced.
package transactionrecord
