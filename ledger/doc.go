// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - current state of every asset
//
// The store is the source of truth for ownership.  Each mutation is
// guarded by a lock on the asset id and an expected version, so that of
// several concurrent transfers observing the same version exactly one
// succeeds.
//
// A mutation may carry a journal record.  The record is written to the
// pending pool in the same atomic batch as the asset, and stays there
// until the audit trail has accepted it.
package ledger
