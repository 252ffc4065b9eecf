// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data stores
//
// maintain separate pools of a number of elements in key->value form
//
// Two independent databases are used so that a failure of one does not
// take down the other:
//
//   ledger - a LevelDB database holding current asset state and the
//            pending journal, written in atomic batches
//   audit  - a Badger database holding the append-only transaction
//            records and their per-asset index
//
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++       = concatenation of byte data
// 3. asset id = big endian uint64 (8 bytes)
// 4. version  = big endian uint64 (8 bytes)
// 5. txId     = transaction id string bytes
// 6. record   = CBOR map (self-describing)
//
// Ledger:
//
//   A ++ asset id              - current asset state
//                                data: packed asset
//   P ++ txId                  - pending journal: ledger applied, audit outstanding
//                                data: packed transaction record
//
// Audit:
//
//   T ++ txId                  - transaction records
//                                data: packed transaction record
//   X ++ asset id ++ version   - per asset history index
//                                data: txId
//
// Testing:
//   Z ++ key                   - testing data
package storage
