// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - the tracked unit of ownership
//
// An asset is either a normal book or a blind-box book.  The stored
// form is a CBOR map (see codec) keyed by the big-endian identifier so
// that ascending key order is ascending numeric order.
package asset
