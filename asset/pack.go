// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/pkg/errors"

	"github.com/bookchain/bookchaind/codec"
	"github.com/bookchain/bookchaind/fault"
)

// Packed - packed records are just a byte slice
type Packed []byte

// Pack - encode an asset for storage
func (a *Asset) Pack() (Packed, error) {
	if 0 == a.Id {
		return nil, fault.ErrInvalidIdentifier
	}
	if !a.Type.Valid() {
		return nil, fault.ErrInvalidAssetType
	}
	return codec.Marshal(a)
}

// Unpack - decode a stored asset
func (record Packed) Unpack() (*Asset, error) {
	a := &Asset{}
	if err := codec.Unmarshal(record, a); nil != err {
		return nil, errors.Wrap(fault.ErrCorruptRecord, err.Error())
	}
	if 0 == a.Id || !a.Type.Valid() {
		return nil, fault.ErrCorruptRecord
	}
	return a, nil
}
