// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/pkg/errors"

	"github.com/bookchain/bookchaind/codec"
	"github.com/bookchain/bookchaind/fault"
)

// Packed - packed records are just a byte slice
type Packed []byte

// Pack - validate and encode a record for storage
func (r *Record) Pack() (Packed, error) {
	if err := r.Validate(); nil != err {
		return nil, err
	}
	return codec.Marshal(r)
}

// Unpack - decode a stored record
//
// anything that does not decode to a valid record is reported as a
// corrupt record so callers see a storage class error
func (record Packed) Unpack() (*Record, error) {
	r := &Record{}
	if err := codec.Unmarshal(record, r); nil != err {
		return nil, errors.Wrap(fault.ErrCorruptRecord, err.Error())
	}
	if err := r.Validate(); nil != err {
		return nil, errors.Wrap(fault.ErrCorruptRecord, err.Error())
	}
	return r, nil
}
