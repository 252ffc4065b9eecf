// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"
	"strconv"

	"github.com/bookchain/bookchaind/fault"
)

// Identifier - asset id, zero is never a valid id
type Identifier uint64

// identifierLength - size of the packed key
const identifierLength = 8

// MaximumIdentifier - highest id the ledger stores, the largest
// integer a JSON number holds exactly
const MaximumIdentifier Identifier = 1<<53 - 1

// ParseIdentifier - convert decimal text to an identifier
func ParseIdentifier(s string) (Identifier, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if nil != err || 0 == n {
		return 0, fault.ErrInvalidIdentifier
	}
	return Identifier(n), nil
}

// IdentifierFromKey - decode a storage key
func IdentifierFromKey(key []byte) (Identifier, error) {
	if identifierLength != len(key) {
		return 0, fault.ErrInvalidIdentifier
	}
	return Identifier(binary.BigEndian.Uint64(key)), nil
}

// Key - the big endian storage key
func (id Identifier) Key() []byte {
	key := make([]byte, identifierLength)
	binary.BigEndian.PutUint64(key, uint64(id))
	return key
}

// String - decimal text
func (id Identifier) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// MarshalText - convert identifier to text
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert text into an identifier
func (id *Identifier) UnmarshalText(s []byte) error {
	n, err := ParseIdentifier(string(s))
	if nil != err {
		return err
	}
	*id = n
	return nil
}
