// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"time"
	"unicode/utf8"

	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/fault"
)

// Kind - type of ledger mutation
type Kind string

// the possible record kinds
const (
	Create         Kind = "CREATE"
	CreateBlindBox Kind = "CREATE_BLIND_BOX"
	Transfer       Kind = "TRANSFER"
)

// byte sizes for various fields
const (
	maxTxIdLength   = 128
	maxRemarkLength = 256
)

// record errors
var (
	ErrMissingSender    = fault.InvalidError("transfer requires a sender")
	ErrRemarkTooLong    = fault.InvalidError("remark is too long")
	ErrTxIdTooLong      = fault.InvalidError("transaction id is too long")
	ErrUnexpectedLink   = fault.InvalidError("create must not link to a previous transaction")
	ErrUnexpectedSender = fault.InvalidError("create must not have a sender")
)

// Record - one audit trail entry
type Record struct {
	TxId      string           `cbor:"tx_id" json:"txId"`
	AssetId   asset.Identifier `cbor:"asset_id" json:"assetId"`
	Kind      Kind             `cbor:"kind" json:"kind"`
	Sender    string           `cbor:"sender,omitempty" json:"sender,omitempty"`
	Receiver  string           `cbor:"receiver" json:"receiver"`
	Timestamp time.Time        `cbor:"timestamp" json:"timestamp"`
	Remark    string           `cbor:"remark,omitempty" json:"remark,omitempty"`
	Version   uint64           `cbor:"version" json:"version"`
	Link      string           `cbor:"link,omitempty" json:"link,omitempty"`
}

// ParseKind - convert a string to a record kind
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fault.ErrInvalidRecordKind
	}
	return k, nil
}

// Valid - check that k is one of the known kinds
func (k Kind) Valid() bool {
	switch k {
	case Create, CreateBlindBox, Transfer:
		return true
	}
	return false
}

// IsCreate - true for both create kinds
func (k Kind) IsCreate() bool {
	return Create == k || CreateBlindBox == k
}

// KindFor - the create kind matching an asset type
func KindFor(t asset.Type) Kind {
	if asset.BlindBox == t {
		return CreateBlindBox
	}
	return Create
}

// Validate - check the structure of a record
func (r *Record) Validate() error {
	if "" == r.TxId {
		return fault.ErrRequiredTransactionId
	}
	if len(r.TxId) > maxTxIdLength {
		return ErrTxIdTooLong
	}
	if 0 == r.AssetId {
		return fault.ErrInvalidIdentifier
	}
	if !r.Kind.Valid() {
		return fault.ErrInvalidRecordKind
	}
	if err := asset.ValidateOwner(r.Receiver); nil != err {
		return err
	}
	if utf8.RuneCountInString(r.Remark) > maxRemarkLength {
		return ErrRemarkTooLong
	}

	if r.Kind.IsCreate() {
		if "" != r.Sender {
			return ErrUnexpectedSender
		}
		if "" != r.Link {
			return ErrUnexpectedLink
		}
	} else if "" == r.Sender {
		return ErrMissingSender
	}
	return nil
}

// SameOperation - true if other describes the same ledger mutation,
// used to tell a retried request from a reused transaction id
func (r *Record) SameOperation(other *Record) bool {
	return r.TxId == other.TxId &&
		r.AssetId == other.AssetId &&
		r.Kind == other.Kind &&
		r.Version == other.Version
}

// Involves - true if owner is the sender or the receiver
func (r *Record) Involves(owner string) bool {
	return owner == r.Sender || owner == r.Receiver
}
