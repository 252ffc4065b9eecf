// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"time"
	"unicode/utf8"

	"github.com/bookchain/bookchaind/fault"
)

// Type - kind of asset
type Type string

// the possible asset types
const (
	Normal   Type = "NORMAL"
	BlindBox Type = "BLIND_BOX"
)

// byte sizes for various fields
const (
	maxTitleLength       = 255
	maxAuthorLength      = 128
	maxDescriptionLength = 1024
	maxCategoryLength    = 64
	maxOwnerLength       = 256
)

// field length errors
var (
	ErrTitleTooLong       = fault.InvalidError("title is too long")
	ErrAuthorTooLong      = fault.InvalidError("author is too long")
	ErrDescriptionTooLong = fault.InvalidError("description is too long")
	ErrCategoryTooLong    = fault.InvalidError("category is too long")
	ErrOwnerTooLong       = fault.InvalidError("owner is too long")
)

// Fields - the descriptive part of an asset
type Fields struct {
	Title       string `cbor:"title" json:"title"`
	Author      string `cbor:"author" json:"author"`
	Description string `cbor:"description" json:"description"`
	Category    string `cbor:"category" json:"category"`
}

// Asset - the current state of one asset
type Asset struct {
	Id    Identifier `cbor:"id" json:"id"`
	Owner string     `cbor:"owner" json:"owner"`
	Type  Type       `cbor:"type" json:"type"`
	Fields
	CreatedAt time.Time `cbor:"created_at" json:"createdAt"`
	Version   uint64    `cbor:"version" json:"version"`
	LastTxId  string    `cbor:"last_tx_id" json:"lastTxId"`
}

// ParseType - convert a string to an asset type
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case Normal, BlindBox:
		return t, nil
	default:
		return "", fault.ErrInvalidAssetType
	}
}

// Valid - check that t is one of the known types
func (t Type) Valid() bool {
	return Normal == t || BlindBox == t
}

// String - the text form of the type
func (t Type) String() string {
	return string(t)
}

// Validate - check field lengths
func (f Fields) Validate() error {
	if utf8.RuneCountInString(f.Title) > maxTitleLength {
		return ErrTitleTooLong
	}
	if utf8.RuneCountInString(f.Author) > maxAuthorLength {
		return ErrAuthorTooLong
	}
	if utf8.RuneCountInString(f.Description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if utf8.RuneCountInString(f.Category) > maxCategoryLength {
		return ErrCategoryTooLong
	}
	return nil
}

// ValidateOwner - check an owner reference
func ValidateOwner(owner string) error {
	if "" == owner {
		return fault.ErrRequiredOwner
	}
	if len(owner) > maxOwnerLength {
		return ErrOwnerTooLong
	}
	return nil
}

// Copy - an independent copy of the asset
func (a *Asset) Copy() *Asset {
	if nil == a {
		return nil
	}
	c := *a
	return &c
}
