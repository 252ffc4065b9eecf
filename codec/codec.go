// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - self-describing CBOR encoding for stored records
//
// Records are encoded as CBOR maps keyed by field name so that a
// stored value can be decoded and inspected without knowing the Go
// type that wrote it.
package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var encMode cbor.EncMode
var decMode cbor.DecMode

func init() {
	var err error

	// Core Deterministic Encoding: the same record always packs to
	// the same bytes
	encOptions := cbor.CoreDetEncOptions()
	encOptions.Time = cbor.TimeRFC3339Nano
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialisation failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]interface{}(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialisation failed: " + err.Error())
	}
}

// Marshal - encode v as CBOR
func Marshal(v interface{}) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal - decode CBOR data into v
func Unmarshal(data []byte, v interface{}) error {
	return decMode.Unmarshal(data, v)
}

// Diagnose - CBOR diagnostic notation of a stored value, used by the
// database dump commands
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
