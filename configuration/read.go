// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/bookchain/bookchaind/fault"
)

// ParseConfigurationFile - read a configuration file into config,
// selecting the format from the file extension
func ParseConfigurationFile(fileName string, config interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.ErrInvalidStructPointer
	}

	// now sure item is a pointer, make sure it points to some kind of struct
	if rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".lua", ".conf":
		return parseLuaFile(fileName, config)
	case ".yaml", ".yml":
		return parseYAMLFile(fileName, config)
	default:
		return errors.Wrapf(fault.ErrUnsupportedConfiguration, "file: %q", fileName)
	}
}
