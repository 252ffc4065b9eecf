// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua or YAML configuration file
//
// a ".lua" file is executed and the table it returns is mapped onto
// the configuration structure, so most of base Lua is available such
// as reading files to set key data and getenv to extract environment
// supplied items.  A ".yaml" or ".yml" file is decoded directly.
package configuration
