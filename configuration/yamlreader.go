// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

// decode a YAML file into a configuration structure, keys not
// present keep their existing values
func parseYAMLFile(fileName string, config interface{}) error {
	b, err := ioutil.ReadFile(fileName)
	if nil != err {
		return err
	}
	return yaml.Unmarshal(b, config)
}
