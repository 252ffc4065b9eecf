// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bookchain/bookchaind/asset"
)

func runRead(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkAssetId(c.String("id"))
	if nil != err {
		return err
	}
	viewer := strings.TrimSpace(c.String("viewer"))

	if m.verbose {
		fmt.Fprintf(m.e, "id: %s\n", id)
		fmt.Fprintf(m.e, "viewer: %q\n", viewer)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Read(id, viewer)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runQuery(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetType := strings.ToUpper(strings.TrimSpace(c.String("type")))
	if "" != assetType {
		if _, err := asset.ParseType(assetType); nil != err {
			return err
		}
	}
	viewer := strings.TrimSpace(c.String("viewer"))

	if m.verbose {
		fmt.Fprintf(m.e, "type: %q\n", assetType)
		fmt.Fprintf(m.e, "viewer: %q\n", viewer)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Query(assetType, viewer)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner := strings.TrimSpace(c.String("owner"))
	if "" == owner {
		return ErrRequiredOwner
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Owned(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func checkAssetId(s string) (asset.Identifier, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return 0, ErrRequiredId
	}
	return asset.ParseIdentifier(s)
}
