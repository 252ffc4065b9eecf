// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"github.com/bookchain/bookchaind/command/bookchain-cli/rpccalls"
)

func createFlags() []cli.Flag {
	return []cli.Flag{
		cli.Uint64Flag{
			Name:  "id, i",
			Value: 0,
			Usage: " asset `ID`, assigned by the ledger if zero",
		},
		cli.StringFlag{
			Name:  "owner, o",
			Value: "",
			Usage: "*initial owner `OWNER`",
		},
		cli.StringFlag{
			Name:  "title, T",
			Value: "",
			Usage: "*title `STRING`",
		},
		cli.StringFlag{
			Name:  "author, a",
			Value: "",
			Usage: " author `STRING`",
		},
		cli.StringFlag{
			Name:  "description, d",
			Value: "",
			Usage: " description `STRING`",
		},
		cli.StringFlag{
			Name:  "category, g",
			Value: "",
			Usage: " category `STRING`",
		},
		cli.StringFlag{
			Name:  "remark, m",
			Value: "",
			Usage: " remark stored with the audit record `STRING`",
		},
		cli.StringFlag{
			Name:  "txid, t",
			Value: "",
			Usage: " client transaction id, generated if blank `TXID`",
		},
	}
}

func runCreate(c *cli.Context) error {
	return create(c, false)
}

func runBlindBox(c *cli.Context) error {
	return create(c, true)
}

func create(c *cli.Context, blindBox bool) error {

	m := c.App.Metadata["config"].(*metadata)

	owner := strings.TrimSpace(c.String("owner"))
	if "" == owner {
		return ErrRequiredOwner
	}

	title := strings.TrimSpace(c.String("title"))
	if "" == title {
		return ErrRequiredTitle
	}

	txId := makeTxId(c.String("txid"))

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "title: %s\n", title)
		fmt.Fprintf(m.e, "blind box: %t\n", blindBox)
		fmt.Fprintf(m.e, "txid: %s\n", txId)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	createConfig := &rpccalls.CreateData{
		AssetId:     c.Uint64("id"),
		Owner:       owner,
		BlindBox:    blindBox,
		Title:       title,
		Author:      c.String("author"),
		Description: c.String("description"),
		Category:    c.String("category"),
		TxId:        txId,
		Remark:      c.String("remark"),
	}

	response, err := client.Create(createConfig)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// blank ids get a random one so that a retried command can be replayed
func makeTxId(txId string) string {
	txId = strings.TrimSpace(txId)
	if "" == txId {
		return uuid.New().String()
	}
	return txId
}
