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
	"github.com/bookchain/bookchaind/command/bookchain-cli/rpccalls"
)

func runTransactionStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txId := strings.TrimSpace(c.String("txid"))
	if "" == txId {
		return ErrRequiredTxId
	}

	if m.verbose {
		fmt.Fprintf(m.e, "txid: %s\n", txId)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Status(txId)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkAssetId(c.String("id"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %s\n", id)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.History(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTransactions(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	filter := &rpccalls.TransactionFilter{
		Kind:        strings.ToUpper(strings.TrimSpace(c.String("kind"))),
		Sender:      strings.TrimSpace(c.String("sender")),
		Receiver:    strings.TrimSpace(c.String("receiver")),
		Participant: strings.TrimSpace(c.String("participant")),
	}
	if s := strings.TrimSpace(c.String("id")); "" != s {
		id, err := asset.ParseIdentifier(s)
		if nil != err {
			return err
		}
		filter.AssetId = id
	}

	if m.verbose {
		fmt.Fprintf(m.e, "filter: %+v\n", *filter)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transactions(filter)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
