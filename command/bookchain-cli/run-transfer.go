// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bookchain/bookchaind/command/bookchain-cli/rpccalls"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkAssetId(c.String("id"))
	if nil != err {
		return err
	}

	owner := strings.TrimSpace(c.String("owner"))
	if "" == owner {
		return ErrRequiredOwner
	}

	receiver := strings.TrimSpace(c.String("receiver"))
	if "" == receiver {
		return ErrRequiredReceiver
	}

	txId := makeTxId(c.String("txid"))

	if m.verbose {
		fmt.Fprintf(m.e, "id: %s\n", id)
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
		fmt.Fprintf(m.e, "txid: %s\n", txId)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	transferConfig := &rpccalls.TransferData{
		AssetId:   id,
		Requester: owner,
		NewOwner:  receiver,
		TxId:      txId,
	}

	response, err := client.Transfer(transferConfig)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
