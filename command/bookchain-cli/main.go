// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bookchain/bookchaind/command/bookchain-cli/rpccalls"
)

type metadata struct {
	connect string
	useTLS  bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "bookchain-cli"
	app.Usage = "client for the bookchaind asset ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " bookchaind client RPC `HOST:PORT`",
		},
		cli.BoolFlag{
			Name:  "tls, s",
			Usage: " connect using TLS",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "create a new asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     createFlags(),
			Action:    runCreate,
		},
		{
			Name:      "blind-box",
			Usage:     "create a new blind box, only its owner sees its contents",
			ArgsUsage: "\n   (* = required)",
			Flags:     createFlags(),
			Action:    runBlindBox,
		},
		{
			Name:      "transfer",
			Usage:     "transfer an asset to a new owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*asset `ID`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*current owner making the request `OWNER`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*new owner `OWNER`",
				},
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: " client transaction id, generated if blank `TXID`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "read",
			Usage:     "display one asset as seen by a viewer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*asset `ID`",
				},
				cli.StringFlag{
					Name:  "viewer, w",
					Value: "",
					Usage: " identity viewing the asset `OWNER`",
				},
			},
			Action: runRead,
		},
		{
			Name:      "query",
			Usage:     "list assets as seen by a viewer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, y",
					Value: "",
					Usage: " only assets of `TYPE` [NORMAL|BLIND_BOX]",
				},
				cli.StringFlag{
					Name:  "viewer, w",
					Value: "",
					Usage: " identity viewing the assets `OWNER`",
				},
			},
			Action: runQuery,
		},
		{
			Name:      "owned",
			Usage:     "list assets held by an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `OWNER`",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "status",
			Usage:     "display the status of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction id to check status `TXID`",
				},
			},
			Action: runTransactionStatus,
		},
		{
			Name:      "history",
			Usage:     "list the audit trail of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*asset `ID`",
				},
			},
			Action: runHistory,
		},
		{
			Name:      "transactions",
			Usage:     "list audit records matching a filter",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: " asset `ID`",
				},
				cli.StringFlag{
					Name:  "kind, k",
					Value: "",
					Usage: " record `KIND` [CREATE|TRANSFER]",
				},
				cli.StringFlag{
					Name:  "sender, f",
					Value: "",
					Usage: " sender `OWNER`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: " receiver `OWNER`",
				},
				cli.StringFlag{
					Name:  "participant, p",
					Value: "",
					Usage: " sender or receiver `OWNER`",
				},
			},
			Action: runTransactions,
		},
		{
			Name:      "invoke",
			Usage:     "call a named ledger function with key=value arguments",
			ArgsUsage: "FUNCTION [KEY=VALUE...]\n   (* = required)",
			Action:    runInvoke,
		},
		{
			Name:   "info",
			Usage:  "display bookchaind status",
			Action: runInfo,
		},
		{
			Name:   "version",
			Usage:  "display bookchain-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			connect: c.GlobalString("connect"),
			useTLS:  c.GlobalBool("tls"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		if "" == m.connect {
			return ErrRequiredConnect
		}

		c.App.Metadata["config"] = m
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// open a connection using the global flags
func newClient(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.useTLS, m.verbose, m.e)
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
