// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bookchain/bookchaind/codec"
	"github.com/bookchain/bookchaind/reconcile"
	"github.com/bookchain/bookchaind/rpc/certificate"
	"github.com/bookchain/bookchaind/storage"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.Generate("rpc", certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "dump-assets", "assets", "dump-pending", "pending", "dump-quarantine", "quarantine", "dump-transactions", "transactions", "reconcile":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-assets [FILE]         (assets) - dump the ledger in CBOR diagnostic notation\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-pending [FILE]        (pending) - dump transactions waiting for the audit trail\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-quarantine [FILE]     (quarantine) - dump transactions that conflict with the audit trail\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-transactions [FILE]   (transactions) - dump the audit trail\n")
		fmt.Printf("\n")

		fmt.Printf("  reconcile                           - complete all pending audit records then exit\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the databases are open so these commands can access and/or change
// them; nothing is listening yet
func processDataCommand(log *logger.L, arguments []string, db *storage.Database, reconciler *reconcile.Reconciler) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "dump-assets", "assets":
		dumpPool(arguments, db.Assets)

	case "dump-pending", "pending":
		dumpPool(arguments, db.Pending)

	case "dump-quarantine", "quarantine":
		dumpPool(arguments, db.Quarantine)

	case "dump-transactions", "transactions":
		dumpPool(arguments, db.Transactions)

	case "reconcile":
		n, err := reconciler.Drain()
		if nil != err {
			exitwithstatus.Message("reconcile error: %s  after completing: %d", err, n)
		}
		log.Infof("reconciled: %d", n)
		fmt.Printf("completed: %d pending transactions\n", n)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// write every record of a pool, one per line, to stdout or a file
func dumpPool(arguments []string, handle storage.Handle) {
	output := "-"
	if len(arguments) > 0 {
		output = strings.TrimSpace(arguments[0])
	}

	var fd io.WriteCloser = os.Stdout
	if "" != output && "-" != output {
		f, err := os.Create(output)
		if nil != err {
			exitwithstatus.Message("error: creating: %q error: %s", output, err)
		}
		fd = f
	}
	defer fd.Close()

	n := 0
	err := storage.NewFetchCursor(handle).Map(func(key []byte, value []byte) error {
		text, err := codec.Diagnose(value)
		if nil != err {
			return err
		}
		n += 1
		_, err = fmt.Fprintf(fd, "%x: %s\n", key, text)
		return err
	})
	if nil != err {
		exitwithstatus.Message("dump error: %s  after: %d records", err, n)
	}
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
