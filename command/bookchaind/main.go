// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bookchain/bookchaind/audit"
	"github.com/bookchain/bookchaind/background"
	"github.com/bookchain/bookchaind/coordinator"
	"github.com/bookchain/bookchaind/ledger"
	"github.com/bookchain/bookchaind/mode"
	"github.com/bookchain/bookchaind/owner"
	"github.com/bookchain/bookchaind/reconcile"
	"github.com/bookchain/bookchaind/rpc"
	"github.com/bookchain/bookchaind/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise()
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	log.Infof("database: %q", theConfiguration.DatabasePrefix())
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "HttpRPC", theConfiguration.HttpRPC)
	log.Debugf("%s = %#v", "Coordinator", theConfiguration.Coordinator)

	// start the data storage
	log.Info("open storage")
	db, err := storage.Open(logger.New("storage"), theConfiguration.DatabasePrefix(), storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage open error: %s", err)
		exitwithstatus.Message("storage open error: %s", err)
	}
	defer db.Close()

	store, err := ledger.New(logger.New("ledger"), db.Assets, db.Pending, db.Quarantine)
	if nil != err {
		log.Criticalf("ledger initialise error: %s", err)
		exitwithstatus.Message("ledger initialise error: %s", err)
	}

	trail, err := audit.New(logger.New("audit"), db.Transactions, db.AssetIndex)
	if nil != err {
		log.Criticalf("audit initialise error: %s", err)
		exitwithstatus.Message("audit initialise error: %s", err)
	}

	processes := background.Processes{}

	// owner directory
	owners := owner.Any()
	if "" != theConfiguration.Owners.File {
		f, err := owner.NewFile(logger.New("owners"), theConfiguration.Owners.File)
		if nil != err {
			log.Criticalf("owners file: %q  error: %s", theConfiguration.Owners.File, err)
			exitwithstatus.Message("owners file: %q  error: %s", theConfiguration.Owners.File, err)
		}
		owners = f
		processes = append(processes, f)
	} else {
		log.Warn("no owners file: any owner is accepted")
	}

	seed := theConfiguration.Coordinator.RandomSeed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}

	c, err := coordinator.New(
		logger.New("coordinator"),
		theConfiguration.CoordinatorConfiguration(),
		store,
		trail,
		owners,
		rand.New(rand.NewSource(seed)),
		time.Now,
		time.Sleep,
	)
	if nil != err {
		log.Criticalf("coordinator initialise error: %s", err)
		exitwithstatus.Message("coordinator initialise error: %s", err)
	}

	reconciler, err := reconcile.New(logger.New("reconcile"), theConfiguration.Reconcile, c)
	if nil != err {
		log.Criticalf("reconcile initialise error: %s", err)
		exitwithstatus.Message("reconcile initialise error: %s", err)
	}

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, db, reconciler) {
		return
	}

	// finish any audit records left by a previous run before
	// accepting writes
	n, err := reconciler.Drain()
	if nil != err {
		log.Errorf("startup reconcile error: %s  after: %d", err, n)
	}
	processes = append(processes, reconciler)

	mode.Set(mode.Normal)

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, &theConfiguration.HttpRPC, version, c)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		processes = append(processes, &memstats{log: logger.New("memory")})
	}

	bg := background.Start(processes, nil)
	defer bg.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}
