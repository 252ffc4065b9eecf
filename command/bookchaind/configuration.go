// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/logger"

	"github.com/bookchain/bookchaind/configuration"
	"github.com/bookchain/bookchaind/coordinator"
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/reconcile"
	"github.com/bookchain/bookchaind/rpc/listeners"
	"github.com/bookchain/bookchaind/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultDatabaseDirectory = "data"
	defaultDatabaseName      = "bookchain"

	defaultLogDirectory = "log"
	defaultLogFile      = "bookchaind.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// DatabaseType - where the ledger and audit databases live
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory" yaml:"directory"`
	Name      string `gluamapper:"name" json:"name" yaml:"name"`
}

// CoordinatorType - audit retry policy in configuration file units
type CoordinatorType struct {
	AuditAttempts    int   `gluamapper:"audit_attempts" json:"audit_attempts" yaml:"audit_attempts"`
	InitialBackoffMs int   `gluamapper:"initial_backoff_ms" json:"initial_backoff_ms" yaml:"initial_backoff_ms"`
	MaximumBackoffMs int   `gluamapper:"maximum_backoff_ms" json:"maximum_backoff_ms" yaml:"maximum_backoff_ms"`
	RandomSeed       int64 `gluamapper:"random_seed" json:"random_seed" yaml:"random_seed"`
}

// OwnersType - optional owner directory file, blank allows any owner
type OwnersType struct {
	File string `gluamapper:"file" json:"file" yaml:"file"`
}

// Configuration - the daemon configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory" yaml:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile" yaml:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database" yaml:"database"`

	ClientRPC   listeners.RPCConfiguration  `gluamapper:"client_rpc" json:"client_rpc" yaml:"client_rpc"`
	HttpRPC     listeners.HTTPConfiguration `gluamapper:"http_rpc" json:"http_rpc" yaml:"http_rpc"`
	Coordinator CoordinatorType             `gluamapper:"coordinator" json:"coordinator" yaml:"coordinator"`
	Reconcile   reconcile.Configuration     `gluamapper:"reconcile" json:"reconcile" yaml:"reconcile"`
	Owners      OwnersType                  `gluamapper:"owners" json:"owners" yaml:"owners"`
	Logging     logger.Configuration        `gluamapper:"logging" json:"logging" yaml:"logging"`
}

// CoordinatorConfiguration - convert to the coordinator's own units
func (c *Configuration) CoordinatorConfiguration() coordinator.Configuration {
	return coordinator.Configuration{
		AuditAttempts:  c.Coordinator.AuditAttempts,
		InitialBackoff: time.Duration(c.Coordinator.InitialBackoffMs) * time.Millisecond,
		MaximumBackoff: time.Duration(c.Coordinator.MaximumBackoffMs) * time.Millisecond,
	}
}

// DatabasePrefix - path prefix for storage.Open
func (c *Configuration) DatabasePrefix() string {
	return filepath.Join(c.Database.Directory, c.Database.Name)
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	defaults := coordinator.DefaultConfiguration()

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultDatabaseDirectory,
			Name:      defaultDatabaseName,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
		},

		HttpRPC: listeners.HTTPConfiguration{
			MaximumConnections: defaultRPCClients,
		},

		Coordinator: CoordinatorType{
			AuditAttempts:    defaults.AuditAttempts,
			InitialBackoffMs: int(defaults.InitialBackoff / time.Millisecond),
			MaximumBackoffMs: int(defaults.MaximumBackoff / time.Millisecond),
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, errors.Wrapf(fault.ErrInvalidDataDirectory, "path: %q", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, errors.Wrapf(fault.ErrInvalidDataDirectory, "path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.Owners.File,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpRPC.Certificate,
		&options.HttpRPC.PrivateKey,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator
	mustNotBePaths := []*string{
		&options.Database.Name,
		&options.Logging.File,
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f) {
		case "", ".":
		default:
			return nil, errors.Wrapf(fault.ErrNotPlainFileName, "file: %q", *f)
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
