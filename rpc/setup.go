// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bookchain/bookchaind/coordinator"
	"github.com/bookchain/bookchaind/counter"
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/rpc/certificate"
	"github.com/bookchain/bookchaind/rpc/handler"
	"github.com/bookchain/bookchaind/rpc/listeners"
	"github.com/bookchain/bookchaind/rpc/server"
)

const (
	rpcName  = "client_rpc"
	httpName = "http_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of active client connections
var connectionCountRPC counter.Counter

// Initialise - start the RPC and HTTP listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpConfiguration *listeners.HTTPConfiguration, version string, operations coordinator.Operations) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, err := loadCertificate(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC, operations),
		tlsConfig,
	)
	if nil != err {
		return err
	}

	httpTLSConfig, err := loadCertificate(log, httpName, httpConfiguration.Certificate, httpConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	hdlr := handler.New(
		log,
		server.Create(log, version, &connectionCountRPC, operations),
		time.Now(),
		version,
		httpConfiguration.MaximumConnections,
	)
	httpListener, err := listeners.NewHTTP(httpConfiguration, log, httpTLSConfig, hdlr)
	if nil != err {
		return err
	}

	globalData.listeners = nil
	for _, l := range []listeners.Listener{rpcListener, httpListener} {
		if nil == l {
			continue
		}
		if err := l.Serve(); nil != err {
			closeAll()
			return err
		}
		globalData.listeners = append(globalData.listeners, l)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	closeAll()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

func closeAll() {
	for _, l := range globalData.listeners {
		_ = l.Close()
	}
	globalData.listeners = nil
}

// empty certificate means plain TCP
func loadCertificate(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, error) {
	if "" == certificateFileName {
		log.Warnf("%s: no certificate, TLS disabled", name)
		return nil, nil
	}

	tlsConfig, fingerprint, err := certificate.Load(log, name, certificateFileName, keyFileName)
	if nil != err {
		return nil, err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", name, fingerprint)
	return tlsConfig, nil
}
