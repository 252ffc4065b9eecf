// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bookchain/bookchaind/counter"
	"github.com/bookchain/bookchaind/fault"
)

const (
	rpcLogName = "client_rpc"
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections" yaml:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen" yaml:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate" yaml:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key" yaml:"private_key"`
}

type rpcListener struct {
	sync.Mutex

	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	networks       []string
	listen         []string
	listeners      []net.Listener
}

// NewRPC - JSON RPC over raw TCP, or over TLS when tlsConfig is not nil
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", rpcLogName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", rpcLogName)
		return nil, fault.ErrMissingParameters
	}

	networks, listen, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	return &rpcListener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		networks:       networks,
		listen:         listen,
	}, nil
}

// Serve - open every listen address and accept in the background
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, address := range r.listen {
		r.log.Infof("starting RPC server: %s  tls: %t", address, nil != r.tlsConfig)

		var l net.Listener
		var err error
		if nil == r.tlsConfig {
			l, err = net.Listen(r.networks[i], address)
		} else {
			l, err = tls.Listen(r.networks[i], address, r.tlsConfig)
		}
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, l)

		go doServeRPC(l, r.server, r.maxConnections, r.log, r.count)
	}
	return nil
}

// Close - stop accepting, connections in progress finish normally
func (r *rpcListener) Close() error {
	r.Lock()
	defer r.Unlock()

	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
	return nil
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			log.Infof("rpc accept terminated: %s", err)
			break
		}
		if count.Increment() <= maximumConnections {
			go func() {
				server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				count.Decrement()
			}()
		} else {
			count.Decrement()
			_ = conn.Close()
		}
	}
	_ = listen.Close()
}
