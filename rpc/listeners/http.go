// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/rpc/handler"
)

const (
	httpLogName      = "http_rpc"
	readWriteTimeout = 10 * time.Second
)

// HTTPConfiguration - configuration file data for HTTP setup
type HTTPConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections" yaml:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen" yaml:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate" yaml:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key" yaml:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow" yaml:"allow"`
}

type httpListener struct {
	sync.Mutex

	log       *logger.L
	listen    []string
	networks  []string
	tlsConfig *tls.Config
	mux       *http.ServeMux
	servers   []*http.Server
}

// NewHTTP - the /bookchain/* endpoints, over TLS when tlsConfig is
// not nil; a nil listener is returned when nothing is configured
func NewHTTP(
	configuration *HTTPConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpLogName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}

	networks, listen, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	// create access control and format strings to match http.Request.RemoteAddr
	local := make(map[string][]*net.IPNet)
	for path, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		local[path] = set
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				log.Errorf("invalid %s allow: %q  error: %s", httpLogName, ip, err)
				return nil, err
			}
			set[i] = cidr
		}
	}
	hdlr.SetAllow(local)

	mux := http.NewServeMux()
	mux.HandleFunc("/bookchain/rpc", hdlr.RPC)
	mux.HandleFunc("/bookchain/details", hdlr.Details)
	mux.HandleFunc("/bookchain/connections", hdlr.Connections)
	mux.HandleFunc("/", hdlr.Root)

	return &httpListener{
		log:       log,
		listen:    listen,
		networks:  networks,
		tlsConfig: tlsConfig,
		mux:       mux,
	}, nil
}

// Serve - open every listen address and serve in the background
func (h *httpListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for i, address := range h.listen {
		h.log.Infof("starting server: %s on: %q  tls: %t", httpLogName, address, nil != h.tlsConfig)

		ln, err := net.Listen(h.networks[i], address)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpLogName, err)
			return err
		}

		var l net.Listener = tcpKeepAliveListener{ln.(*net.TCPListener)}
		if nil != h.tlsConfig {
			cfg := h.tlsConfig.Clone()
			cfg.NextProtos = []string{"http/1.1"}
			l = tls.NewListener(l, cfg)
		}

		s := &http.Server{
			Handler:        h.mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)

		go func() {
			err := s.Serve(l)
			if http.ErrServerClosed != err {
				h.log.Errorf("%s serve error: %s", httpLogName, err)
			}
		}()
	}
	return nil
}

// Close - shut down all servers
func (h *httpListener) Close() error {
	h.Lock()
	defer h.Unlock()

	for _, s := range h.servers {
		_ = s.Close()
	}
	h.servers = nil
	return nil
}
