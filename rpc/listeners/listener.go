// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bookchain/bookchaind/util"
)

const (
	minConnectionCount = 1
	keepAlivePeriod    = 3 * time.Minute
)

// Listener - a configured server that can start accepting
type Listener interface {
	Serve() error
	Close() error
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if nil != err {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(keepAlivePeriod)
	return tc, nil
}

// check every listen address and give the network to use for each
//
// "*:PORT" is rewritten to "[::]:PORT" on the assumption that this
// will listen on tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	listen := make([]string, len(addrs))
	for i, address := range addrs {
		if strings.HasPrefix(address, "*:") {
			address = "[::]:" + strings.TrimPrefix(address, "*:")
			networks[i] = "tcp"
		} else if strings.HasPrefix(address, "[") {
			networks[i] = "tcp6"
		} else {
			networks[i] = "tcp4"
		}

		canonical, err := util.CanonicalIPandPort(address)
		if nil != err {
			log.Errorf("invalid listen address: %q  error: %s", address, err)
			return nil, nil, err
		}
		listen[i] = canonical
	}
	return networks, listen, nil
}
