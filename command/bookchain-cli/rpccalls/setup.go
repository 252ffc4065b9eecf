// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

const dialTimeout = 10 * time.Second

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a bookchaind
func NewClient(connect string, useTLS bool, verbose bool, handle io.Writer) (*Client, error) {

	var conn net.Conn
	var err error
	if useTLS {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}
		conn, err = tls.DialWithDialer(&net.Dialer{Timeout: dialTimeout}, "tcp", connect, tlsConfig)
	} else {
		conn, err = net.DialTimeout("tcp", connect, dialTimeout)
	}
	if nil != err {
		return nil, err
	}

	return NewClientFromConn(conn, verbose, handle), nil
}

// NewClientFromConn - wrap an existing connection
func NewClientFromConn(conn net.Conn, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the bookchaind connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// call with the request and reply shown when verbose
func (client *Client) call(method string, title string, arguments interface{}, reply interface{}) error {
	client.printJson(title+" Request", arguments)

	err := client.client.Call(method, arguments, reply)
	if nil != err {
		return err
	}

	client.printJson(title+" Reply", reply)
	return nil
}
