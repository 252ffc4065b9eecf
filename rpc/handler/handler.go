// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bookchain/bookchaind/counter"
	"github.com/bookchain/bookchaind/mode"
)

// Handler - the HTTP endpoints served by the http_rpc listener
type Handler interface {
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Connections(http.ResponseWriter, *http.Request)
	Root(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

type handler struct {
	sync.RWMutex

	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	maximumConnections uint64
	count              counter.Counter
}

// New - create an HTTP handler around an RPC server
func New(log *logger.L, server *rpc.Server, start time.Time, version string, maximumConnections uint64) Handler {
	return &handler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
	}
}

// SetAllow - replace the access lists, keyed by endpoint name
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.Lock()
	h.allow = allow
	h.Unlock()
}

// read/write adapter so a single HTTP exchange can drive a codec
type httpConn struct {
	in  io.Reader
	out io.Writer
}

func (c *httpConn) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c *httpConn) Write(p []byte) (int, error) { return c.out.Write(p) }
func (c *httpConn) Close() error                { return nil }

// RPC - POST a single JSON RPC request
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if h.count.Increment() > h.maximumConnections {
		h.count.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	buffer := &bufferedWriter{}
	codec := jsonrpc.NewServerCodec(&httpConn{in: r.Body, out: buffer})

	err := h.server.ServeRequest(codec)
	if nil != err {
		h.log.Errorf("rpc: %q  error: %s", r.RemoteAddr, err)
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buffer.data)
}

// Details - GET the current state of the node
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if !h.admit(w, r, "details") {
		return
	}
	defer h.count.Decrement()

	type reply struct {
		Mode        string `json:"mode"`
		Connections uint64 `json:"connections"`
		Version     string `json:"version"`
		Uptime      string `json:"uptime"`
	}

	sendReply(w, reply{
		Mode:        mode.String(),
		Connections: h.count.Uint64(),
		Version:     h.version,
		Uptime:      time.Since(h.start).String(),
	})
}

// Connections - GET the number of HTTP requests in progress
func (h *handler) Connections(w http.ResponseWriter, r *http.Request) {
	if !h.admit(w, r, "connections") {
		return
	}
	defer h.count.Decrement()

	type reply struct {
		ConnectedTo uint64 `json:"connectedTo"`
		Maximum     uint64 `json:"maximum"`
	}

	sendReply(w, reply{
		ConnectedTo: h.count.Uint64(),
		Maximum:     h.maximumConnections,
	})
}

// Root - anything not matched
func (h *handler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// check method, access list and connection limit
// the caller must decrement the count if this returns true
func (h *handler) admit(w http.ResponseWriter, r *http.Request, name string) bool {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return false
	}

	if !h.allowed(name, r.RemoteAddr) {
		h.log.Warnf("deny access: %s  from: %q", name, r.RemoteAddr)
		sendForbidden(w)
		return false
	}

	if h.count.Increment() > h.maximumConnections {
		h.count.Decrement()
		sendTooManyRequests(w)
		return false
	}
	return true
}

func (h *handler) allowed(name string, remoteAddr string) bool {
	host := remoteAddr
	if last := strings.LastIndex(remoteAddr, ":"); last >= 0 {
		host = remoteAddr[:last]
	}
	ip := net.ParseIP(strings.Trim(host, "[]"))
	if nil == ip {
		return false
	}

	h.RLock()
	defer h.RUnlock()

	for _, n := range h.allow[name] {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

type bufferedWriter struct {
	data []byte
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
