// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincode - string keyed invoke surface
//
// a call names a function and passes its parameters as a map of
// strings; the reply carries a status code, the error kind and a
// message, with the result as payload
package chaincode

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/coordinator"
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/mode"
	"github.com/bookchain/bookchaind/rpc/ratelimit"
)

// reply status codes
const (
	StatusOK    = 200
	StatusError = 500
)

// parameter names
const (
	ParameterAssetId     = "assetId"
	ParameterOwner       = "owner"
	ParameterType        = "type"
	ParameterTitle       = "title"
	ParameterAuthor      = "author"
	ParameterDescription = "description"
	ParameterCategory    = "category"
	ParameterTxId        = "txId"
	ParameterRemark      = "remark"
	ParameterRequester   = "requester"
	ParameterViewer      = "viewer"
)

const (
	rateLimitChaincode = 100
	rateBurstChaincode = 50
)

// Chaincode - type for the RPC
type Chaincode struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Operations   coordinator.Operations
	IsNormalMode func(mode.Mode) bool
	functions    map[string]function
}

type function struct {
	write bool
	run   func(*Chaincode, map[string]string) (string, interface{}, error)
}

// New - create the chaincode RPC service
func New(log *logger.L, operations coordinator.Operations, isNormalMode func(mode.Mode) bool) *Chaincode {
	return &Chaincode{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitChaincode, rateBurstChaincode),
		Operations:   operations,
		IsNormalMode: isNormalMode,
		functions: map[string]function{
			"createAsset":    {write: true, run: (*Chaincode).createAsset},
			"transferAsset":  {write: true, run: (*Chaincode).transferAsset},
			"readAsset":      {run: (*Chaincode).readAsset},
			"queryAssets":    {run: (*Chaincode).queryAssets},
			"queryAllAssets": {run: (*Chaincode).queryAssets},
		},
	}
}

// InvokeArguments - arguments for invoke RPC request
type InvokeArguments struct {
	Function string            `json:"function"`
	Args     map[string]string `json:"args"`
}

// InvokeReply - chaincode style response
type InvokeReply struct {
	Status  int         `json:"status"`
	Kind    string      `json:"kind"`
	Message string      `json:"message"`
	Payload interface{} `json:"payload,omitempty"`
}

// Invoke - RPC to call a function by name
//
// operation errors are reported in the reply, only rate limiting
// fails the call itself
func (c *Chaincode) Invoke(arguments *InvokeArguments, reply *InvokeReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	log := c.Log
	log.Infof("Chaincode.Invoke: %q  args: %v", arguments.Function, arguments.Args)

	f, ok := c.functions[arguments.Function]
	if !ok {
		setError(reply, fault.ErrUnknownFunction)
		return nil
	}
	if f.write && !c.IsNormalMode(mode.Normal) {
		setError(reply, fault.ErrNotAvailable)
		return nil
	}

	args := arguments.Args
	if nil == args {
		args = map[string]string{}
	}

	message, payload, err := f.run(c, args)
	reply.Payload = payload
	if nil != err {
		log.Debugf("Chaincode.Invoke: %q  error: %s", arguments.Function, err)
		setError(reply, err)
		return nil
	}

	reply.Status = StatusOK
	reply.Kind = fault.Kind(nil)
	reply.Message = message
	return nil
}

func setError(reply *InvokeReply, err error) {
	reply.Status = StatusError
	reply.Kind = fault.Kind(err)
	reply.Message = err.Error()
}

func (c *Chaincode) createAsset(args map[string]string) (string, interface{}, error) {
	var id asset.Identifier
	if s := args[ParameterAssetId]; "" != s {
		var err error
		id, err = asset.ParseIdentifier(s)
		if nil != err {
			return "", nil, err
		}
	}

	assetType := asset.Normal
	if s := args[ParameterType]; "" != s {
		t, err := asset.ParseType(s)
		if nil != err {
			return "", nil, err
		}
		assetType = t
	}

	a, _, err := c.Operations.CreateAsset(&coordinator.Create{
		AssetId: id,
		Owner:   args[ParameterOwner],
		Type:    assetType,
		Fields: asset.Fields{
			Title:       args[ParameterTitle],
			Author:      args[ParameterAuthor],
			Description: args[ParameterDescription],
			Category:    args[ParameterCategory],
		},
		TxId:   args[ParameterTxId],
		Remark: args[ParameterRemark],
	})
	if nil == a {
		return "", nil, err
	}
	if nil != err {
		return "", a, err
	}
	return "asset created", a, nil
}

func (c *Chaincode) transferAsset(args map[string]string) (string, interface{}, error) {
	id, err := asset.ParseIdentifier(args[ParameterAssetId])
	if nil != err {
		return "", nil, err
	}

	record, err := c.Operations.TransferOwnership(id, args[ParameterRequester], args[ParameterOwner], args[ParameterTxId])
	if nil == record {
		return "", nil, err
	}
	if nil != err {
		return "", record, err
	}
	return "ownership transferred", record, nil
}

func (c *Chaincode) readAsset(args map[string]string) (string, interface{}, error) {
	id, err := asset.ParseIdentifier(args[ParameterAssetId])
	if nil != err {
		return "", nil, err
	}

	a, err := c.Operations.ReadAsset(id, args[ParameterViewer])
	if nil != err {
		return "", nil, err
	}
	return "asset found", a, nil
}

func (c *Chaincode) queryAssets(args map[string]string) (string, interface{}, error) {
	var filter *asset.Type
	if s := args[ParameterType]; "" != s {
		t, err := asset.ParseType(s)
		if nil != err {
			return "", nil, err
		}
		filter = &t
	}

	result, err := c.Operations.QueryAssets(filter, args[ParameterViewer])
	if nil != err {
		return "", nil, err
	}
	return "assets found", result, nil
}
