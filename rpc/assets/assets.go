// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/coordinator"
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/mode"
	"github.com/bookchain/bookchaind/rpc/ratelimit"
	"github.com/bookchain/bookchaind/transactionrecord"
	"github.com/bookchain/bookchaind/visibility"
)

// Assets - type for the RPC
type Assets struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Operations   coordinator.Operations
	IsNormalMode func(mode.Mode) bool
}

const (
	rateLimitAssets = 200
	rateBurstAssets = 100
)

// New - create the assets RPC service
func New(log *logger.L, operations coordinator.Operations, isNormalMode func(mode.Mode) bool) *Assets {
	return &Assets{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		Operations:   operations,
		IsNormalMode: isNormalMode,
	}
}

// ---

// CreateArguments - arguments for create RPC request
type CreateArguments struct {
	AssetId     asset.Identifier `json:"id,omitempty"`
	Owner       string           `json:"owner"`
	Type        asset.Type       `json:"type"`
	Title       string           `json:"title"`
	Author      string           `json:"author"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	TxId        string           `json:"txId"`
	Remark      string           `json:"remark"`
}

// CreateReply - results from create RPC request
//
// Status is PENDING when the asset was created but its audit record
// could not yet be written
type CreateReply struct {
	Asset  *asset.Asset              `json:"asset"`
	Record *transactionrecord.Record `json:"record"`
	Status coordinator.Status        `json:"status"`
}

// Create - RPC to create a book or a blind box
func (assets *Assets) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if !assets.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailable
	}

	log := assets.Log
	log.Infof("Assets.Create: %+v", arguments)

	assetType := arguments.Type
	if "" == assetType {
		assetType = asset.Normal
	}

	a, record, err := assets.Operations.CreateAsset(&coordinator.Create{
		AssetId: arguments.AssetId,
		Owner:   arguments.Owner,
		Type:    assetType,
		Fields: asset.Fields{
			Title:       arguments.Title,
			Author:      arguments.Author,
			Description: arguments.Description,
			Category:    arguments.Category,
		},
		TxId:   arguments.TxId,
		Remark: arguments.Remark,
	})

	switch {
	case nil == err:
		reply.Status = coordinator.StatusCompleted
	case fault.IsErrPartialFailure(err):
		log.Warnf("Assets.Create: %s", err)
		reply.Status = coordinator.StatusPending
	default:
		return err
	}

	reply.Asset = a
	reply.Record = record
	return nil
}

// ---

// GetArguments - arguments for get RPC request
type GetArguments struct {
	AssetId asset.Identifier `json:"id"`
	Viewer  string           `json:"viewer"`
}

// GetReply - results from get RPC request
type GetReply struct {
	Asset visibility.ViewableAsset `json:"asset"`
}

// Get - RPC to fetch one asset as the viewer may see it
func (assets *Assets) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	assets.Log.Debugf("Assets.Get: %+v", arguments)

	a, err := assets.Operations.ReadAsset(arguments.AssetId, arguments.Viewer)
	if nil != err {
		return err
	}
	reply.Asset = a
	return nil
}

// ---

// QueryArguments - arguments for query RPC request
type QueryArguments struct {
	Type   asset.Type `json:"type"`
	Viewer string     `json:"viewer"`
}

// QueryReply - results from query RPC request
type QueryReply struct {
	Assets []visibility.ViewableAsset `json:"assets"`
}

// Query - RPC to list all assets, optionally of one type
func (assets *Assets) Query(arguments *QueryArguments, reply *QueryReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	assets.Log.Debugf("Assets.Query: %+v", arguments)

	var filter *asset.Type
	if "" != arguments.Type {
		filter = &arguments.Type
	}

	result, err := assets.Operations.QueryAssets(filter, arguments.Viewer)
	if nil != err {
		return err
	}
	reply.Assets = result
	return nil
}
