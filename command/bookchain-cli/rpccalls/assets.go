// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/rpc/assets"
)

// CreateData - request data for creating an asset
type CreateData struct {
	AssetId     uint64
	Owner       string
	BlindBox    bool
	Title       string
	Author      string
	Description string
	Category    string
	TxId        string
	Remark      string
}

// Create - create a normal asset or a blind box
func (client *Client) Create(data *CreateData) (*assets.CreateReply, error) {

	assetType := asset.Normal
	if data.BlindBox {
		assetType = asset.BlindBox
	}

	arguments := assets.CreateArguments{
		AssetId:     asset.Identifier(data.AssetId),
		Owner:       data.Owner,
		Type:        assetType,
		Title:       data.Title,
		Author:      data.Author,
		Description: data.Description,
		Category:    data.Category,
		TxId:        data.TxId,
		Remark:      data.Remark,
	}

	var reply assets.CreateReply
	if err := client.call("Assets.Create", "Create", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Read - one asset as the viewer sees it
func (client *Client) Read(id asset.Identifier, viewer string) (*assets.GetReply, error) {

	arguments := assets.GetArguments{
		AssetId: id,
		Viewer:  viewer,
	}

	var reply assets.GetReply
	if err := client.call("Assets.Get", "Read", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Query - all assets, optionally of one type, as the viewer sees them
func (client *Client) Query(assetType string, viewer string) (*assets.QueryReply, error) {

	arguments := assets.QueryArguments{
		Type:   asset.Type(assetType),
		Viewer: viewer,
	}

	var reply assets.QueryReply
	if err := client.call("Assets.Query", "Query", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
