// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package visibility - what a viewer may see of an asset
package visibility

import (
	"github.com/bookchain/bookchaind/asset"
)

// replacement values for the hidden fields of a blind box
const (
	HiddenDescription = "not yet revealed"
	HiddenAuthor      = ""
	HiddenCategory    = "mystery"
)

// ViewableAsset - an asset as presented to one viewer
type ViewableAsset struct {
	asset.Asset
	Redacted bool `json:"redacted"`
}

// Project - the view of a for a viewer
//
// owners see everything, as does anyone for a normal asset; anyone
// else sees a blind box with author, description and category hidden.
// a is never modified.
func Project(a *asset.Asset, viewerIsOwner bool) ViewableAsset {
	view := ViewableAsset{
		Asset: *a,
	}
	if viewerIsOwner || asset.BlindBox != a.Type {
		return view
	}

	view.Description = HiddenDescription
	view.Author = HiddenAuthor
	view.Category = HiddenCategory
	view.Redacted = true
	return view
}

// ProjectFor - the view of a for the named viewer
func ProjectFor(a *asset.Asset, viewer string) ViewableAsset {
	return Project(a, "" != viewer && viewer == a.Owner)
}
