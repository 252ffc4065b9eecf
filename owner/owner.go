// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package owner - existence checks for owner references
//
// owners are managed outside the ledger, this package only answers
// whether a reference names a known owner
package owner

import (
	"sync"
)

// Owner - an external entity that can hold assets
type Owner struct {
	Id      string `json:"id"`
	Address string `json:"address"`
}

// Directory - source of known owners
type Directory interface {
	Exists(ref string) (bool, error)
}

// accepts every non-empty reference
type anyOwner struct{}

// Any - a directory that knows every owner
func Any() Directory {
	return anyOwner{}
}

func (anyOwner) Exists(ref string) (bool, error) {
	return "" != ref, nil
}

// Static - a fixed in-memory set of owners
type Static struct {
	sync.RWMutex
	owners map[string]Owner
}

// NewStatic - directory holding the given owners
func NewStatic(owners ...Owner) *Static {
	s := &Static{
		owners: make(map[string]Owner),
	}
	for _, o := range owners {
		s.owners[o.Id] = o
	}
	return s
}

// Add - register another owner
func (s *Static) Add(o Owner) {
	s.Lock()
	s.owners[o.Id] = o
	s.Unlock()
}

// Exists - check if ref is a registered owner id
func (s *Static) Exists(ref string) (bool, error) {
	s.RLock()
	defer s.RUnlock()
	_, ok := s.owners[ref]
	return ok, nil
}

// Lookup - the owner for ref
func (s *Static) Lookup(ref string) (Owner, bool) {
	s.RLock()
	defer s.RUnlock()
	o, ok := s.owners[ref]
	return o, ok
}

// Count - number of registered owners
func (s *Static) Count() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.owners)
}

// replace all owners at once
func (s *Static) replace(owners map[string]Owner) {
	s.Lock()
	s.owners = owners
	s.Unlock()
}
