// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - request throttling shared by the RPC services
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bookchain/bookchaind/fault"
)

// Limit - wait for a token from the service's limiter
//
// a request that can never be admitted fails at once instead of
// blocking the connection
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	if d := r.Delay(); d > 0 {
		time.Sleep(d)
	}
	return nil
}
