// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	l := rate.NewLimiter(100, 10)
	assert.Nil(t, ratelimit.Limit(l), "single request")

	// zero burst can never be satisfied
	z := rate.NewLimiter(1, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(z), "zero burst")
}

func TestLimitWaits(t *testing.T) {
	l := rate.NewLimiter(20, 1)
	assert.Nil(t, ratelimit.Limit(l), "first request")

	start := time.Now()
	assert.Nil(t, ratelimit.Limit(l), "second request")
	assert.True(t, time.Since(start) >= 30*time.Millisecond, "second request was not delayed")
}
