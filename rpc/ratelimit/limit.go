// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/hashlistd/fault"
)

// limiting for a single request
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
