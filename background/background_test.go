// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/bitmark-inc/hashlistd/background"
)

type ticker struct {
	started uint64
	stopped uint64
	ticks   uint64
}

func (t *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	atomic.AddUint64(&t.started, 1)
	delay := args.(time.Duration)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(delay):
			atomic.AddUint64(&t.ticks, 1)
		}
	}
	atomic.AddUint64(&t.stopped, 1)
}

func TestStartStop(t *testing.T) {

	first := &ticker{}
	second := &ticker{}

	processes := background.Processes{
		first,
		second,
	}

	handle := background.Start(processes, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)

	// Stop blocks until every Run has returned
	handle.Stop()

	if 1 != atomic.LoadUint64(&first.started) || 1 != atomic.LoadUint64(&second.started) {
		t.Fatal("not all processes were started")
	}
	if 1 != atomic.LoadUint64(&first.stopped) || 1 != atomic.LoadUint64(&second.stopped) {
		t.Fatal("not all processes were stopped")
	}
	if 0 == atomic.LoadUint64(&first.ticks) {
		t.Fatal("process never ran its loop")
	}
}

func TestStopNil(t *testing.T) {
	var handle *background.T
	handle.Stop()
}
