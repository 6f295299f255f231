// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"sync"
)

// Process - interface for a background processes
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for later stopping the processes
type T struct {
	sync.WaitGroup
	shutdown chan struct{}
}

// Start - start up a set of background processes
// all with the same arg value
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
	}

	// start each background
	register.Add(len(processes))
	for _, p := range processes {
		go func(p Process) {
			defer register.Done()
			p.Run(args, register.shutdown)
		}(p)
	}
	return register
}

// Stop - stop a set of background processes
// does not return until all of the processes have finished
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	close(t.shutdown)

	// wait for all Run loops to return
	t.Wait()
}
