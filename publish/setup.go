// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashlistd/background"
	"github.com/bitmark-inc/hashlistd/fault"
)

// Configuration - a block of configuration data
// this is read from the configuration file
type Configuration struct {
	Broadcast []string `gluamapper:"broadcast" json:"broadcast"`
}

// globals for background process
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc broadcaster // relays committed list changes to subscribers

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start the publishing background process
//
// an empty broadcast address list disables publishing entirely
func Initialise(configuration *Configuration) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Info("no broadcast addresses: publishing disabled")
	}

	if err := globalData.brdc.initialise(configuration.Broadcast); nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
