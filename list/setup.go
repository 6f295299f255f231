// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package list

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashlistd/counter"
	"github.com/bitmark-inc/hashlistd/fault"
	"github.com/bitmark-inc/hashlistd/nodeid"
	"github.com/bitmark-inc/hashlistd/storage"
)

// keys into the ListState pool
var (
	headKey  = []byte{'H'}
	tailKey  = []byte{'T'}
	countKey = []byte{'C'}
)

// globals for the list
type listData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	nodes *storage.PoolHandle // identifier -> packed node record
	state *storage.PoolHandle // head/tail identifiers and node count

	head  nodeid.Identifier // sentinel iff the list is empty
	tail  nodeid.Identifier // sentinel iff the list is empty
	count counter.Counter   // number of stored nodes

	// set once during initialise
	initialised bool
}

// global data
var globalData listData

// Initialise - setup the list from its stored state
func Initialise(nodes *storage.PoolHandle, state *storage.PoolHandle) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	if nil == nodes || nil == state {
		return fault.MissingParameters
	}

	log := logger.New("list")
	globalData.log = log
	log.Info("starting…")

	globalData.nodes = nodes
	globalData.state = state

	// restore pointers and count from the store
	head := nodeid.Sentinel
	if buffer := state.Get(headKey); nil != buffer {
		if err := nodeid.IdentifierFromBytes(&head, buffer); nil != err {
			return err
		}
	}
	tail := nodeid.Sentinel
	if buffer := state.Get(tailKey); nil != buffer {
		if err := nodeid.IdentifierFromBytes(&tail, buffer); nil != err {
			return err
		}
	}
	count, _ := state.GetN(countKey)

	// head and tail are sentinel if and only if the list is empty
	if head.IsEmpty() != tail.IsEmpty() {
		return fault.ListIsCorrupt
	}
	if head.IsEmpty() != (0 == count) {
		return fault.ListIsCorrupt
	}

	globalData.head = head
	globalData.tail = tail
	globalData.count.Set(count)

	log.Infof("node count: %d", count)
	log.Infof("head: %v", head)
	log.Infof("tail: %v", tail)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the list system
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Head - identifier of the first node, sentinel if the list is empty
func Head() nodeid.Identifier {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.head
}

// Tail - identifier of the last node, sentinel if the list is empty
func Tail() nodeid.Identifier {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.tail
}

// Count - number of stored nodes
func Count() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.count.Uint64()
}

// IsEmpty - true if no nodes are stored
func IsEmpty() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.head.IsEmpty()
}
