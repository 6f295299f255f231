// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package list

import (
	"github.com/bitmark-inc/hashlistd/fault"
	"github.com/bitmark-inc/hashlistd/nodeid"
	"github.com/bitmark-inc/hashlistd/noderecord"
)

// Get - payload of the node with the given identifier
func Get(id nodeid.Identifier) (int64, error) {
	record, err := Node(id)
	if nil != err {
		return 0, err
	}
	return record.Payload, nil
}

// Node - full record of the node with the given identifier
//
// reads the latest committed state
func Node(id nodeid.Identifier) (noderecord.Record, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return noderecord.Record{}, fault.NotInitialised
	}

	// the sentinel never denotes a stored node
	if id.IsEmpty() {
		return noderecord.Record{}, fault.IdentifierNotFound
	}

	packed := globalData.nodes.Get(id[:])
	if nil == packed {
		return noderecord.Record{}, fault.IdentifierNotFound
	}

	return noderecord.Unpack(packed)
}
