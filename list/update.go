// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package list

import (
	"github.com/bitmark-inc/hashlistd/fault"
	"github.com/bitmark-inc/hashlistd/messagebus"
	"github.com/bitmark-inc/hashlistd/nodeid"
	"github.com/bitmark-inc/hashlistd/noderecord"
	"github.com/bitmark-inc/hashlistd/storage"
)

// Update - overwrite the payload of an existing node
//
// the node's links are left untouched; fails with not found if the
// identifier does not denote a stored node
func Update(id nodeid.Identifier, payload int64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	if id.IsEmpty() {
		return fault.IdentifierNotFound
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	packed := trx.Get(globalData.nodes, id[:])
	if nil == packed {
		return fault.IdentifierNotFound
	}

	record, err := noderecord.Unpack(packed)
	if nil != err {
		return err
	}

	oldPayload := record.Payload
	record.Payload = payload
	trx.Put(globalData.nodes, id[:], record.Pack())

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("update: %v  payload: %d -> %d", id, oldPayload, payload)

	// post-commit notification
	messagebus.Bus.Broadcast.Send(
		messagebus.CommandUpdated,
		id[:],
		noderecord.PackPayload(oldPayload),
		noderecord.PackPayload(payload),
	)

	return nil
}
