// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package list

import (
	"time"

	"github.com/bitmark-inc/hashlistd/fault"
	"github.com/bitmark-inc/hashlistd/messagebus"
	"github.com/bitmark-inc/hashlistd/nodeid"
	"github.com/bitmark-inc/hashlistd/noderecord"
	"github.com/bitmark-inc/hashlistd/storage"
)

// Append - derive an identifier for the payload and store a new node
// at the tail of the list
//
// timestamp and caller are the entropy for identifier derivation and
// are supplied by the caller so that each call is distinct; on a
// collision the call aborts with no change to the store and the caller
// must retry with fresh context
//
// returns the identifier of the new node
func Append(payload int64, timestamp time.Time, caller []byte) (nodeid.Identifier, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nodeid.Sentinel, fault.NotInitialised
	}

	id := nodeid.NewIdentifier(payload, timestamp, caller)
	if id.IsEmpty() {
		// the sentinel can never name a stored node
		return nodeid.Sentinel, fault.SentinelIdentifier
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nodeid.Sentinel, err
	}
	defer trx.Abort()

	if trx.Has(globalData.nodes, id[:]) {
		return nodeid.Sentinel, fault.IdentifierCollision
	}

	record := noderecord.Record{
		Payload: payload,
		Prev:    globalData.tail,
		Next:    nodeid.Sentinel,
	}

	head := globalData.head
	if globalData.tail.IsEmpty() {
		// empty list: the new node is both head and tail
		head = id
	} else {
		// patch the current tail to link forward to the new node
		packed := trx.Get(globalData.nodes, globalData.tail[:])
		if nil == packed {
			globalData.log.Criticalf("tail node missing: %v", globalData.tail)
			return nodeid.Sentinel, fault.ListIsCorrupt
		}
		previousTail, err := noderecord.Unpack(packed)
		if nil != err {
			return nodeid.Sentinel, err
		}
		previousTail.Next = id
		trx.Put(globalData.nodes, globalData.tail[:], previousTail.Pack())
	}

	trx.Put(globalData.nodes, id[:], record.Pack())
	trx.Put(globalData.state, headKey, head[:])
	trx.Put(globalData.state, tailKey, id[:])
	trx.PutN(globalData.state, countKey, globalData.count.Uint64()+1)

	err = trx.Commit()
	if nil != err {
		return nodeid.Sentinel, err
	}

	globalData.head = head
	globalData.tail = id
	globalData.count.Increment()

	globalData.log.Infof("append: %v  payload: %d  prev: %v", id, payload, record.Prev)

	// post-commit notification
	messagebus.Bus.Broadcast.Send(
		messagebus.CommandAdded,
		id[:],
		noderecord.PackPayload(payload),
		record.Prev[:],
		record.Next[:],
	)

	return id, nil
}
