// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package list_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/hashlistd/fault"
	"github.com/bitmark-inc/hashlistd/list"
	"github.com/bitmark-inc/hashlistd/nodeid"
)

func TestUpdatePayload(t *testing.T) {
	setup(t)
	defer teardown(t)

	id1, err := list.Append(5, time.Now(), testCaller)
	if nil != err {
		t.Fatalf("append error: %s", err)
	}
	id2, err := list.Append(7, time.Now(), testCaller)
	if nil != err {
		t.Fatalf("append error: %s", err)
	}

	err = list.Update(id1, 99)
	if nil != err {
		t.Fatalf("update error: %s", err)
	}

	// payload is replaced, links are untouched
	node1, err := list.Node(id1)
	if nil != err {
		t.Fatalf("node error: %s", err)
	}
	if 99 != node1.Payload {
		t.Errorf("payload: %d  expected: 99", node1.Payload)
	}
	if id2 != node1.Next {
		t.Errorf("next: %v  expected: %v", node1.Next, id2)
	}
	if !node1.Prev.IsEmpty() {
		t.Errorf("prev: %v  expected sentinel", node1.Prev)
	}

	// the identifier is stable: it stays the hash of the original
	// append context and does not track the stored payload

	// the other node is unchanged
	payload2, err := list.Get(id2)
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	if 7 != payload2 {
		t.Errorf("payload: %d  expected: 7", payload2)
	}

	// head, tail and count are unchanged by update
	if id1 != list.Head() {
		t.Errorf("head: %v  expected: %v", list.Head(), id1)
	}
	if id2 != list.Tail() {
		t.Errorf("tail: %v  expected: %v", list.Tail(), id2)
	}
	if 2 != list.Count() {
		t.Errorf("count: %d  expected: 2", list.Count())
	}
}

func TestUpdateUnknownIdentifier(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := list.Append(5, time.Now(), testCaller)
	if nil != err {
		t.Fatalf("append error: %s", err)
	}

	unknown := nodeid.NewIdentifier(42, time.Now(), []byte("never appended"))

	err = list.Update(unknown, 1)
	if fault.IdentifierNotFound != err {
		t.Fatalf("error: %v  expected: %v", err, fault.IdentifierNotFound)
	}
	if !fault.IsErrNotFound(err) {
		t.Fatal("unknown identifier is not a not found error")
	}

	// the sentinel never denotes a node
	err = list.Update(nodeid.Sentinel, 1)
	if fault.IdentifierNotFound != err {
		t.Fatalf("error: %v  expected: %v", err, fault.IdentifierNotFound)
	}
}

func TestGetUnknownIdentifier(t *testing.T) {
	setup(t)
	defer teardown(t)

	unknown := nodeid.NewIdentifier(42, time.Now(), []byte("never appended"))

	_, err := list.Get(unknown)
	if fault.IdentifierNotFound != err {
		t.Fatalf("error: %v  expected: %v", err, fault.IdentifierNotFound)
	}

	_, err = list.Get(nodeid.Sentinel)
	if fault.IdentifierNotFound != err {
		t.Fatalf("error: %v  expected: %v", err, fault.IdentifierNotFound)
	}
}

// reads do not modify the store
func TestGetIdempotent(t *testing.T) {
	setup(t)
	defer teardown(t)

	id, err := list.Append(5, time.Now(), testCaller)
	if nil != err {
		t.Fatalf("append error: %s", err)
	}

	for i := 0; i < 5; i += 1 {
		payload, err := list.Get(id)
		if nil != err {
			t.Fatalf("get %d error: %s", i, err)
		}
		if 5 != payload {
			t.Fatalf("get %d payload: %d  expected: 5", i, payload)
		}
	}
	if 1 != list.Count() {
		t.Errorf("count: %d  expected: 1", list.Count())
	}
}

// update to zero must store zero, not erase the payload
func TestUpdateZeroPayload(t *testing.T) {
	setup(t)
	defer teardown(t)

	id, err := list.Append(5, time.Now(), testCaller)
	if nil != err {
		t.Fatalf("append error: %s", err)
	}

	err = list.Update(id, 0)
	if nil != err {
		t.Fatalf("update error: %s", err)
	}

	payload, err := list.Get(id)
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	if 0 != payload {
		t.Fatalf("payload: %d  expected: 0", payload)
	}
}
