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

var testCaller = []byte("test caller")

func TestAppendToEmptyList(t *testing.T) {
	setup(t)
	defer teardown(t)

	if !list.IsEmpty() {
		t.Fatal("new list is not empty")
	}
	if !list.Head().IsEmpty() || !list.Tail().IsEmpty() {
		t.Fatal("empty list has non-sentinel head or tail")
	}

	id, err := list.Append(5, time.Now(), testCaller)
	if nil != err {
		t.Fatalf("append error: %s", err)
	}
	if id.IsEmpty() {
		t.Fatal("append returned the sentinel identifier")
	}

	// single node: head == tail == id, both links sentinel
	if id != list.Head() {
		t.Errorf("head: %v  expected: %v", list.Head(), id)
	}
	if id != list.Tail() {
		t.Errorf("tail: %v  expected: %v", list.Tail(), id)
	}

	record, err := list.Node(id)
	if nil != err {
		t.Fatalf("node error: %s", err)
	}
	if !record.Prev.IsEmpty() {
		t.Errorf("prev: %v  expected sentinel", record.Prev)
	}
	if !record.Next.IsEmpty() {
		t.Errorf("next: %v  expected sentinel", record.Next)
	}
	if 5 != record.Payload {
		t.Errorf("payload: %d  expected: 5", record.Payload)
	}
	if 1 != list.Count() {
		t.Errorf("count: %d  expected: 1", list.Count())
	}
}

func TestAppendLinksNodes(t *testing.T) {
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

	if id1 == id2 {
		t.Fatal("appends returned the same identifier")
	}

	node1, err := list.Node(id1)
	if nil != err {
		t.Fatalf("node error: %s", err)
	}
	node2, err := list.Node(id2)
	if nil != err {
		t.Fatalf("node error: %s", err)
	}

	if id2 != node1.Next {
		t.Errorf("node1.next: %v  expected: %v", node1.Next, id2)
	}
	if id1 != node2.Prev {
		t.Errorf("node2.prev: %v  expected: %v", node2.Prev, id1)
	}
	if !node1.Prev.IsEmpty() {
		t.Errorf("node1.prev: %v  expected sentinel", node1.Prev)
	}
	if !node2.Next.IsEmpty() {
		t.Errorf("node2.next: %v  expected sentinel", node2.Next)
	}
	if id1 != list.Head() {
		t.Errorf("head: %v  expected: %v", list.Head(), id1)
	}
	if id2 != list.Tail() {
		t.Errorf("tail: %v  expected: %v", list.Tail(), id2)
	}
}

// walk the chain both ways after a series of appends
func TestAppendSequence(t *testing.T) {
	setup(t)
	defer teardown(t)

	const n = 10

	ids := make([]nodeid.Identifier, n)
	for i := 0; i < n; i += 1 {
		id, err := list.Append(int64(100+i), time.Now(), testCaller)
		if nil != err {
			t.Fatalf("append %d error: %s", i, err)
		}
		ids[i] = id

		if ids[0] != list.Head() {
			t.Fatalf("head moved after append %d", i)
		}
		if id != list.Tail() {
			t.Fatalf("tail is not the latest append %d", i)
		}
	}

	if n != list.Count() {
		t.Fatalf("count: %d  expected: %d", list.Count(), n)
	}

	// forward: head must reach tail in count-1 steps
	current := list.Head()
	for i := 0; i < n; i += 1 {
		if ids[i] != current {
			t.Fatalf("step %d: %v  expected: %v", i, current, ids[i])
		}
		record, err := list.Node(current)
		if nil != err {
			t.Fatalf("node error: %s", err)
		}
		if int64(100+i) != record.Payload {
			t.Fatalf("step %d payload: %d  expected: %d", i, record.Payload, 100+i)
		}
		current = record.Next
	}
	if !current.IsEmpty() {
		t.Fatal("chain does not terminate after tail")
	}

	// backward: tail must reach head symmetrically
	current = list.Tail()
	for i := n - 1; i >= 0; i -= 1 {
		if ids[i] != current {
			t.Fatalf("reverse step %d: %v  expected: %v", i, current, ids[i])
		}
		record, err := list.Node(current)
		if nil != err {
			t.Fatalf("node error: %s", err)
		}
		current = record.Prev
	}
	if !current.IsEmpty() {
		t.Fatal("reverse chain does not terminate before head")
	}
}

// identical payload, timestamp and caller derive the same identifier
// so the second append must abort without changing anything
func TestAppendCollision(t *testing.T) {
	setup(t)
	defer teardown(t)

	when := time.Date(2020, time.March, 7, 12, 30, 0, 0, time.UTC)

	id, err := list.Append(5, when, testCaller)
	if nil != err {
		t.Fatalf("append error: %s", err)
	}

	_, err = list.Append(5, when, testCaller)
	if fault.IdentifierCollision != err {
		t.Fatalf("error: %v  expected: %v", err, fault.IdentifierCollision)
	}
	if !fault.IsErrExists(err) {
		t.Fatal("collision is not an exists error")
	}

	// failed call must leave the list unchanged
	if 1 != list.Count() {
		t.Errorf("count: %d  expected: 1", list.Count())
	}
	if id != list.Tail() {
		t.Errorf("tail: %v  expected: %v", list.Tail(), id)
	}
	record, err := list.Node(id)
	if nil != err {
		t.Fatalf("node error: %s", err)
	}
	if !record.Next.IsEmpty() {
		t.Errorf("next: %v  expected sentinel", record.Next)
	}

	// a retry with different context succeeds
	_, err = list.Append(5, when.Add(time.Nanosecond), testCaller)
	if nil != err {
		t.Fatalf("retry append error: %s", err)
	}
	if 2 != list.Count() {
		t.Errorf("count: %d  expected: 2", list.Count())
	}
}

// a zero payload is an ordinary stored value, not "absent"
func TestAppendZeroPayload(t *testing.T) {
	setup(t)
	defer teardown(t)

	id, err := list.Append(0, time.Now(), testCaller)
	if nil != err {
		t.Fatalf("append error: %s", err)
	}

	payload, err := list.Get(id)
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	if 0 != payload {
		t.Fatalf("payload: %d  expected: 0", payload)
	}
}

// state survives a close and reopen of the database
func TestAppendPersistence(t *testing.T) {
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

	closeStorage(t)
	openStorage(t)

	if id1 != list.Head() {
		t.Errorf("head: %v  expected: %v", list.Head(), id1)
	}
	if id2 != list.Tail() {
		t.Errorf("tail: %v  expected: %v", list.Tail(), id2)
	}
	if 2 != list.Count() {
		t.Errorf("count: %d  expected: 2", list.Count())
	}

	payload, err := list.Get(id1)
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	if 5 != payload {
		t.Errorf("payload: %d  expected: 5", payload)
	}
}
