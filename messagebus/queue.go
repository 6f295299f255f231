// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// change record commands
const (
	CommandAdded   = "added"   // parameters: identifier, payload, prev, next
	CommandUpdated = "updated" // parameters: identifier, old payload, new payload
	CommandDeleted = "deleted" // parameters: identifier, payload; reserved, nothing sends this
)

// Message - to send to any of the queues
type Message struct {
	Command    string   // type of packed data
	Parameters [][]byte // array of parameters
}

// Queue - a 1:1 queue
type Queue struct {
	c    chan Message
	size int
}

// BroadcastQueue - a 1:M queue
// out channels are created on demand by listeners
type BroadcastQueue struct {
	sync.Mutex
	in   chan Message
	out  []chan Message
	size int
}

// the exported message queues and their sizes
// any item with a size option will be an array of queues
type busses struct {
	Broadcast *BroadcastQueue `size:"1000"` // all committed list changes
	TestQueue *Queue          `size:"50"`   // for testing use
}

// Bus - all available message queues
var Bus busses

// Send - send a message to a 1:1 queue
// wait for the queue to accept the message
func (queue *Queue) Send(command string, parameters ...[]byte) {
	queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - channel to read from a 1:1 queue
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Send - send a message to a 1:M queue
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	queue.in <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - get a new channel to read from a 1:M queue
// each listener must have its own channel
// a size of zero gives the default size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	queue.Lock()
	defer queue.Unlock()
	if size <= 0 {
		size = queue.size
	}
	c := make(chan Message, size)
	queue.out = append(queue.out, c)
	return c
}

// process the broadcast send queue
// a separate routine to avoid blocking the sender; listeners with a
// full channel simply miss the message
func (queue *BroadcastQueue) process() {
	for message := range queue.in {
		queue.Lock()
		for _, out := range queue.out {
			select {
			case out <- message:
			default:
			}
		}
		queue.Unlock()
	}
}

// initialise all queues with sizes from their tags
func init() {
	busType := reflect.TypeOf(Bus)
	busValue := reflect.ValueOf(&Bus).Elem()

	for i := 0; i < busType.NumField(); i += 1 {

		fieldInfo := busType.Field(i)
		sizeTag := fieldInfo.Tag.Get("size")

		queueSize, err := strconv.Atoi(sizeTag)
		if nil != err || queueSize < 1 {
			panic(fmt.Sprintf("queue: %v has invalid size: %q", fieldInfo, sizeTag))
		}

		switch qt := fieldInfo.Type; qt {

		case reflect.TypeOf((*Queue)(nil)):
			q := &Queue{
				c:    make(chan Message, queueSize),
				size: queueSize,
			}
			busValue.Field(i).Set(reflect.ValueOf(q))

		case reflect.TypeOf((*BroadcastQueue)(nil)):
			q := &BroadcastQueue{
				in:   make(chan Message, queueSize),
				out:  make([]chan Message, 0, 10),
				size: queueSize,
			}
			busValue.Field(i).Set(reflect.ValueOf(q))
			go q.process()

		default:
			panic(fmt.Sprintf("queue: %v has invalid type: %v", fieldInfo, qt))
		}
	}
}
