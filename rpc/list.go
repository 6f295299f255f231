// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashlistd/list"
	"github.com/bitmark-inc/hashlistd/nodeid"
	"github.com/bitmark-inc/hashlistd/rpc/ratelimit"
)

const (
	rateLimitList = 200
	rateBurstList = 100
)

// List - type for the RPC list calls
type List struct {
	log     *logger.L
	limiter *rate.Limiter
}

// NewList - create the list service
func NewList(log *logger.L) *List {
	return &List{
		log:     log,
		limiter: rate.NewLimiter(rateLimitList, rateBurstList),
	}
}

// ---

// AppendArguments - parameters for creating a new tail node
//
// caller is free-form client context mixed into identifier
// derivation; the timestamp half of that context is taken from the
// server clock at the time of the call
type AppendArguments struct {
	Payload int64  `json:"payload,string"`
	Caller  string `json:"caller"`
}

// AppendReply - the identifier assigned to the new node
type AppendReply struct {
	Identifier nodeid.Identifier `json:"identifier"`
}

// Append - add a new node at the tail of the list
func (l *List) Append(arguments *AppendArguments, reply *AppendReply) error {
	if err := ratelimit.Limit(l.limiter); nil != err {
		return err
	}

	l.log.Infof("List.Append: %+v", arguments)

	id, err := list.Append(arguments.Payload, time.Now(), []byte(arguments.Caller))
	if nil != err {
		return err
	}
	reply.Identifier = id
	return nil
}

// ---

// GetArguments - identifier of the node to fetch
type GetArguments struct {
	Identifier nodeid.Identifier `json:"identifier"`
}

// GetReply - the stored node
type GetReply struct {
	Payload int64             `json:"payload,string"`
	Prev    nodeid.Identifier `json:"prev"`
	Next    nodeid.Identifier `json:"next"`
}

// Get - fetch the node with a particular identifier
func (l *List) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(l.limiter); nil != err {
		return err
	}

	l.log.Debugf("List.Get: %v", arguments.Identifier)

	record, err := list.Node(arguments.Identifier)
	if nil != err {
		return err
	}
	reply.Payload = record.Payload
	reply.Prev = record.Prev
	reply.Next = record.Next
	return nil
}

// ---

// UpdateArguments - identifier of the node and its replacement payload
type UpdateArguments struct {
	Identifier nodeid.Identifier `json:"identifier"`
	Payload    int64             `json:"payload,string"`
}

// UpdateReply - result of an update
type UpdateReply struct {
	Updated bool `json:"updated"`
}

// Update - overwrite the payload of an existing node
func (l *List) Update(arguments *UpdateArguments, reply *UpdateReply) error {
	if err := ratelimit.Limit(l.limiter); nil != err {
		return err
	}

	l.log.Infof("List.Update: %+v", arguments)

	err := list.Update(arguments.Identifier, arguments.Payload)
	if nil != err {
		return err
	}
	reply.Updated = true
	return nil
}

// ---

// EndsArguments - empty arguments for the ends request
type EndsArguments struct{}

// EndsReply - current head and tail of the list
//
// both identifiers are all zero hex when the list is empty
type EndsReply struct {
	Head  nodeid.Identifier `json:"head"`
	Tail  nodeid.Identifier `json:"tail"`
	Count uint64            `json:"count,string"`
}

// Ends - fetch the head and tail identifiers
func (l *List) Ends(_ *EndsArguments, reply *EndsReply) error {
	if err := ratelimit.Limit(l.limiter); nil != err {
		return err
	}

	reply.Head = list.Head()
	reply.Tail = list.Tail()
	reply.Count = list.Count()
	return nil
}
