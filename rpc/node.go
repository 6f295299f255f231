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
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for the RPC status calls
type Node struct {
	log     *logger.L
	limiter *rate.Limiter
	start   time.Time
	version string
}

// NewNode - create the node service
func NewNode(log *logger.L, start time.Time, version string) *Node {
	return &Node{
		log:     log,
		limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		start:   start,
		version: version,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Count   uint64            `json:"count,string"`
	Head    nodeid.Identifier `json:"head"`
	Tail    nodeid.Identifier `json:"tail"`
	RPCs    uint64            `json:"rpcs"`
	Version string            `json:"version"`
	Uptime  string            `json:"uptime"`
}

// Info - return some information about this server
// only enough for clients to determine server state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.limiter); nil != err {
		return err
	}

	reply.Count = list.Count()
	reply.Head = list.Head()
	reply.Tail = list.Tail()
	reply.RPCs = connectionCount.Uint64()
	reply.Version = node.version
	reply.Uptime = time.Since(node.start).String()
	return nil
}
