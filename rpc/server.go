// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashlistd/counter"
)

// the argument passed to the callback
type serverArgument struct {
	Log    *logger.L
	Server *rpc.Server
}

var connectionCount counter.Counter

// create the RPC server with all services registered
func createServer(log *logger.L, version string) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(NewList(log))
	_ = server.Register(NewNode(log, start, version))

	return server
}

// Callback - called from the listener on each incoming connection
func Callback(conn io.ReadWriteCloser, argument interface{}) {

	serverArgument := argument.(*serverArgument)

	log := serverArgument.Log
	log.Debug("connection opened")

	connectionCount.Increment()
	defer connectionCount.Decrement()

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	serverArgument.Server.ServeCodec(codec)

	log.Debug("connection closed")
}
