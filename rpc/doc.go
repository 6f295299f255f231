// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the JSON RPC calls
//
// the available calls are clustered into two groups:
//   List - append, fetch and update list nodes
//   Node - server status information
package rpc
