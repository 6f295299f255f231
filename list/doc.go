// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package list - the content-addressed doubly-linked list
//
// Nodes are stored in the Nodes pool keyed by identifier; the ListState
// pool holds the head and tail identifiers and the node count.  Node
// identifiers take the place of pointers: each node holds the
// identifiers of its neighbours and the sentinel (all zero) identifier
// marks the end of the chain in either direction.
//
// Mutation is single writer: Append and Update run under one lock and
// commit all of their storage changes as a single transaction, so a
// failed call leaves no partial state and sends no notification.  A
// change record is broadcast on the message bus only after the commit
// succeeds.
//
// There is no delete and no reordering; a node's links never change
// after the node is written except when a later Append patches the old
// tail's next link.
package list
