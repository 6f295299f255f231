// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package nodeid - content-derived identifiers for list nodes
//
// An identifier is the SHA3-256 digest of the node payload combined
// with the insertion timestamp and an opaque caller supplied context.
// The timestamp and caller bytes act as entropy so that equal payloads
// appended at different times produce distinct identifiers; collisions
// are detected by the store, not prevented here.
//
// The all zero identifier is reserved as the sentinel meaning
// "no node" and is never the identifier of a stored node.
package nodeid
