// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package noderecord - packed form of a list node
//
// A node is stored as a fixed length binary record:
//
//	payload   8 bytes big endian int64
//	prev     32 bytes identifier (sentinel = all zero)
//	next     32 bytes identifier (sentinel = all zero)
//
// Existence of a node is determined by presence of its key in the
// store, never by any particular payload value, so a zero payload is
// an ordinary stored value.
package noderecord
