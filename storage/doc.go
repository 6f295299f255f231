// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data store
//
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. identifier   = node digest as 32 byte SHA3-256(payload ++ timestamp ++ caller)
// 4. count        = big endian uint64 (8 bytes)
//
// Nodes:
//
//   N ++ identifier            - node record
//                                data: payload ++ prev identifier ++ next identifier
//
// List state:
//
//   S ++ 'H'                   - head identifier
//   S ++ 'T'                   - tail identifier
//   S ++ 'C'                   - node count
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
