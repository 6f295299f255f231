// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package noderecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/hashlistd/fault"
	"github.com/bitmark-inc/hashlistd/nodeid"
)

// PackedLength - number of bytes in a packed node record
const PackedLength = 8 + nodeid.Length + nodeid.Length

// Record - one stored list node
type Record struct {
	Payload int64             `json:"payload"`
	Prev    nodeid.Identifier `json:"prev"`
	Next    nodeid.Identifier `json:"next"`
}

// Pack - convert a record to its fixed length binary form
func (record Record) Pack() []byte {
	buffer := make([]byte, PackedLength)
	binary.BigEndian.PutUint64(buffer[0:8], uint64(record.Payload))
	copy(buffer[8:8+nodeid.Length], record.Prev[:])
	copy(buffer[8+nodeid.Length:], record.Next[:])
	return buffer
}

// Unpack - convert and validate a binary buffer into a record
func Unpack(buffer []byte) (Record, error) {
	record := Record{}
	if PackedLength != len(buffer) {
		return record, fault.WrongNodeRecordLength
	}
	record.Payload = int64(binary.BigEndian.Uint64(buffer[0:8]))
	copy(record.Prev[:], buffer[8:8+nodeid.Length])
	copy(record.Next[:], buffer[8+nodeid.Length:])
	return record, nil
}

// PackPayload - payload in the form used inside records and notifications
func PackPayload(payload int64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(payload))
	return buffer
}

// UnpackPayload - decode a payload packed by PackPayload
func UnpackPayload(buffer []byte) (int64, error) {
	if 8 != len(buffer) {
		return 0, fault.WrongNodeRecordLength
	}
	return int64(binary.BigEndian.Uint64(buffer)), nil
}
