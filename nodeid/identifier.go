// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nodeid

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/hashlistd/fault"
)

// Length - number of bytes in the identifier
const Length = 32

// Identifier - type for a node identifier
// stored and displayed as big endian hex value
// to convert to bytes just use id[:]
type Identifier [Length]byte

// Sentinel - the reserved zero identifier denoting "no node"
var Sentinel = Identifier{}

// NewIdentifier - derive the identifier for a new node
//
// deterministic function of payload, timestamp and caller context;
// no uniqueness check is performed here
func NewIdentifier(payload int64, timestamp time.Time, caller []byte) Identifier {

	record := make([]byte, 16, 16+len(caller))
	binary.BigEndian.PutUint64(record[0:8], uint64(payload))
	binary.BigEndian.PutUint64(record[8:16], uint64(timestamp.UnixNano()))
	record = append(record, caller...)

	return Identifier(sha3.Sum256(record))
}

// IsEmpty - true if the identifier is the sentinel value
func (identifier Identifier) IsEmpty() bool {
	return identifier == Sentinel
}

// String - convert a binary identifier to hex string for use by the fmt package (for %s)
func (identifier Identifier) String() string {
	return hex.EncodeToString(identifier[:])
}

// GoString - convert a binary identifier to hex string for use by the fmt package (for %#v)
func (identifier Identifier) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(identifier[:]) + ">"
}

// Scan - convert a hex representation to an identifier for use by the format package scan routines
func (identifier *Identifier) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(Length) {
		return fault.NotIdentifier
	}

	buffer := make([]byte, hex.DecodedLen(len(token)))
	byteCount, err := hex.Decode(buffer, token)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.NotIdentifier
	}

	copy(identifier[:], buffer)
	return nil
}

// MarshalText - convert identifier to hex text
func (identifier Identifier) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(Length)
	buffer := make([]byte, size)
	hex.Encode(buffer, identifier[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an identifier
func (identifier *Identifier) UnmarshalText(s []byte) error {
	if len(s) != hex.EncodedLen(Length) {
		return fault.NotIdentifier
	}
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.NotIdentifier
	}
	copy(identifier[:], buffer)
	return nil
}

// IdentifierFromBytes - convert and validate a binary byte slice to an identifier
func IdentifierFromBytes(identifier *Identifier, buffer []byte) error {
	if Length != len(buffer) {
		return fault.NotIdentifier
	}
	copy(identifier[:], buffer)
	return nil
}
