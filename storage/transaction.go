// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - all-or-nothing batch of updates across the pools
//
// reads made through the transaction observe its own staged writes;
// Commit applies every staged change in one database write and Abort
// discards them all
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

func (t *TransactionData) Put(p *PoolHandle, key []byte, value []byte) {
	t.access.Put(p.prefixKey(key), value)
}

func (t *TransactionData) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.access.Put(p.prefixKey(key), buffer)
}

func (t *TransactionData) Delete(p *PoolHandle, key []byte) {
	t.access.Delete(p.prefixKey(key))
}

func (t *TransactionData) Get(p *PoolHandle, key []byte) []byte {
	value, err := t.access.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *TransactionData) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(p, key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("transaction.GetN truncated record for: %x: %s", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

func (t *TransactionData) Has(p *PoolHandle, key []byte) bool {
	has, err := t.access.Has(p.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return has
}

func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

func (t *TransactionData) Abort() {
	t.access.Abort()
}

func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}
