// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/evmlink/currencyd/fault"
)

// Transaction - a batch of pool writes committed as one unit
//
// used where related records in several pools must hit the disk
// together, e.g. the three records making up one contract registration
type Transaction struct {
	batch leveldb.Batch
}

// NewTransaction - create an empty write batch
func NewTransaction() *Transaction {
	return &Transaction{}
}

// Put - queue a key/value pair for a pool
func (trx *Transaction) Put(pool *PoolHandle, key []byte, value []byte) {
	trx.batch.Put(pool.prefixKey(key), value)
}

// Delete - queue a key removal for a pool
func (trx *Transaction) Delete(pool *PoolHandle, key []byte) {
	trx.batch.Delete(pool.prefixKey(key))
}

// Commit - write all queued operations to the database
func (trx *Transaction) Commit() error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return fault.DatabaseIsNotSet
	}
	if poolData.readOnly {
		return fault.WriteToReadOnlyDatabase
	}
	return poolData.db.Write(&trx.batch, nil)
}
