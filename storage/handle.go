// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - access to the keys of one prefix
type PoolHandle struct {
	prefix   byte
	database *leveldb.DB
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key ...[]byte) []byte {
	n := 1
	for _, k := range key {
		n += len(k)
	}
	prefixedKey := make([]byte, 1, n)
	prefixedKey[0] = p.prefix
	for _, k := range key {
		prefixedKey = append(prefixedKey, k...)
	}
	return prefixedKey
}

// queue a key/value pair on a batch
func (p *PoolHandle) batchPut(batch *leveldb.Batch, value []byte, key ...[]byte) {
	batch.Put(p.prefixKey(key...), value)
}

// queue a key removal on a batch
func (p *PoolHandle) batchDelete(batch *leveldb.Batch, key ...[]byte) {
	batch.Delete(p.prefixKey(key...))
}

// read a value for a given key, nil if not found
func (p *PoolHandle) Get(key []byte) []byte {
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	value, err := p.database.Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return value
}

// Elements - all items whose key starts with the prefix and the
// given key fragments, with the pool prefix removed from the keys
func (p *PoolHandle) Elements(key ...[]byte) []Element {
	iter := p.database.NewIterator(ldb_util.BytesPrefix(p.prefixKey(key...)), nil)

	elements := []Element{}
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		k := iter.Key()
		v := iter.Value()

		dataKey := make([]byte, len(k)-1) // strip the prefix
		copy(dataKey, k[1:])              // ...

		dataValue := make([]byte, len(v))
		copy(dataValue, v)

		elements = append(elements, Element{
			Key:   dataKey,
			Value: dataValue,
		})
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.Elements", err)
	return elements
}
