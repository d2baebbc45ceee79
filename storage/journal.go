// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/thortx/address"
	"github.com/bitmark-inc/thortx/digest"
	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/transaction"
)

// Entry - a stored transaction with its identity
type Entry struct {
	ID          digest.Bytes32           `json:"id"`
	Signer      address.Address          `json:"signer"`
	Transaction *transaction.Transaction `json:"-"`
}

// Put - store a signed transaction under its id
func (j *Journal) Put(tx *transaction.Transaction) (digest.Bytes32, error) {
	id := tx.ID()
	if !id.Valid() {
		return digest.Bytes32{}, fault.ErrInvalidID
	}
	signer, err := tx.Signer()
	if nil != err {
		return digest.Bytes32{}, err
	}
	encoded, err := tx.Encode()
	if nil != err {
		return digest.Bytes32{}, err
	}

	j.Lock()
	defer j.Unlock()

	if nil == j.database {
		return digest.Bytes32{}, fault.ErrDatabaseIsNotOpen
	}

	hash := id.Hash()
	batch := new(leveldb.Batch)
	j.transactions.batchPut(batch, encoded, hash[:])
	j.signers.batchPut(batch, []byte{}, signer[:], hash[:])

	err = j.database.Write(batch, nil)
	if nil != err {
		j.log.Errorf("put: %s  error: %s", id, err)
		return digest.Bytes32{}, err
	}
	j.cache.Set(hash, tx)

	j.log.Infof("put: %s  signer: %s", id, signer)
	return hash, nil
}

// Get - fetch a transaction by id
func (j *Journal) Get(id digest.Bytes32) (*transaction.Transaction, error) {
	j.RLock()
	defer j.RUnlock()

	if nil == j.database {
		return nil, fault.ErrDatabaseIsNotOpen
	}
	return j.get(id)
}

// must hold the lock
func (j *Journal) get(id digest.Bytes32) (*transaction.Transaction, error) {
	if tx, ok := j.cache.Get(id); ok {
		return tx, nil
	}

	encoded := j.transactions.Get(id[:])
	if nil == encoded {
		return nil, fault.ErrTransactionNotFound
	}
	tx, err := transaction.Decode(encoded)
	if nil != err {
		j.log.Errorf("decode: %s  error: %s", id, err)
		return nil, err
	}
	j.cache.Set(id, tx)
	return tx, nil
}

// Has - check if an id is stored
func (j *Journal) Has(id digest.Bytes32) bool {
	j.RLock()
	defer j.RUnlock()

	if nil == j.database {
		return false
	}
	return j.transactions.Has(id[:])
}

// List - every stored transaction in id order
func (j *Journal) List() ([]Entry, error) {
	j.RLock()
	defer j.RUnlock()

	if nil == j.database {
		return nil, fault.ErrDatabaseIsNotOpen
	}

	entries := []Entry{}
	for _, e := range j.transactions.Elements() {
		id := digest.FromBytes(e.Key)
		tx, ok := j.cache.Get(id)
		if !ok {
			var err error
			tx, err = transaction.Decode(e.Value)
			if nil != err {
				j.log.Errorf("decode: %s  error: %s", id, err)
				return nil, err
			}
			j.cache.Set(id, tx)
		}
		signer, err := tx.Signer()
		if nil != err {
			return nil, err
		}
		entries = append(entries, Entry{
			ID:          id,
			Signer:      signer,
			Transaction: tx,
		})
	}
	return entries, nil
}

// BySigner - ids of the transactions signed by an address
func (j *Journal) BySigner(signer address.Address) ([]digest.Bytes32, error) {
	j.RLock()
	defer j.RUnlock()

	if nil == j.database {
		return nil, fault.ErrDatabaseIsNotOpen
	}

	ids := []digest.Bytes32{}
	for _, e := range j.signers.Elements(signer[:]) {
		ids = append(ids, digest.FromBytes(e.Key[address.Length:]))
	}
	return ids, nil
}

// Delete - remove a transaction and its signer index
func (j *Journal) Delete(id digest.Bytes32) error {
	j.Lock()
	defer j.Unlock()

	if nil == j.database {
		return fault.ErrDatabaseIsNotOpen
	}

	tx, err := j.get(id)
	if nil != err {
		return err
	}
	signer, err := tx.Signer()
	if nil != err {
		return err
	}

	batch := new(leveldb.Batch)
	j.transactions.batchDelete(batch, id[:])
	j.signers.batchDelete(batch, signer[:], id[:])

	err = j.database.Write(batch, nil)
	if nil != err {
		j.log.Errorf("delete: %s  error: %s", id, err)
		return err
	}
	j.cache.Delete(id)

	j.log.Infof("delete: %s", id)
	return nil
}
