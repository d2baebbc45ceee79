// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/thortx/fault"
)

// pool prefixes
const (
	transactionPrefix = 'T'
	signerPrefix      = 'S'
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// journal access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Journal - an open transaction journal
type Journal struct {
	sync.RWMutex

	log          *logger.L
	database     *leveldb.DB
	transactions *PoolHandle
	signers      *PoolHandle
	cache        *txCache
}

// Open - open or create the journal database
func Open(name string, readOnly bool) (*Journal, error) {
	log := logger.New("storage")

	db, version, err := getDB(name, readOnly)
	if nil != err {
		log.Errorf("open: %q  error: %s", name, err)
		return nil, err
	}

	switch version {
	case currentDBVersion:
	case 0:
		if readOnly {
			db.Close()
			return nil, fault.ErrIncompatibleDatabase
		}
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	default:
		log.Criticalf("database version: %d  current version: %d", version, currentDBVersion)
		db.Close()
		return nil, fault.ErrIncompatibleDatabase
	}

	log.Infof("opened: %q  read only: %t", name, readOnly)

	return &Journal{
		log:      log,
		database: db,
		transactions: &PoolHandle{
			prefix:   transactionPrefix,
			database: db,
		},
		signers: &PoolHandle{
			prefix:   signerPrefix,
			database: db,
		},
		cache: newCache(),
	}, nil
}

// Close - close the database
func (j *Journal) Close() error {
	j.Lock()
	defer j.Unlock()

	if nil == j.database {
		return fault.ErrDatabaseIsNotOpen
	}
	err := j.database.Close()
	j.database = nil
	j.cache.Clear()
	j.log.Info("closed")
	return err
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fault.ErrIncompatibleDatabase
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
