// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/hashmint/tokend/fault"
)

// exported storage pools
type pools struct {
	Tokens    *PoolHandle `prefix:"T"`
	OwnerList *PoolHandle `prefix:"L"`
	Counters  *PoolHandle `prefix:"N"`
	TestData  *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	db         *leveldb.DB
	dataAccess DataAccess
	trx        Transaction
}

// Initialise - open up the database connection
func Initialise(database string) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.ErrAlreadyInitialised
	}

	db, version, err := getDB(database + "-data.leveldb")
	if nil != err {
		return err
	}
	defer func() {
		if nil != err {
			db.Close()
		}
	}()

	if version > currentDBVersion {
		err = fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
		return err
	} else if 0 == version {
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return err
		}
	}

	dataAccess := newDA(db, new(leveldb.Batch), newDBCache())

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field to locate its table prefix
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			err = fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
			return err
		}

		prefix := prefixTag[0]
		limit := []byte{prefix + 1}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: dataAccess,
		}

		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	poolData.db = db
	poolData.dataAccess = dataAccess
	poolData.trx = newTransaction([]DataAccess{dataAccess})

	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.db {
		return
	}

	poolData.db.Close()
	poolData.db = nil
	poolData.dataAccess = nil
	poolData.trx = nil
	Pool = pools{}
}

// NewDBTransaction - obtain the transaction over the data store
//
// only one transaction can be in use at a time; Begin fails while a
// previous transaction is neither committed nor aborted
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.trx {
		return nil, fault.ErrNotInitialised
	}
	err := poolData.trx.Begin()
	if nil != err {
		return nil, err
	}
	return poolData.trx, nil
}

// open the database and read its version
func getDB(name string) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
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
		return nil, 0, fmt.Errorf("database version block size: %d  expected: 4", len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

// write the version record
func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
