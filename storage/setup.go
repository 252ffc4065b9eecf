// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"
	"github.com/bookchain/bookchaind/fault"
)

// Pools - the set of storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Assets       *PoolHandle   `prefix:"A" database:"ledger"`
	Pending      *PoolHandle   `prefix:"P" database:"ledger"`
	Quarantine   *PoolHandle   `prefix:"Q" database:"ledger"`
	TestData     *PoolHandle   `prefix:"Z" database:"ledger"`
	Transactions *BadgerHandle `prefix:"T" database:"audit"`
	AssetIndex   *BadgerHandle `prefix:"X" database:"audit"`
}

// Database - both open databases and their pools
type Database struct {
	Pools

	sync.Mutex
	log    *logger.L
	ledger *leveldb.DB
	audit  *badger.DB
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentLedgerVersion = 0x100
	currentAuditVersion  = 0x100
)

// database access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Open - open up both databases
//
// name is a path prefix, the ledger and audit databases are created
// alongside each other using it
func Open(log *logger.L, name string, readOnly bool) (*Database, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	ok := false
	db := &Database{
		log: log,
	}
	defer func() {
		if !ok {
			db.close()
		}
	}()

	ledgerDatabase := name + "-ledger.leveldb"
	auditDatabase := name + "-audit.badger"

	var ledgerVersion, auditVersion int
	var err error

	db.ledger, ledgerVersion, err = getLevelDB(ledgerDatabase, readOnly)
	if nil != err {
		return nil, err
	}

	db.audit, auditVersion, err = getBadgerDB(log, auditDatabase, readOnly)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if ledgerVersion > currentLedgerVersion {
		log.Criticalf("ledger database version: %d > current version: %d", ledgerVersion, currentLedgerVersion)
		return nil, fmt.Errorf("ledger database version: %d > current version: %d", ledgerVersion, currentLedgerVersion)
	}
	if auditVersion > currentAuditVersion {
		log.Criticalf("audit database version: %d > current version: %d", auditVersion, currentAuditVersion)
		return nil, fmt.Errorf("audit database version: %d > current version: %d", auditVersion, currentAuditVersion)
	}

	// database was empty so tag as current version
	if 0 == ledgerVersion && !readOnly {
		err = db.ledger.Put(versionKey, versionBytes(currentLedgerVersion), nil)
		if nil != err {
			return nil, unavailable("ledger version", err)
		}
	}
	if 0 == auditVersion && !readOnly {
		err = db.audit.Update(func(txn *badger.Txn) error {
			return txn.Set(versionKey, versionBytes(currentAuditVersion))
		})
		if nil != err {
			return nil, unavailable("audit version", err)
		}
	}

	if err := db.setPools(); nil != err {
		return nil, err
	}

	log.Infof("opened ledger: %s  audit: %s  read only: %t", ledgerDatabase, auditDatabase, readOnly)

	ok = true // prevent db close
	return db, nil
}

// scan each field of Pools and fill in the handle for its prefix
func (db *Database) setPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(db.Pools)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&db.Pools).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}
		prefix := prefixTag[0]

		var handle reflect.Value
		switch dbName := fieldInfo.Tag.Get("database"); dbName {
		case "ledger":
			handle = reflect.ValueOf(newPoolHandle(prefix, db.ledger))
		case "audit":
			handle = reflect.ValueOf(newBadgerHandle(prefix, db.audit))
		default:
			return fmt.Errorf("pool: %v has invalid database: %q", fieldInfo, dbName)
		}

		if handle.Type() != fieldInfo.Type {
			return fmt.Errorf("pool: %v has wrong handle type for database: %s", fieldInfo, handle.Type())
		}
		poolValue.Field(i).Set(handle)
	}
	return nil
}

// Close - close both databases
func (db *Database) Close() error {
	db.Lock()
	defer db.Unlock()
	return db.close()
}

func (db *Database) close() error {
	var result error
	if nil != db.audit {
		if err := db.audit.Close(); nil != err {
			result = errors.Wrap(err, "close audit")
		}
		db.audit = nil
	}
	if nil != db.ledger {
		if err := db.ledger.Close(); nil != err && nil == result {
			result = errors.Wrap(err, "close ledger")
		}
		db.ledger = nil
	}
	return result
}

// return:
//   database handle
//   version number
func getLevelDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, unavailable("open ledger", err)
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, unavailable("ledger version", err)
	}

	version, err := versionFromBytes(versionValue)
	if nil != err {
		db.Close()
		return nil, 0, err
	}
	return db, version, nil
}

func getBadgerDB(log *logger.L, name string, readOnly bool) (*badger.DB, int, error) {
	opt := badger.DefaultOptions(name).
		WithReadOnly(readOnly).
		WithLogger(badgerLogger{log: log})

	db, err := badger.Open(opt)
	if nil != err {
		return nil, 0, unavailable("open audit", err)
	}

	var versionValue []byte
	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(versionKey)
		if nil != err {
			return err
		}
		versionValue, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, unavailable("audit version", err)
	}

	version, err := versionFromBytes(versionValue)
	if nil != err {
		db.Close()
		return nil, 0, err
	}
	return db, version, nil
}

func versionBytes(version int) []byte {
	buffer := make([]byte, 4)
	binary.BigEndian.PutUint32(buffer, uint32(version))
	return buffer
}

func versionFromBytes(buffer []byte) (int, error) {
	if 4 != len(buffer) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(buffer))
	}
	return int(binary.BigEndian.Uint32(buffer)), nil
}
