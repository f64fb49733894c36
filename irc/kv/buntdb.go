// Copyright (c) 2022 Valentin Lorentz
// Copyright (c) 2026 The raistlin authors
// released under the MIT license

// This file implements the Store abstraction using buntdb.
// As the abstraction itself is based on buntdb's API, this is mostly
// a pass-through, except that buntdb's not-found error is translated.

package kv

import (
	"errors"

	"github.com/tidwall/buntdb"
)

// InMemory is the path that opens a store with no backing file.
const InMemory = ":memory:"

func translateErr(err error) error {
	if errors.Is(err, buntdb.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

/**********************
 * Transactions
 */
type BuntdbTx struct {
	tx *buntdb.Tx
}

func (tx BuntdbTx) AscendKeys(pattern string, iterator func(key, value string) bool) error {
	return tx.tx.AscendKeys(pattern, iterator)
}

func (tx BuntdbTx) Delete(key string) (val string, err error) {
	val, err = tx.tx.Delete(key)
	return val, translateErr(err)
}

func (tx BuntdbTx) Get(key string) (val string, err error) {
	val, err = tx.tx.Get(key)
	return val, translateErr(err)
}

func (tx BuntdbTx) Set(key string, value string, opts *SetOptions) (previousValue string, replaced bool, err error) {
	var buntdbOpts *buntdb.SetOptions
	if opts != nil {
		buntdbOpts = &buntdb.SetOptions{Expires: opts.Expires, TTL: opts.TTL}
	}
	return tx.tx.Set(key, value, buntdbOpts)
}

/**********************
 * Database
 */

type BuntdbStore struct {
	db *buntdb.DB
}

// BuntdbOpen opens (or creates) the buntdb file at path; use InMemory for
// a store that lives only as long as the process.
func BuntdbOpen(path string) (Store, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, err
	}
	return BuntdbStore{db}, nil
}

func (kv BuntdbStore) Close() error {
	return kv.db.Close()
}

func (kv BuntdbStore) Update(fn func(tx Tx) error) error {
	return kv.db.Update(func(tx *buntdb.Tx) error {
		return fn(BuntdbTx{tx})
	})
}

func (kv BuntdbStore) View(fn func(tx Tx) error) error {
	return kv.db.View(func(tx *buntdb.Tx) error {
		return fn(BuntdbTx{tx})
	})
}
