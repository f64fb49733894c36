// Copyright (c) 2022 Valentin Lorentz
// Copyright (c) 2026 The raistlin authors
// released under the MIT license

// Package kv defines a small transactional key-value abstraction, modeled
// on buntdb's API, so the bot's history store doesn't depend on buntdb
// types directly.
package kv

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned by Get and Delete for missing (or expired) keys.
	ErrNotFound = errors.New("not found")
)

// SetOptions controls expiry of a key.
type SetOptions struct {
	Expires bool
	TTL     time.Duration
}

type Tx interface {
	AscendKeys(pattern string, iterator func(key, value string) bool) error
	Delete(key string) (val string, err error)
	Get(key string) (val string, err error)
	Set(key string, value string, opts *SetOptions) (previousValue string, replaced bool, err error)
}

type Store interface {
	Close() error
	Update(fn func(tx Tx) error) error
	View(fn func(tx Tx) error) error
}
