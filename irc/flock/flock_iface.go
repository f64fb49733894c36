// Copyright (c) 2026 The raistlin authors
// released under the MIT license

// Package flock guards an on-disk datastore against being opened by two
// bots at once.
package flock

import (
	"errors"
)

var (
	CouldntAcquire = errors.New("Couldn't acquire flock (is another raistlin running with this datastore?)")
)

// documentation for github.com/gofrs/flock incorrectly claims that
// Flock implements sync.Locker; it does not because the Unlock method
// has a return type (err).
type Flocker interface {
	Unlock() error
}

type noopFlocker struct{}

func (n *noopFlocker) Unlock() error {
	return nil
}

// LockPath returns the lock file used for a datastore at path.
func LockPath(datastorePath string) string {
	return datastorePath + ".lock"
}
