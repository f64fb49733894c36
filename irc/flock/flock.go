//go:build !(plan9 || solaris)

// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package flock

import (
	"github.com/gofrs/flock"
)

// TryAcquireFlock takes an exclusive, non-blocking lock on path,
// creating the file if necessary.
func TryAcquireFlock(path string) (fl Flocker, err error) {
	f := flock.New(path)
	success, err := f.TryLock()
	if err != nil {
		return nil, err
	} else if !success {
		return nil, CouldntAcquire
	}
	return f, nil
}
