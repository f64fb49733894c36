//go:build plan9 || solaris

// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package flock

// no flock(2) on these platforms
func TryAcquireFlock(path string) (fl Flocker, err error) {
	return &noopFlocker{}, nil
}
