// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package irc

import (
	"errors"
	"fmt"
	"time"

	"github.com/raistlinbot/raistlin/irc/flock"
	"github.com/raistlinbot/raistlin/irc/kv"
)

const (
	keyCorrectionPrefix = "correction "
)

// History remembers recently sent corrections so the same note isn't
// repeated to a channel within the dedupe window. It's safe for
// concurrent use (the store serializes transactions).
type History struct {
	store  kv.Store
	window time.Duration
	flock  flock.Flocker
}

// OpenHistory opens the history store described by config. An empty
// datastore path gives an in-memory store; an on-disk store is locked
// against concurrent use by another bot.
func OpenHistory(datastore DatastoreConfig, config HistoryConfig) (history *History, err error) {
	var lock flock.Flocker
	path := datastore.Path
	if path == "" {
		path = kv.InMemory
	} else {
		lock, err = flock.TryAcquireFlock(flock.LockPath(path))
		if err != nil {
			return nil, err
		}
	}

	store, err := kv.BuntdbOpen(path)
	if err != nil {
		if lock != nil {
			lock.Unlock()
		}
		return nil, fmt.Errorf("Could not open datastore %s: %w", path, err)
	}
	history = NewHistory(store, config.DedupeWindow)
	history.flock = lock
	return history, nil
}

// NewHistory wraps an already-open store; closing the history closes it.
func NewHistory(store kv.Store, window time.Duration) *History {
	return &History{store: store, window: window}
}

// Enabled reports whether duplicate suppression is on.
func (history *History) Enabled() bool {
	return history != nil && history.window > 0
}

// channel names are case-insensitive, so #Foo and #foo share a history
func correctionKey(channel, note string) string {
	return fmt.Sprintf("%s%s %s", keyCorrectionPrefix, foldChannel(channel), note)
}

// Sent reports whether note was sent to channel within the window.
func (history *History) Sent(channel, note string) (sent bool, err error) {
	if !history.Enabled() {
		return false, nil
	}
	err = history.store.View(func(tx kv.Tx) error {
		_, err := tx.Get(correctionKey(channel, note))
		if err == nil {
			sent = true
			return nil
		} else if errors.Is(err, kv.ErrNotFound) {
			return nil
		}
		return err
	})
	return
}

// Record marks note as sent to channel at now; it's forgotten once the
// window has passed. Only call it after the note actually went out.
func (history *History) Record(channel, note string, now time.Time) error {
	if !history.Enabled() {
		return nil
	}
	return history.store.Update(func(tx kv.Tx) error {
		_, _, err := tx.Set(correctionKey(channel, note), now.UTC().Format(time.RFC3339),
			&kv.SetOptions{Expires: true, TTL: history.window})
		return err
	})
}

// Recent returns the notes currently inside the window for channel.
func (history *History) Recent(channel string) (notes []string, err error) {
	if !history.Enabled() {
		return nil, nil
	}
	prefix := correctionKey(channel, "")
	err = history.store.View(func(tx kv.Tx) error {
		return tx.AscendKeys(prefix+"*", func(key, value string) bool {
			notes = append(notes, key[len(prefix):])
			return true
		})
	})
	return
}

// Close closes the store and releases the datastore lock.
func (history *History) Close() (err error) {
	if history == nil {
		return nil
	}
	err = history.store.Close()
	if history.flock != nil {
		if unlockErr := history.flock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return
}
