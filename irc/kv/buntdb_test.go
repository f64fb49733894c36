// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package kv

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestBuntdbStore(t *testing.T) {
	store, err := BuntdbOpen(InMemory)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	err = store.Update(func(tx Tx) error {
		for _, key := range []string{"correction #b s/x/y", "correction #a s/x/y", "other"} {
			if _, _, err := tx.Set(key, "v", nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	var keys []string
	err = store.View(func(tx Tx) error {
		return tx.AscendKeys("correction *", func(key, value string) bool {
			keys = append(keys, key)
			return true
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(keys, []string{"correction #a s/x/y", "correction #b s/x/y"}) {
		t.Errorf("unexpected keys: %v", keys)
	}

	err = store.Update(func(tx Tx) error {
		if _, err := tx.Delete("other"); err != nil {
			return err
		}
		if _, err := tx.Delete("other"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound deleting a missing key, got %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestBuntdbExpiry(t *testing.T) {
	store, err := BuntdbOpen(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	err = store.Update(func(tx Tx) error {
		_, _, err := tx.Set("k", "v", &SetOptions{Expires: true, TTL: 20 * time.Millisecond})
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)

	err = store.View(func(tx Tx) error {
		_, err := tx.Get("k")
		return err
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected expired key to be gone, got %v", err)
	}
}
