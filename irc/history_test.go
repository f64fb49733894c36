// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package irc

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/raistlinbot/raistlin/irc/flock"
	"github.com/raistlinbot/raistlin/irc/kv"
)

func newTestHistory(t *testing.T, window time.Duration) *History {
	t.Helper()
	store, err := kv.BuntdbOpen(kv.InMemory)
	if err != nil {
		t.Fatal(err)
	}
	history := NewHistory(store, window)
	t.Cleanup(func() { history.Close() })
	return history
}

// sendOnce does what the dispatcher does: check, then record what went out.
func sendOnce(t *testing.T, history *History, channel, note string) (duplicate bool) {
	t.Helper()
	sent, err := history.Sent(channel, note)
	if err != nil {
		t.Fatal(err)
	}
	if sent {
		return true
	}
	if err := history.Record(channel, note, time.Now()); err != nil {
		t.Fatal(err)
	}
	return false
}

func TestHistoryDedupe(t *testing.T) {
	history := newTestHistory(t, time.Hour)

	checks := []struct {
		channel   string
		note      string
		duplicate bool
	}{
		{"#didnt", "s/tomata/tomato", false},
		{"#didnt", "s/tomata/tomato", true},
		{"#didnt", "s/pzza/pizza", false},
		{"#other", "s/tomata/tomato", false},
		{"#didnt", "s/pzza/pizza", true},
		{"#DIDNT", "s/pzza/pizza", true},
	}
	for i, c := range checks {
		if duplicate := sendOnce(t, history, c.channel, c.note); duplicate != c.duplicate {
			t.Errorf("check %d (%s %s): expected duplicate=%t", i, c.channel, c.note, c.duplicate)
		}
	}

	recent, err := history.Recent("#didnt")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(recent, []string{"s/pzza/pizza", "s/tomata/tomato"}) {
		t.Errorf("unexpected recent notes: %#v", recent)
	}
}

func TestHistorySentDoesNotRecord(t *testing.T) {
	history := newTestHistory(t, time.Hour)
	for i := 0; i < 2; i++ {
		sent, err := history.Sent("#c", "s/a/b")
		if err != nil || sent {
			t.Errorf("unrecorded note reported as sent: sent=%t err=%v", sent, err)
		}
	}
}

func TestHistoryExpiry(t *testing.T) {
	history := newTestHistory(t, 20*time.Millisecond)
	if sendOnce(t, history, "#c", "s/a/b") {
		t.Fatal("fresh note reported as duplicate")
	}
	time.Sleep(100 * time.Millisecond)
	if sendOnce(t, history, "#c", "s/a/b") {
		t.Error("note should have expired")
	}
}

func TestHistoryDisabled(t *testing.T) {
	history := newTestHistory(t, 0)
	for i := 0; i < 2; i++ {
		if sendOnce(t, history, "#c", "s/a/b") {
			t.Error("disabled history reported a duplicate")
		}
	}

	var nilHistory *History
	if nilHistory.Enabled() {
		t.Error("nil history should be disabled")
	}
	if sent, err := nilHistory.Sent("#c", "s/a/b"); sent || err != nil {
		t.Errorf("nil history: sent=%t err=%v", sent, err)
	}
	if err := nilHistory.Record("#c", "s/a/b", time.Now()); err != nil {
		t.Error(err)
	}
	if err := nilHistory.Close(); err != nil {
		t.Error(err)
	}
}

func TestOpenHistoryInMemory(t *testing.T) {
	history, err := OpenHistory(DatastoreConfig{}, HistoryConfig{DedupeWindow: time.Hour})
	if err != nil {
		t.Fatal(err)
	}
	defer history.Close()
	if sendOnce(t, history, "#c", "s/a/b") || !sendOnce(t, history, "#c", "s/a/b") {
		t.Error("in-memory history should suppress the second note")
	}
}

func TestHistoryOnDiskLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raistlin.db")
	datastore := DatastoreConfig{Path: path}
	config := HistoryConfig{DedupeWindow: time.Hour}

	history, err := OpenHistory(datastore, config)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := OpenHistory(datastore, config); err != flock.CouldntAcquire {
		t.Errorf("second open should fail to lock, got %v", err)
	}
	if err := history.Record("#c", "s/a/b", time.Now()); err != nil {
		t.Fatal(err)
	}
	if err := history.Close(); err != nil {
		t.Fatal(err)
	}

	// the note survives a restart
	history, err = OpenHistory(datastore, config)
	if err != nil {
		t.Fatal(err)
	}
	defer history.Close()
	if sent, _ := history.Sent("#c", "s/a/b"); !sent {
		t.Error("note recorded before restart was forgotten")
	}
}
