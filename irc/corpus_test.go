// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package irc

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/raistlinbot/raistlin/irc/logger"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCorpus(t *testing.T) {
	path := writeTempFile(t, "training.txt", []byte("tomato pizza\n"))

	corpus, err := LoadCorpus(CorpusConfig{Path: path, MaxSize: 1024})
	if err != nil {
		t.Fatal(err)
	}
	if corpus != "tomato pizza\n" {
		t.Errorf("unexpected corpus: %q", corpus)
	}

	if _, err := LoadCorpus(CorpusConfig{Path: path, MaxSize: 4}); !errors.Is(err, ErrCorpusTooLarge) {
		t.Errorf("expected ErrCorpusTooLarge, got %v", err)
	}

	badPath := writeTempFile(t, "bad.txt", []byte{'o', 'k', ' ', 0xff, 0xfe})
	if _, err := LoadCorpus(CorpusConfig{Path: badPath}); !errors.Is(err, ErrCorpusInvalidUTF8) {
		t.Errorf("expected ErrCorpusInvalidUTF8, got %v", err)
	}

	if _, err := LoadCorpus(CorpusConfig{Path: filepath.Join(t.TempDir(), "missing.txt")}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestTrainModel(t *testing.T) {
	path := writeTempFile(t, "training.txt", []byte("tomato pizza pizza"))
	model, err := TrainModel(CorpusConfig{Path: path}, logger.NewWriterManager(io.Discard, logger.LogError))
	if err != nil {
		t.Fatal(err)
	}
	if model.Len() != 2 || model.Frequency("pizza") != 2 {
		t.Errorf("unexpected model: %d words, pizza=%d", model.Len(), model.Frequency("pizza"))
	}
}
