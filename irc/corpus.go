// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package irc

import (
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"code.cloudfoundry.org/bytefmt"

	"github.com/raistlinbot/raistlin/irc/logger"
	"github.com/raistlinbot/raistlin/irc/spellcheck"
)

// LoadCorpus reads the training corpus, refusing files larger than
// config.MaxSize (0 means no limit) or that aren't UTF-8.
func LoadCorpus(config CorpusConfig) (string, error) {
	info, err := os.Stat(config.Path)
	if err != nil {
		return "", err
	}
	if config.MaxSize > 0 && info.Size() > config.MaxSize {
		return "", fmt.Errorf("%w: %s is %s, limit is %s", ErrCorpusTooLarge, config.Path,
			bytefmt.ByteSize(uint64(info.Size())), bytefmt.ByteSize(uint64(config.MaxSize)))
	}

	data, err := os.ReadFile(config.Path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrCorpusInvalidUTF8, config.Path)
	}
	return string(data), nil
}

// TrainModel loads the corpus and trains a model from it.
func TrainModel(config CorpusConfig, logman *logger.Manager) (*spellcheck.Model, error) {
	corpus, err := LoadCorpus(config)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	model := spellcheck.Train(corpus)
	logman.Info(logger.TypeSpellcheck, "trained model",
		fmt.Sprintf("%s corpus", bytefmt.ByteSize(uint64(len(corpus)))),
		fmt.Sprintf("%d words", model.Len()),
		fmt.Sprintf("took %v", time.Since(start)))
	return model, nil
}
