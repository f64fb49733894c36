// Copyright (c) 2026 The raistlin authors
// released under the MIT license

// Package spellcheck implements a word-frequency spelling corrector.
//
// A Model is trained once from a whitespace-separated corpus, then queried
// read-only: an unknown word is replaced by the most frequent known word
// within one edit (deletion, adjacent transposition, substitution, insertion),
// falling back to two edits. Edits operate on runes, not bytes.
package spellcheck

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// BaseAlphabet is always part of the substitution/insertion alphabet;
	// runes seen during training are appended after it.
	BaseAlphabet = "abcdefghijklmnopqrstuvwxyz"

	// MinWordLen is the shortest token (in runes) that CorrectAll will try
	// to correct; shorter tokens are skipped.
	MinWordLen = 3
)

// Model is a trained word-frequency model. It is not safe to call Train
// concurrently with anything else; after training, all read methods may be
// called from multiple goroutines.
type Model struct {
	alphabet []rune
	inAlpha  map[rune]bool
	counts   map[string]int
	// longest known word, in runes; a word more than two runes longer
	// can't be within two edits of anything
	maxLen int
}

// NewModel returns an empty model whose alphabet is BaseAlphabet.
func NewModel() *Model {
	m := &Model{
		inAlpha: make(map[rune]bool),
		counts:  make(map[string]int),
	}
	for _, r := range BaseAlphabet {
		m.addRune(r)
	}
	return m
}

// Train returns a new model trained on corpus.
func Train(corpus string) *Model {
	m := NewModel()
	m.Train(corpus)
	return m
}

func (m *Model) addRune(r rune) {
	if !m.inAlpha[r] {
		m.inAlpha[r] = true
		m.alphabet = append(m.alphabet, r)
	}
}

// Train adds every whitespace-separated token of corpus to the model,
// incrementing its count. Tokens are taken as-is: no case folding and no
// punctuation stripping.
func (m *Model) Train(corpus string) {
	for _, token := range strings.Fields(corpus) {
		m.counts[token]++
		length := 0
		for _, r := range token {
			m.addRune(r)
			length++
		}
		if length > m.maxLen {
			m.maxLen = length
		}
	}
}

// Known reports whether word occurred in the training corpus.
func (m *Model) Known(word string) bool {
	_, ok := m.counts[word]
	return ok
}

// Frequency returns the number of times word occurred in the corpus.
func (m *Model) Frequency(word string) int {
	return m.counts[word]
}

// Len returns the number of distinct known words.
func (m *Model) Len() int {
	return len(m.counts)
}

// Alphabet returns the runes used for substitutions and insertions,
// in generation order.
func (m *Model) Alphabet() string {
	return string(m.alphabet)
}

// Correct returns the most probable known word for word. Known words are
// returned unchanged; otherwise distance-1 candidates win over distance-2
// candidates, higher frequency wins within a distance, and ties go to the
// candidate generated first. If nothing known is within two edits, word is
// returned unchanged.
//
// One edit generates about 2nk strings for a word of n runes and an alphabet
// of k runes; the two-edit fallback generates about (2nk)^2. Every distinct
// rune in the corpus grows k, so a corpus with many scripts makes the fallback
// markedly slower.
func (m *Model) Correct(word string) string {
	if m.Known(word) {
		return word
	}
	if utf8.RuneCountInString(word) > m.maxLen+2 {
		return word
	}

	edits := m.edits1(word)
	if best, ok := m.best(edits); ok {
		return best
	}

	var result string
	bestCount := 0
	// a repeated edit can't produce a new strictly better candidate
	expanded := make(map[string]bool, len(edits))
	for _, edit := range edits {
		if expanded[edit] {
			continue
		}
		expanded[edit] = true
		m.forEachEdit([]rune(edit), func(candidate string) {
			if count := m.counts[candidate]; count > bestCount {
				result, bestCount = candidate, count
			}
		})
	}
	if bestCount > 0 {
		return result
	}
	return word
}

// CorrectAll corrects every token of text that is at least MinWordLen runes
// long, and returns one note of the form "s/original/corrected" per token
// that changed, in input order. Unchanged tokens produce no note.
func (m *Model) CorrectAll(text string) (notes []string) {
	for _, token := range strings.Fields(text) {
		if utf8.RuneCountInString(token) < MinWordLen {
			continue
		}
		if corrected := m.Correct(token); corrected != token {
			notes = append(notes, Note(token, corrected))
		}
	}
	return
}

// Note formats a single correction.
func Note(original, corrected string) string {
	return fmt.Sprintf("s/%s/%s", original, corrected)
}

func (m *Model) best(candidates []string) (result string, ok bool) {
	bestCount := 0
	for _, candidate := range candidates {
		if count := m.counts[candidate]; count > bestCount {
			result, bestCount = candidate, count
		}
	}
	return result, bestCount > 0
}

func (m *Model) edits1(word string) (result []string) {
	m.forEachEdit([]rune(word), func(candidate string) {
		result = append(result, candidate)
	})
	return
}

// forEachEdit calls fn for every string one edit away from word: first all
// deletions, then all adjacent transpositions, then all substitutions, then
// all insertions, each scanning left to right. Duplicates are not removed.
func (m *Model) forEachEdit(word []rune, fn func(string)) {
	var buf strings.Builder
	emit := func(parts ...[]rune) {
		buf.Reset()
		for _, part := range parts {
			for _, r := range part {
				buf.WriteRune(r)
			}
		}
		fn(buf.String())
	}
	one := make([]rune, 1)
	pair := make([]rune, 2)

	for i := 0; i < len(word); i++ {
		emit(word[:i], word[i+1:])
	}
	for i := 0; i+1 < len(word); i++ {
		pair[0], pair[1] = word[i+1], word[i]
		emit(word[:i], pair, word[i+2:])
	}
	for i := 0; i < len(word); i++ {
		for _, r := range m.alphabet {
			one[0] = r
			emit(word[:i], one, word[i+1:])
		}
	}
	for i := 0; i <= len(word); i++ {
		for _, r := range m.alphabet {
			one[0] = r
			emit(word[:i], one, word[i:])
		}
	}
}
