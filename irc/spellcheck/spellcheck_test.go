// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package spellcheck

import (
	"reflect"
	"testing"
)

func TestCorrectAll(t *testing.T) {
	model := Train("tomato pizza")

	cases := []struct {
		text     string
		expected []string
	}{
		{"I like to eat tomata pizza", []string{"s/tomata/tomato"}},
		{"I like to eat tomata pzza", []string{"s/tomata/tomato", "s/pzza/pizza"}},
		{"I like to eat tomato pizza", nil},
		{"", nil},
		{"   \t  ", nil},
		{"pzza\ttomata", []string{"s/pzza/pizza", "s/tomata/tomato"}},
	}

	for _, c := range cases {
		result := model.CorrectAll(c.text)
		if !reflect.DeepEqual(result, c.expected) {
			t.Errorf("CorrectAll(%q): expected %#v, got %#v", c.text, c.expected, result)
		}
	}
}

func TestCorrectAllIdempotent(t *testing.T) {
	model := Train("tomato pizza")
	for i := 0; i < 2; i++ {
		if notes := model.CorrectAll("I like to eat tomato pizza"); len(notes) != 0 {
			t.Errorf("pass %d: expected no notes, got %#v", i, notes)
		}
	}
}

func TestShortTokensSkipped(t *testing.T) {
	// "ab" is one insertion from "abc", but is too short to be considered
	model := Train("abc xy")
	if notes := model.CorrectAll("ab x xz"); len(notes) != 0 {
		t.Errorf("expected no notes for short tokens, got %#v", notes)
	}
	if notes := model.CorrectAll("abd"); !reflect.DeepEqual(notes, []string{"s/abd/abc"}) {
		t.Errorf("unexpected notes: %#v", notes)
	}
}

func TestShortTokensCountRunes(t *testing.T) {
	// "éa" is three bytes but two runes
	model := Train("éab")
	if notes := model.CorrectAll("éa"); len(notes) != 0 {
		t.Errorf("expected no notes for a two-rune token, got %#v", notes)
	}
	if notes := model.CorrectAll("éax"); !reflect.DeepEqual(notes, []string{"s/éax/éab"}) {
		t.Errorf("unexpected notes: %#v", notes)
	}
}

func TestCorrect(t *testing.T) {
	model := Train("spelling spelling spelling spewing corrected")

	cases := []struct {
		word     string
		expected string
	}{
		// known words are returned as-is
		{"spewing", "spewing"},
		// distance 1, higher frequency wins
		{"speling", "spelling"},
		// transposition
		{"spleling", "spelling"},
		{"corected", "corrected"},
		// distance 2
		{"korected", "corrected"},
		// nothing within two edits
		{"zzzzzz", "zzzzzz"},
		// too long to be within two edits of any known word
		{"spellingspellingspelling", "spellingspellingspelling"},
	}
	for _, c := range cases {
		if result := model.Correct(c.word); result != c.expected {
			t.Errorf("Correct(%q): expected %q, got %q", c.word, c.expected, result)
		}
	}
}

func TestCorrectPrefersDistanceOne(t *testing.T) {
	// "hello" is two edits from "helpp" and much more frequent than
	// "help", which is one edit away
	model := Train("hello hello hello hello help")
	if result := model.Correct("helpp"); result != "help" {
		t.Errorf("expected help, got %s", result)
	}
}

func TestCorrectTieBreak(t *testing.T) {
	// "bat" and "cat" are both one substitution from "aat" and equally
	// frequent; substitutions scan left to right, so "bat" comes first
	model := Train("cat bat")
	if result := model.Correct("aat"); result != "bat" {
		t.Errorf("expected bat, got %s", result)
	}
}

func TestCorrectTieBreakDistanceTwo(t *testing.T) {
	// both are two insertions from "b"; "ab" is the first one-edit string
	// that reaches either, and its insertions reach "cab" before "abc"
	model := Train("abc cab")
	if result := model.Correct("b"); result != "cab" {
		t.Errorf("expected cab, got %s", result)
	}
}

func TestTrainCountsAndAlphabet(t *testing.T) {
	model := Train("Pizza pizza\npizza  café")
	if model.Frequency("pizza") != 2 || model.Frequency("Pizza") != 1 {
		t.Errorf("unexpected counts: pizza=%d Pizza=%d", model.Frequency("pizza"), model.Frequency("Pizza"))
	}
	if model.Len() != 3 {
		t.Errorf("expected 3 distinct words, got %d", model.Len())
	}
	if model.Alphabet() != BaseAlphabet+"Pé" {
		t.Errorf("unexpected alphabet: %q", model.Alphabet())
	}
	// edits are per rune, so a missing accented letter is one insertion
	if result := model.Correct("caf"); result != "café" {
		t.Errorf("expected café, got %s", result)
	}
}

func TestEmptyModel(t *testing.T) {
	model := NewModel()
	if result := model.Correct("anything"); result != "anything" {
		t.Errorf("empty model changed the word: %s", result)
	}
	if notes := model.CorrectAll("some words here"); len(notes) != 0 {
		t.Errorf("empty model produced notes: %#v", notes)
	}
}
