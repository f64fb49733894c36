// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2014-2015 Edmund Huber
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package irc

import "errors"

// Runtime Errors
var (
	errNotConnected = errors.New("Not connected")
	errSessionPanic = errors.New("Session panicked")
)

// String Errors
var (
	errCouldNotStabilize = errors.New("Could not stabilize string while casefolding")
	errStringIsEmpty     = errors.New("String is empty")
	errInvalidCharacter  = errors.New("Invalid character")
)

// Socket Errors
var (
	errReadQ       = errors.New("ReadQ Exceeded")
	errInvalidUTF8 = errors.New("Received line is not valid UTF-8")
	// ErrInvalidUTF8 is exported for callers that want to distinguish
	// a peer sending garbage from a dropped connection
	ErrInvalidUTF8 = errInvalidUTF8
)

// Corpus Errors
var (
	ErrCorpusTooLarge    = errors.New("Corpus exceeds the configured maximum size")
	ErrCorpusInvalidUTF8 = errors.New("Corpus is not valid UTF-8")
)

// Config Errors
var (
	ErrServerAddressMissing  = errors.New("Server address missing")
	ErrNickMissing           = errors.New("Registration nick missing")
	ErrUserMissing           = errors.New("Registration user missing")
	ErrChannelMissing        = errors.New("Channel missing")
	ErrWatchedAuthorMissing  = errors.New("Watched author missing (set watch.author, or watch.correct-everyone to correct every message)")
	ErrCorpusPathMissing     = errors.New("Corpus path missing")
	ErrInvalidFieldSpacing   = errors.New("Registration fields must not contain spaces (except realname)")
	ErrLoggerExcludeEmpty    = errors.New("Encountered logging type '-' with no type to exclude")
	ErrLoggerFilenameMissing = errors.New("Logging configuration specifies 'file' method but 'filename' is empty")
	ErrLoggerHasNoTypes      = errors.New("Logger has no types to log")
	ErrFakelagInvalid        = errors.New("Fakelag messages-per-window must be positive when fakelag is enabled")
)
