// Copyright (c) 2021 Shivaram Lingamneni
// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package irc

import (
	"fmt"
	"runtime/debug"

	"github.com/raistlinbot/raistlin/irc/logger"
)

// HandlePanic is a general-purpose panic handler for ad-hoc goroutines.
// Because of the semantics of `recover`, it must be called directly
// from the routine on whose call stack the panic would occur, with `defer`,
// e.g. `defer bot.HandlePanic()`
func (bot *Bot) HandlePanic() {
	if r := recover(); r != nil {
		bot.logger.Error(logger.TypeBot, fmt.Sprintf("Panic encountered: %v\n%s", r, debug.Stack()))
	}
}

// recoverSession turns a panic during a session into a session error,
// so that it goes through the usual reconnect logic. Like HandlePanic it
// must be deferred directly.
func (bot *Bot) recoverSession(err *error) {
	if r := recover(); r != nil {
		bot.logger.Error(logger.TypeBot, fmt.Sprintf("Panic encountered: %v\n%s", r, debug.Stack()))
		*err = fmt.Errorf("%w: %v", errSessionPanic, r)
	}
}
