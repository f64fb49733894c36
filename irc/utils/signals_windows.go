//go:build windows

// Copyright (c) 2020 Shivaram Lingamneni
// released under the MIT license

package utils

import (
	"os"
	"syscall"
)

var (
	// ExitSignals are the signals the bot shuts down cleanly on.
	// (SIGTERM is never delivered on windows, but os/signal accepts it)
	ExitSignals = []os.Signal{
		os.Interrupt,
		syscall.SIGTERM,
	}
)
