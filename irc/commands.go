// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package irc

import (
	"strings"
)

const (
	// separates the command header from the trailing parameter
	trailingSeparator = " :"
	lineTerminator    = "\r\n"
)

// Command is a parsed server line that the bot reacts to.
// It is implemented by Ping and PrivMsg only.
type Command interface {
	// Name returns the IRC verb of the command.
	Name() string
}

// Ping is a keepalive from the server; it must be answered with a PONG
// echoing Server.
type Ping struct {
	Server string
}

func (Ping) Name() string { return "PING" }

// PrivMsg is a message to a channel. Sender is the raw source prefix as
// received (e.g. ":nick!user@host").
type PrivMsg struct {
	Sender  string
	Channel string
	Text    string
}

func (PrivMsg) Name() string { return "PRIVMSG" }

// Author returns the part of Sender before the first '@'.
func (msg PrivMsg) Author() string {
	author, _, _ := strings.Cut(msg.Sender, "@")
	return author
}

// ParseCommand parses one raw line, terminator included. It returns nil
// for anything that isn't a well-formed PING or PRIVMSG.
//
// The line must contain exactly one " :" separator; text that itself
// contains " :" is therefore not recognized.
func ParseCommand(line string) Command {
	parts := strings.Split(line, trailingSeparator)
	if len(parts) != 2 {
		return nil
	}
	body, ok := strings.CutSuffix(parts[1], lineTerminator)
	if !ok {
		return nil
	}

	header := strings.Split(parts[0], " ")
	switch {
	case len(header) == 1 && header[0] == "PING":
		return Ping{Server: body}
	case len(header) == 3 && header[1] == "PRIVMSG":
		return PrivMsg{
			Sender:  header[0],
			Channel: header[2],
			Text:    body,
		}
	default:
		return nil
	}
}
