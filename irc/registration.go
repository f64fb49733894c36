// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package irc

import (
	"fmt"
)

// User holds the four positional fields of the USER command.
type User struct {
	User     string
	Mode     string
	Unused   string
	Realname string
}

// Registration is the identity the bot registers with. It's built once
// from the config and never modified.
type Registration struct {
	Nick string
	User User
}

// NewRegistration returns the registration described by config.
func NewRegistration(config RegistrationConfig) Registration {
	return Registration{
		Nick: config.Nick,
		User: User{
			User:     config.User,
			Mode:     config.Mode,
			Unused:   config.Unused,
			Realname: config.Realname,
		},
	}
}

// RegistrationLine returns the USER and NICK lines sent on connect.
func (reg Registration) RegistrationLine() string {
	return fmt.Sprintf("USER %s %s %s %s\nNICK %s\n",
		reg.User.User, reg.User.Mode, reg.User.Unused, reg.User.Realname, reg.Nick)
}

// JoinLine returns the line that joins channel.
func JoinLine(channel string) string {
	return fmt.Sprintf("JOIN %s\n", channel)
}

// PongLine returns the reply to a PING from server.
func PongLine(server string) string {
	return fmt.Sprintf("PONG %s\n", server)
}

// PrivmsgLine returns a line sending text to channel.
func PrivmsgLine(channel, text string) string {
	return fmt.Sprintf("PRIVMSG %s :%s\n", channel, text)
}
