// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package irc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ergochat/irc-go/ircfmt"
	"github.com/ergochat/irc-go/ircmsg"
	"github.com/ergochat/irc-go/ircutils"

	"github.com/raistlinbot/raistlin/irc/logger"
)

const (
	// RFC 1459 line limit, terminator included
	maxLineLen = 512
)

var (
	// ErrConnectionClosed is returned by Listen when the server closes
	// the connection.
	ErrConnectionClosed = errors.New("Connection closed by server")
)

// Net is everything the bot loop needs from a connection.
type Net interface {
	// Connect sends the registration lines.
	Connect(ctx context.Context) error
	// Join joins the configured channel.
	Join(ctx context.Context) error
	// Listen reads, parses and dispatches lines until the connection
	// ends or ctx is cancelled.
	Listen(ctx context.Context) error
	// Send sends text to the configured channel.
	Send(ctx context.Context, text string) error
	// Dispatch reacts to a single parsed command; nil is a no-op.
	Dispatch(ctx context.Context, cmd Command) error
}

// Network is a Net over a real IRCConn.
type Network struct {
	bot          *Bot
	conn         IRCConn
	registration Registration
	fakelag      Fakelag
}

// NewNetwork wraps conn for a single session of bot.
func (bot *Bot) NewNetwork(conn IRCConn) *Network {
	network := &Network{
		bot:          bot,
		conn:         conn,
		registration: NewRegistration(bot.config.Registration),
	}
	network.fakelag.Initialize(bot.config.Fakelag)
	return network
}

func (network *Network) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return network.writeLine(network.registration.RegistrationLine())
}

func (network *Network) Join(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return network.writeLine(JoinLine(network.bot.config.Channel))
}

func (network *Network) Send(ctx context.Context, text string) error {
	return network.privmsg(ctx, network.bot.config.Channel, text)
}

func (network *Network) Listen(ctx context.Context) error {
	// closing the connection is the only way to interrupt a blocked read
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			network.conn.Close()
		case <-stop:
		}
	}()

	bot := network.bot
	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := network.conn.ReadLine()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			} else if err == io.EOF {
				return ErrConnectionClosed
			}
			return fmt.Errorf("read: %w", err)
		}
		if !utf8.Valid(line) {
			return errInvalidUTF8
		}
		received := string(line)

		bot.metrics.LinesReceived.Inc()
		if bot.logger.IsLoggingRawIO() {
			bot.logger.Debug(logger.TypeUserInput, strings.TrimRight(received, "\r\n"))
		}

		cmd := ParseCommand(received)
		if cmd == nil {
			continue
		}
		bot.metrics.Commands.WithLabelValues(cmd.Name()).Inc()
		if err := network.Dispatch(ctx, cmd); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}

func (network *Network) Dispatch(ctx context.Context, cmd Command) error {
	switch cmd := cmd.(type) {
	case Ping:
		network.bot.logger.Debug(logger.TypeConnect, "got pinged", cmd.Server)
		return network.writeLine(PongLine(cmd.Server))
	case PrivMsg:
		return network.handlePrivmsg(ctx, cmd)
	default:
		return nil
	}
}

// watching reports whether msg comes from the author whose messages get
// corrected.
func (network *Network) watching(msg PrivMsg) bool {
	watch := network.bot.config.Watch
	return watch.CorrectEveryone || msg.Author() == watch.Author
}

func (network *Network) handlePrivmsg(ctx context.Context, msg PrivMsg) error {
	if !network.watching(msg) {
		return nil
	}
	bot := network.bot

	notes := bot.model.CorrectAll(ircfmt.Strip(msg.Text))
	if len(notes) == 0 {
		return nil
	}
	nick := msg.Author()
	if nuh, err := ircmsg.ParseNUH(strings.TrimPrefix(msg.Sender, ":")); err == nil {
		nick = nuh.Name
	}
	bot.logger.Info(logger.TypeSpellcheck, "correcting", nick, msg.Channel, fmt.Sprintf("%d note(s)", len(notes)))

	for _, note := range notes {
		sent, err := bot.history.Sent(msg.Channel, note)
		if err != nil {
			bot.logger.Warning(logger.TypeHistory, "couldn't check correction history", err.Error())
		} else if sent {
			bot.metrics.CorrectionsSuppressed.Inc()
			bot.logger.Debug(logger.TypeHistory, "suppressing repeated correction", msg.Channel, note)
			continue
		}
		if err := network.privmsg(ctx, msg.Channel, note); err != nil {
			return err
		}
		bot.metrics.CorrectionsSent.Inc()
		// a note that failed to go out must not suppress the retry
		if err := bot.history.Record(msg.Channel, note, time.Now()); err != nil {
			bot.logger.Warning(logger.TypeHistory, "couldn't record correction", err.Error())
		}
	}
	return nil
}

// privmsg sends text to channel, paced by fakelag and truncated to fit
// in a single line.
func (network *Network) privmsg(ctx context.Context, channel, text string) error {
	limit := maxLineLen - len(crlf) - len(PrivmsgLine(channel, "")) + len("\n")
	text = ircutils.SanitizeText(text, limit)
	if err := network.fakelag.Touch(ctx); err != nil {
		return err
	}
	return network.writeLine(PrivmsgLine(channel, text))
}

func (network *Network) writeLine(line string) error {
	if network.conn == nil {
		return errNotConnected
	}
	if network.bot.logger.IsLoggingRawIO() {
		network.bot.logger.Debug(logger.TypeUserOutput, strings.TrimRight(line, "\n"))
	}
	if err := network.conn.Write([]byte(line)); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (network *Network) Close() error {
	if network.conn == nil {
		return nil
	}
	return network.conn.Close()
}
