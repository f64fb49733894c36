// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package irc

import (
	"context"
	"fmt"
	"io"

	"github.com/okzk/sdnotify"

	"github.com/raistlinbot/raistlin/irc/logger"
	"github.com/raistlinbot/raistlin/irc/spellcheck"
)

// Bot owns everything that outlives a single connection: the config, the
// trained model, the correction history and the metrics. The model and
// config are read-only once the bot is constructed.
type Bot struct {
	config  *Config
	model   *spellcheck.Model
	history *History
	metrics *Metrics
	logger  *logger.Manager

	dial func(ctx context.Context) (IRCConn, error)
}

// NewBot returns a bot that dials config.Server. history and metrics may
// be nil, which disables duplicate suppression and exports metrics to a
// registry nobody serves.
func NewBot(config *Config, model *spellcheck.Model, history *History, metrics *Metrics, logman *logger.Manager) *Bot {
	if metrics == nil {
		metrics = NewMetrics()
	}
	metrics.ModelWords.Set(float64(model.Len()))
	return &Bot{
		config:  config,
		model:   model,
		history: history,
		metrics: metrics,
		logger:  logman,
		dial: func(ctx context.Context) (IRCConn, error) {
			return DialIRC(ctx, config.Server)
		},
	}
}

// Start runs one session over network: register, join, then listen until
// the connection ends or ctx is cancelled. A cancelled ctx is a clean
// shutdown and returns nil. If network is an io.Closer it's closed on
// return.
func (bot *Bot) Start(ctx context.Context, network Net) error {
	_, err := bot.start(ctx, network)
	return err
}

// start is Start, also reporting whether the session got as far as
// listening in the channel.
func (bot *Bot) start(ctx context.Context, network Net) (joined bool, err error) {
	if closer, ok := network.(io.Closer); ok {
		defer closer.Close()
	}

	if err := network.Connect(ctx); err != nil {
		return false, bot.sessionError(ctx, "registration failed", err)
	}
	if err := network.Join(ctx); err != nil {
		return false, bot.sessionError(ctx, "join failed", err)
	}
	bot.logger.Info(logger.TypeConnect, "joined", bot.config.Channel)
	// fails harmlessly when we're not running under systemd
	sdnotify.Ready()

	if err := network.Listen(ctx); err != nil {
		return true, bot.sessionError(ctx, "connection lost", err)
	}
	return true, nil
}

func (bot *Bot) sessionError(ctx context.Context, what string, err error) error {
	if ctx.Err() != nil {
		return nil
	}
	return fmt.Errorf("%s: %w", what, err)
}

// Run dials the server and runs sessions until ctx is cancelled or
// sessions keep failing. Up to Reconnect.MaxAttempts consecutive failures
// are retried; a session that joins the channel resets the count.
func (bot *Bot) Run(ctx context.Context) error {
	reconnect := bot.config.Server.Reconnect
	attempt := 0
	for {
		joined, err := bot.runSession(ctx)
		if err == nil || ctx.Err() != nil {
			return nil
		}
		if joined {
			attempt = 0
		}
		if attempt >= reconnect.MaxAttempts {
			return err
		}
		attempt++
		bot.logger.Warning(logger.TypeConnect, err.Error(),
			fmt.Sprintf("reconnecting in %v (attempt %d of %d)", reconnect.Delay, attempt, reconnect.MaxAttempts))
		if sleepContext(ctx, reconnect.Delay) != nil {
			return nil
		}
	}
}

func (bot *Bot) runSession(ctx context.Context) (joined bool, err error) {
	defer bot.recoverSession(&err)

	bot.logger.Info(logger.TypeConnect, "connecting", bot.config.Server.Address)
	conn, err := bot.dial(ctx)
	if err != nil {
		return false, err
	}
	bot.metrics.Sessions.Inc()
	return bot.start(ctx, bot.NewNetwork(conn))
}
