// Copyright (c) 2018 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package irc

import (
	"context"
	"time"
)

// fakelag paces the bot's own outgoing messages, the same way servers
// throttle clients: a burst of messages goes out immediately, after which
// messages are spaced out until the bot has been quiet for a cooldown.
// Servers disconnect clients that flood; a long message full of typos would
// otherwise produce a burst of corrections.

type FakelagState uint

const (
	// initially, the bot is "bursting" and can send n messages without delay
	FakelagBursting FakelagState = iota
	// after that, it's "throttled" and we sleep in between messages until
	// they're spaced sufficiently far apart
	FakelagThrottled
)

// this is intentionally not threadsafe, because it should only be touched
// from the loop that reads lines and dispatches them
type Fakelag struct {
	config    FakelagConfig
	nowFunc   func() time.Time
	sleepFunc func(context.Context, time.Duration) error

	state      FakelagState
	burstCount uint // number of messages sent in the current burst
	lastTouch  time.Time
}

func (fl *Fakelag) Initialize(config FakelagConfig) {
	fl.config = config
	fl.nowFunc = time.Now
	fl.sleepFunc = sleepContext
	fl.state = FakelagBursting
}

// sleepContext sleeps for dur, returning early with ctx's error if it's cancelled.
func sleepContext(ctx context.Context, dur time.Duration) error {
	timer := time.NewTimer(dur)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Touch registers an outgoing message, sleeping first if necessary.
// It only fails if ctx is cancelled while sleeping.
func (fl *Fakelag) Touch(ctx context.Context) error {
	if !fl.config.Enabled {
		return nil
	}

	now := fl.nowFunc()
	// XXX if lastTouch.IsZero(), treat it as "very far in the past", which is fine
	elapsed := now.Sub(fl.lastTouch)
	fl.lastTouch = now

	if fl.state == FakelagBursting {
		// determine if the previous burst is over
		if elapsed > fl.config.Cooldown {
			fl.burstCount = 0
		}

		fl.burstCount++
		if fl.burstCount > fl.config.BurstLimit {
			// reset burst window for next time
			fl.burstCount = 0
			// transition to throttling
			fl.state = FakelagThrottled
			// continue to throttling logic
		} else {
			return nil
		}
	}

	if fl.state == FakelagThrottled {
		if elapsed > fl.config.Cooldown {
			// allow another burst
			fl.state = FakelagBursting
			return nil
		}
		// space messages out by at least window/messagesperwindow
		sleepDuration := time.Duration((int64(fl.config.Window) / int64(fl.config.MessagesPerWindow)) - int64(elapsed))
		if sleepDuration > 0 {
			if err := fl.sleepFunc(ctx, sleepDuration); err != nil {
				return err
			}
			// the touch time should take into account the time we slept
			fl.lastTouch = fl.nowFunc()
		}
	}
	return nil
}
