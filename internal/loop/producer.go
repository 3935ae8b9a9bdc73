package loop

import (
	"context"
	"errors"
	"time"

	"github.com/hammamikhairi/cdown/internal/domain"
)

// runTicker pushes a tick each time a full tick period has passed since the
// previous one. The reference instant is reset to "now" on every tick, so a
// late wake-up delays the following ticks instead of bunching them.
func (l *Loop) runTicker(ctx context.Context) {
	last := time.Now()
	t := time.NewTimer(l.tickRate)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}

		elapsed := time.Since(last)
		if elapsed >= l.tickRate {
			now := time.Now()
			l.queue.push(Event{Kind: EventTick, At: now})
			last = now
			elapsed = 0
		}
		t.Reset(l.tickRate - elapsed)
	}
}

// runInput forwards keystrokes. Each read waits no longer than one tick
// period so cancellation is noticed promptly even without key presses.
func (l *Loop) runInput(ctx context.Context) {
	for ctx.Err() == nil {
		key, ok, err := l.keys.ReadKey(ctx, l.tickRate)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			// Without a key source the user could no longer quit.
			if errors.Is(err, domain.ErrDisplayClosed) {
				l.log.Debug("loop: key source closed, treating as quit")
			} else {
				l.log.Error("loop: reading key: %v", err)
			}
			l.queue.push(Event{Kind: EventKey, Key: domain.KeyQuit, At: time.Now()})
			return
		}
		if ok {
			l.queue.push(Event{Kind: EventKey, Key: key, At: time.Now()})
		}
	}
}
