// Package loop drives a countdown from two concurrent producers, a ticker
// and a key reader, merged into one ordered queue and consumed by a single
// goroutine that owns the timer.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/hammamikhairi/cdown/internal/domain"
	"github.com/hammamikhairi/cdown/internal/logger"
	"github.com/hammamikhairi/cdown/internal/render"
	"github.com/hammamikhairi/cdown/internal/timer"
)

// State is where the countdown is.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateFinished
)

func (s State) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	default:
		return "running"
	}
}

// Option configures the loop.
type Option func(*Loop)

// WithTickRate sets the tick period. The countdown still subtracts one
// second per tick; shorter periods are for tests.
func WithTickRate(d time.Duration) Option {
	return func(l *Loop) {
		l.tickRate = d
	}
}

// WithNotifier sets who is told when the countdown reaches zero.
func WithNotifier(n domain.Notifier) Option {
	return func(l *Loop) {
		l.notifier = n
	}
}

// WithFinishMessage sets the message passed to the notifier on completion.
func WithFinishMessage(msg string) Option {
	return func(l *Loop) {
		l.finishMessage = msg
	}
}

// Loop is the countdown controller. Create it with New and call Run once.
type Loop struct {
	timer         *timer.Timer
	keys          domain.KeySource
	sink          domain.Sink
	notifier      domain.Notifier
	log           *logger.Logger
	tickRate      time.Duration
	finishMessage string

	queue *queue
	state State
	ticks int
}

// New creates a loop for t that reads keys from keys and draws to sink.
func New(t *timer.Timer, keys domain.KeySource, sink domain.Sink, log *logger.Logger, opts ...Option) *Loop {
	l := &Loop{
		timer:         t,
		keys:          keys,
		sink:          sink,
		log:           log,
		tickRate:      1 * time.Second,
		finishMessage: "Time's up.",
		queue:         newQueue(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current state. Only meaningful from the goroutine
// running Run, or after Run has returned.
func (l *Loop) State() State { return l.state }

// Ticks returns how many ticks were applied to the timer.
func (l *Loop) Ticks() int { return l.ticks }

// Run starts both producers and consumes events until the countdown
// finishes, the user quits, or ctx ends. Producers are stopped when Run
// returns.
func (l *Loop) Run(ctx context.Context) (domain.Outcome, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.state = StateRunning
	if l.timer.IsPaused() {
		l.state = StatePaused
	}

	go l.runTicker(ctx)
	go l.runInput(ctx)

	l.log.Info("countdown started (total=%ds, tick=%s)", l.timer.Remaining(), l.tickRate)

	if err := l.draw(ctx); err != nil {
		return domain.OutcomeQuit, err
	}
	if l.timer.Done() {
		return l.finish(ctx)
	}

	for {
		ev, err := l.queue.pop(ctx)
		if err != nil {
			return domain.OutcomeQuit, err
		}

		switch ev.Kind {
		case EventKey:
			switch ev.Key {
			case domain.KeyQuit:
				l.log.Info("countdown quit with %ds left", l.timer.Remaining())
				return domain.OutcomeQuit, nil
			case domain.KeyPause:
				l.timer.Toggle()
				l.state = StateRunning
				if l.timer.IsPaused() {
					l.state = StatePaused
				}
				l.log.Debug("loop: %s at %ds", l.state, l.timer.Remaining())
				if err := l.draw(ctx); err != nil {
					return domain.OutcomeQuit, err
				}
			}

		case EventTick:
			if l.state == StatePaused {
				if err := l.draw(ctx); err != nil {
					return domain.OutcomeQuit, err
				}
				continue
			}
			if l.timer.Done() {
				return l.finish(ctx)
			}
			l.timer.Tick()
			l.ticks++
			if err := l.draw(ctx); err != nil {
				return domain.OutcomeQuit, err
			}
			if l.timer.Done() {
				return l.finish(ctx)
			}
		}
	}
}

// finish moves to the terminal state and notifies. A failing notifier is
// logged and does not change the outcome.
func (l *Loop) finish(ctx context.Context) (domain.Outcome, error) {
	l.state = StateFinished
	l.log.Info("countdown finished after %d ticks", l.ticks)

	if l.notifier != nil {
		if err := l.notifier.Notify(ctx, l.finishMessage); err != nil {
			l.log.Error("loop: notifying completion: %v", err)
		}
	}
	return domain.OutcomeFinished, nil
}

// draw renders the current timer state and hands it to the sink.
func (l *Loop) draw(ctx context.Context) error {
	frame := render.Render(l.timer)
	v := domain.View{
		Rows:      frame.Lines(),
		Width:     frame.Width(),
		Clock:     render.Text(l.timer),
		Paused:    l.state == StatePaused,
		Finished:  l.timer.Done(),
		Remaining: l.timer.Remaining(),
		Elapsed:   l.timer.Elapsed(),
		Total:     l.timer.Initial(),
	}
	if err := l.sink.Draw(ctx, v); err != nil {
		return fmt.Errorf("drawing frame: %w", err)
	}
	return nil
}
