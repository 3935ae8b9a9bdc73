package domain

import (
	"context"
	"time"
)

// KeySource yields decoded keystrokes. ReadKey waits at most timeout for a
// key; ok is false when the wait expired without one.
type KeySource interface {
	ReadKey(ctx context.Context, timeout time.Duration) (key Key, ok bool, err error)
}

// Sink paints a View. Draw returns once the view has been handed to the
// display, so the caller never has two draws in flight.
type Sink interface {
	Draw(ctx context.Context, v View) error
}

// Notifier delivers a completion message to the user. Implementations can
// play a sound, ring the terminal bell, or do nothing.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
