package loop

import (
	"context"
	"sync"
	"time"

	"github.com/hammamikhairi/cdown/internal/domain"
)

// EventKind tells ticks from keystrokes.
type EventKind int

const (
	// EventTick fires once per tick period.
	EventTick EventKind = iota
	// EventKey carries a keystroke.
	EventKey
)

func (k EventKind) String() string {
	if k == EventKey {
		return "key"
	}
	return "tick"
}

// Event is one item in the merged tick/input stream.
type Event struct {
	Kind EventKind
	Key  domain.Key
	At   time.Time
}

// queue is an unbounded FIFO shared by any number of producers and read by
// one consumer. Push never blocks.
type queue struct {
	mu    sync.Mutex
	items []Event
	ready chan struct{}
}

func newQueue() *queue {
	return &queue{ready: make(chan struct{}, 1)}
}

// push appends ev and wakes the consumer if it is waiting.
func (q *queue) push(ev Event) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// pop removes the oldest event, waiting as long as it takes for one to
// arrive or for ctx to end.
func (q *queue) pop(ctx context.Context) (Event, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			ev := q.items[0]
			q.items[0] = Event{}
			q.items = q.items[1:]
			q.mu.Unlock()
			return ev, nil
		}
		q.mu.Unlock()

		select {
		case <-q.ready:
		case <-ctx.Done():
			return Event{}, ctx.Err()
		}
	}
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
